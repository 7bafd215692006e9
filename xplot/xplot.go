/*
 * xplot.go, part of goXtal.
 *
 * Copyright 2026 The goXtal developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package xplot draws quick-look plots of neighbor-search results: the
//residue-residue contact map of a structure and histograms of contact
//distances.
package xplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	xtal "github.com/goxtal/goxtal"
	"github.com/goxtal/goxtal/histo"
	"github.com/goxtal/goxtal/subcell"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//residueIndex numbers the residues of a model in traversal order, so a
//contact's two ends can be placed on the map's axes.
func residueIndex(mol *xtal.Model) map[*xtal.Residue]int {
	idx := make(map[*xtal.Residue]int)
	i := 0
	for _, ch := range mol.Chains {
		for _, res := range ch.Residues {
			idx[res] = i
			i++
		}
	}
	return idx
}

//ContactMap enumerates the contacts of a populated index and saves a
//residue-residue contact map as a PNG. Each contact is drawn at (i,j)
//and (j,i), so the map comes out symmetric the way crystallographers
//expect; symmetry-image contacts are drawn in a second color.
func ContactMap(cs *subcell.SubCells, conf subcell.ContactConfig, title, plotname string) error {
	idx := residueIndex(cs.Model())
	var direct, image plotter.XYs
	err := cs.ForEachContact(conf, func(a, b xtal.CRA, im int, _ float32) bool {
		i := float64(idx[a.Residue])
		j := float64(idx[b.Residue])
		if im == 0 {
			direct = append(direct, plotter.XY{X: i, Y: j}, plotter.XY{X: j, Y: i})
		} else {
			image = append(image, plotter.XY{X: i, Y: j}, plotter.XY{X: j, Y: i})
		}
		return true
	})
	if err != nil {
		return err
	}
	p := basicPlot(title, "residue", "residue")
	for _, set := range []struct {
		pts plotter.XYs
		col color.RGBA
	}{
		{direct, color.RGBA{B: 255, A: 255}},
		{image, color.RGBA{R: 255, A: 255}},
	} {
		if len(set.pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set.pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = set.col
		s.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(s)
	}
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

//DistanceHistogram saves a bar chart of a contact-distance histogram as
//a PNG.
func DistanceHistogram(D *histo.Data, title, plotname string) error {
	bars, err := plotter.NewBarChart(plotter.Values(D.View()), vg.Points(10))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{B: 200, A: 255}
	p := basicPlot(title, "distance bin", "count")
	p.Add(bars)
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}
