/*
 * histo.go, part of goXtal.
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

//Package histo builds histograms of contact distances, the raw material
//for coordination-number and radial-distribution style analyses.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	xtal "github.com/goxtal/goxtal"
	"github.com/goxtal/goxtal/subcell"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is one histogram. Dividers are the bin edges, so there is one
//count fewer than dividers. Points outside the edges are dropped
//silently.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
	raw        []float64
}

//NewData builds a histogram with the given bin edges, which must be
//strictly increasing and at least 2, and bins the rawdata into it.
func NewData(dividers, rawdata []float64) (*Data, error) {
	if len(dividers) < 2 {
		return nil, fmt.Errorf("goXtal/histo: need at least 2 dividers, got %d", len(dividers))
	}
	for i := 1; i < len(dividers); i++ {
		if dividers[i] <= dividers[i-1] {
			return nil, fmt.Errorf("goXtal/histo: dividers not strictly increasing at %d", i)
		}
	}
	D := &Data{dividers: dividers, histo: make([]float64, len(dividers)-1)}
	D.AddData(rawdata...)
	return D, nil
}

//Uniform returns n+1 evenly spaced bin edges covering [min,max], ready
//to be passed to NewData.
func Uniform(min, max float64, n int) []float64 {
	return floats.Span(make([]float64, n+1), min, max)
}

//AddData bins more points into the histogram. Adding to a normalized
//histogram panics, as the counts would no longer mean anything.
func (D *Data) AddData(points ...float64) {
	if D.normalized {
		panic("goXtal/histo: AddData on a normalized histogram")
	}
	for _, p := range points {
		i := sort.SearchFloat64s(D.dividers, p)
		//SearchFloat64s returns the insertion point; an exact hit on
		//edge i belongs to bin i, anything else to the bin before
		if i < len(D.dividers) && D.dividers[i] == p {
			i++
		}
		if i == 0 || i > len(D.histo) {
			continue //out of range
		}
		D.histo[i-1]++
		D.total++
		D.raw = append(D.raw, p)
	}
}

//View returns the bin contents. The returned slice is the live one, so
//treat it as read-only.
func (D *Data) View() []float64 { return D.histo }

//Dividers returns a copy of the bin edges.
func (D *Data) Dividers() []float64 {
	return append([]float64{}, D.dividers...)
}

//Total returns the number of points binned so far.
func (D *Data) Total() int { return D.total }

//Mean returns the mean of the binned points (not of the bin centers).
func (D *Data) Mean() float64 {
	if len(D.raw) == 0 {
		return math.NaN()
	}
	return stat.Mean(D.raw, nil)
}

//StdDev returns the standard deviation of the binned points.
func (D *Data) StdDev() float64 {
	if len(D.raw) < 2 {
		return math.NaN()
	}
	return stat.StdDev(D.raw, nil)
}

//Normalized returns whether the histogram has been normalized.
func (D *Data) Normalized() bool { return D.normalized }

//Normalize scales the bins so they sum to 1.
func (D *Data) Normalize() {
	if D.normalized || D.total == 0 {
		return
	}
	floats.Scale(1/float64(D.total), D.histo)
	D.normalized = true
}

//UnNormalize restores the raw counts.
func (D *Data) UnNormalize() {
	if !D.normalized {
		return
	}
	floats.Scale(float64(D.total), D.histo)
	D.normalized = false
}

func (D *Data) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "total:%d normalized:%v\n", D.total, D.normalized)
	for i, v := range D.histo {
		fmt.Fprintf(&b, "[%5.2f,%5.2f) %v\n", D.dividers[i], D.dividers[i+1], v)
	}
	return b.String()
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	D.raw = nil //summary stats are not recoverable from JSON
	return nil
}

//FromContacts enumerates the contacts of a populated index and bins
//their distances (in A, not squared) into a new histogram with the
//given edges.
func FromContacts(cs *subcell.SubCells, conf subcell.ContactConfig, dividers []float64) (*Data, error) {
	D, err := NewData(dividers, nil)
	if err != nil {
		return nil, err
	}
	err = cs.ForEachContact(conf, func(_, _ xtal.CRA, _ int, dsq float32) bool {
		D.AddData(math.Sqrt(float64(dsq)))
		return true
	})
	return D, err
}
