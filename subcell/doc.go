/*
 * doc.go, part of goXtal.
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

/*Package subcell implements a cell-linked-list index ("subcell grid")
for neighbor searching in macromolecular models, the method also known as
grid search, binning or bucketing.

One periodic unit of the crystal (or a padded box around a non-periodic
model) is divided into a 3D grid of cells, each at least as wide as the
maximum search radius, so that all atoms within that radius of any point
are guaranteed to sit in the 3x3x3 block of cells around it. Each atom is
inserted once at its own position and once per crystallographic symmetry
image, so radius queries and contact enumeration see symmetry mates and
periodic copies at their true geometric locations.

The index is a read-only cache of the model's geometry at population
time. Populate it once, then query from as many goroutines as you like;
if the model's coordinates or hierarchy change, rebuild the index, since
queries against a mutated model silently return stale answers.

Typical use:

	cs, err := subcell.New(model, cell, 5.0)
	if err != nil {
		...
	}
	cs.Populate(true)
	conf := subcell.NewContactConfig(3.5)
	cs.ForEachContact(conf, func(a, b xtal.CRA, image int, dsq float32) bool {
		fmt.Println(a, b, image, math.Sqrt(float64(dsq)))
		return true
	})
*/
package subcell
