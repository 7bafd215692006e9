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

/*Package xtal provides the structure hierarchy and crystallographic
machinery used by the goXtal neighbor-search library.

	**goXtal capabilities**

    Hierarchical macromolecular models (model -> chain -> residue -> atom)
	with stable positional indexing, so that snapshots taken by the
	spatial index can be re-resolved against the live model.

    Unit cells with fractional<->orthogonal transforms, periodic
	(minimum-image) distances and crystallographic symmetry images,
	including a synthetic orthogonal cell for non-crystal models.

    A cell-linked-list spatial index (package subcell) answering radius
	queries and enumerating unique inter-atomic contacts, with periodic
	wrap-around, symmetry-image handling and special-position filtering.

    Steric-clash detection (package clash), contact-distance histograms
	(package histo), residue contact-map plots (package xplot) and
	compressed contact reports (package report), all built on top of the
	index.

The library does not read or write structure files; models are built
programmatically through the constructors in this package.

Many "fundamental" accessors here panic instead of returning errors. If
something goes wrong at that level the program is almost certainly wrong
and should crash. Operations that can fail on reasonable input return
errors in the usual way.
*/
package xtal
