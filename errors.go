/*
 * errors.go, part of goXtal.
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

package xtal

//Error is the error type returned by the xtal package. The decoration
//slice records the names of the callers the error has passed through, so
//the trail can be inspected or printed when the error finally surfaces.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate adds dec to the decoration slice of the error, and returns the
//resulting slice. If dec is empty, it just returns the current slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics. It satisfies the error
//interface, but for recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilModel       = PanicMsg("goXtal: nil model given")
	ErrNilCoords      = PanicMsg("goXtal: nil or empty coordinates given")
	ErrDegenerateCell = PanicMsg("goXtal: degenerate (zero-volume) unit cell")
)
