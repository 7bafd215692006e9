/*
 * report.go, part of goXtal.
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

//Package report writes contact listings to plain or compressed files.
//Contact lists for whole crystals get large, and they compress very
//well, so the writer picks a compressor from the filename: ".gz" for
//gzip, ".z" for flate, ".zst" for zstd, anything else plain text. One
//contact per line:
//
//	A/HOH1/O A/HOH2/O 0 2.8000
package report

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	xtal "github.com/goxtal/goxtal"
	"github.com/goxtal/goxtal/subcell"
)

//Contact is one record of the report: the two atom identifiers, the
//symmetry image that produced the second one, and the distance in A.
type Contact struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Image int     `json:"image"`
	Dist  float64 `json:"dist"`
}

//Writer writes contact records to a file, compressing on the fly when
//the filename asks for it.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	plain     bool //h aliases f, only one Close needed
	writeable bool
	written   int
}

//NewWriter creates the named file and sets up the compression layer its
//extension calls for.
func NewWriter(name string) (*Writer, error) {
	W := new(Writer)
	W.filename = name
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(strings.ToLower(name)) {
	case ".gz":
		W.h = gzip.NewWriter(W.f)
	case ".z":
		W.h, err = flate.NewWriter(W.f, flate.DefaultCompression)
		if err != nil {
			W.f.Close()
			return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
		}
	case ".zst":
		W.h, err = zstd.NewWriter(W.f)
		if err != nil {
			W.f.Close()
			return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
		}
	default:
		W.h = W.f
		W.plain = true
	}
	W.writeable = true
	return W, nil
}

//WNext writes one contact record.
func (W *Writer) WNext(c Contact) error {
	if !W.writeable {
		return Error{"writer not open", W.filename, []string{"WNext"}, true}
	}
	_, err := fmt.Fprintf(W.h, "%s %s %d %.4f\n", c.A, c.B, c.Image, c.Dist)
	if err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	W.written++
	return nil
}

//Len returns the number of records written so far.
func (W *Writer) Len() int { return W.written }

//Close flushes the compressor and closes the file. The Writer is
//unusable afterwards.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	if !W.plain {
		if err := W.h.Close(); err != nil {
			W.f.Close()
			return err
		}
	}
	return W.f.Close()
}

//FromIndex enumerates the contacts of a populated index and writes them
//all to the named file. It returns the number of records written.
func FromIndex(cs *subcell.SubCells, conf subcell.ContactConfig, name string) (int, error) {
	W, err := NewWriter(name)
	if err != nil {
		return 0, err
	}
	var werr error
	err = cs.ForEachContact(conf, func(a, b xtal.CRA, image int, dsq float32) bool {
		werr = W.WNext(Contact{A: a.String(), B: b.String(), Image: image, Dist: math.Sqrt(float64(dsq))})
		return werr == nil
	})
	if err == nil {
		err = werr
	}
	if err != nil {
		W.Close()
		return W.Len(), err
	}
	return W.Len(), W.Close()
}

//Read loads a report back, choosing the decompressor from the filename
//the same way NewWriter chooses the compressor.
func Read(name string) ([]Contact, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	switch filepath.Ext(strings.ToLower(name)) {
	case ".gz":
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{err.Error(), name, []string{"Read"}, true}
		}
		defer gr.Close()
		r = gr
	case ".z":
		fr := flate.NewReader(f)
		defer fr.Close()
		r = fr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, Error{err.Error(), name, []string{"Read"}, true}
		}
		defer zr.Close()
		r = zr
	}
	var out []Contact
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, Error{"malformed record: " + scanner.Text(), name, []string{"Read"}, true}
		}
		image, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, Error{err.Error(), name, []string{"Read"}, true}
		}
		dist, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, Error{err.Error(), name, []string{"Read"}, true}
		}
		out = append(out, Contact{A: fields[0], B: fields[1], Image: image, Dist: dist})
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	return out, nil
}

//MarshalContacts returns the records as a JSON array, for consumers
//that would rather not parse the text format.
func MarshalContacts(contacts []Contact) ([]byte, error) {
	return json.Marshal(contacts)
}

//Error is the error type for the report package.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("%s (file %s)", err.message, err.filename)
}

//Decorate adds dec to the decoration slice of strings of the error, and
//returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }
