// SPDX-License-Identifier: MIT

package serialize

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/tbdiag/index"
	"gopkg.in/yaml.v3"
)

// Kind tags what a record describes.
type Kind string

// Record kinds.
const (
	KindHopping     Kind = "hopping"
	KindEigenValue  Kind = "eigenvalue"
	KindEigenVector Kind = "eigenvector"
)

// ErrBadRecord is returned by Decode when a record is malformed.
var ErrBadRecord = errors.New("serialize: malformed record")

// Record is one (index key sequence, complex value) pair.
type Record struct {
	Kind    Kind
	Indices []index.Index
	Value   complex128
}

// yamlRecord is the on-disk shape of a Record.
type yamlRecord struct {
	Kind    Kind    `yaml:"kind"`
	Indices [][]int `yaml:"indices,flow"`
	Re      float64 `yaml:"re"`
	Im      float64 `yaml:"im,omitempty"`
}

// yamlDocument wraps the record list so the file can grow other top-level keys.
type yamlDocument struct {
	Records []yamlRecord `yaml:"records"`
}

// Encode writes records as a YAML document to w.
func Encode(w io.Writer, records []Record) error {
	doc := yamlDocument{Records: make([]yamlRecord, len(records))}
	for i, r := range records {
		if math.IsNaN(real(r.Value)) || math.IsNaN(imag(r.Value)) {
			return fmt.Errorf("Encode: record %d: %w", i, ErrBadRecord)
		}
		subs := make([][]int, len(r.Indices))
		for j, k := range r.Indices {
			subs[j] = k.Subs()
		}
		doc.Records[i] = yamlRecord{Kind: r.Kind, Indices: subs, Re: real(r.Value), Im: imag(r.Value)}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}

// Decode reads a YAML document produced by Encode.
func Decode(r io.Reader) ([]Record, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("Decode: %w", err)
	}
	out := make([]Record, len(doc.Records))
	for i, yr := range doc.Records {
		if len(yr.Indices) == 0 {
			return nil, fmt.Errorf("Decode: record %d has no indices: %w", i, ErrBadRecord)
		}
		keys := make([]index.Index, len(yr.Indices))
		for j, subs := range yr.Indices {
			keys[j] = index.New(subs...)
		}
		out[i] = Record{Kind: yr.Kind, Indices: keys, Value: complex(yr.Re, yr.Im)}
	}

	return out, nil
}
