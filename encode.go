package wealth

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeProfile reads a profile in JSON format.
//
// Amounts may be written as plain numbers, in which case they are expressed
// in the profile currency (or in the equity's own currency for a tagged
// equity price), or as {"currency": "USD", "amount": 180} objects.
func DecodeProfile(r io.Reader) (*Profile, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("format error in profile: %w", err)
	}
	if err := p.normalize(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

// EncodeProfile writes a profile in indented JSON format.
//
// Amounts are written with all their digits, so that decoding the output
// gives back the same profile.
func EncodeProfile(w io.Writer, p *Profile) error {
	q := p.Clone()
	for _, a := range q.amounts() {
		*a.m = a.m.exact()
	}
	for _, e := range q.equities() {
		e.Price = e.Price.exact()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(q); err != nil {
		return fmt.Errorf("could not encode profile: %w", err)
	}
	return nil
}
