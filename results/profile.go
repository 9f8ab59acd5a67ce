// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of LINGPROF.
//
//  LINGPROF is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  LINGPROF is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with LINGPROF.  If not, see <https://www.gnu.org/licenses/>.

package results

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	ProfileTypeBiber = "biber"
	ProfileTypeQuita = "quita"
)

// Profile is a fixed-width numeric fingerprint of a document: a mapping
// from feature key to value which preserves the insertion order of its
// keys (the declaration order of the feature battery).
type Profile struct {
	profileType string
	keys        []string
	values      map[string]float64
}

func NewProfile(profileType string) *Profile {
	return &Profile{
		profileType: profileType,
		values:      make(map[string]float64),
	}
}

func (p *Profile) Type() string {
	return p.profileType
}

// Set stores a feature value. The first Set of a key fixes its position
// in the enumeration order; re-setting a key keeps the position.
func (p *Profile) Set(key string, value float64) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

func (p *Profile) Get(key string) (float64, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the feature keys in insertion order. The returned slice
// is owned by the profile and must not be modified.
func (p *Profile) Keys() []string {
	return p.keys
}

func (p *Profile) Len() int {
	return len(p.keys)
}

// ForEach visits all features in insertion order.
func (p *Profile) ForEach(fn func(key string, value float64)) {
	for _, k := range p.keys {
		fn(k, p.values[k])
	}
}

// Values returns the feature values in key insertion order - the
// fixed-width numeric vector downstream classifiers consume.
func (p *Profile) Values() []float64 {
	ans := make([]float64, len(p.keys))
	for i, k := range p.keys {
		ans[i] = p.values[k]
	}
	return ans
}

// MarshalJSON writes the profile as a JSON object with keys in
// insertion order.
func (p *Profile) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kj, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kj)
		buf.WriteByte(':')
		vj, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile key %s: %w", k, err)
		}
		buf.Write(vj)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
