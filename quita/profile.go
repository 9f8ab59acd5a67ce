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

package quita

import (
	"lingprof/results"
)

// Profile evaluates all 18 indices in declaration order, failing fast
// on the first undefined one (a document profile with holes would be
// meaningless downstream).
func (t *Text) Profile() (*results.Profile, error) {
	p := results.NewProfile(results.ProfileTypeQuita)
	indices := []struct {
		key string
		fn  func() (float64, error)
	}{
		{"TTR", t.TTR},
		{"H", t.HPoint},
		{"ATL", t.AvgTokenLength},
		{"R4", t.VocabRichness},
		{"RR", t.RepeatRate},
		{"RRmc", t.RelativeRepeatRate},
		{"TC", t.ThematicConcentration},
		{"STC", t.SecondaryThematicConcentration},
		{"Q", t.Activity},
		{"D", t.Descriptivity},
		{"CL", t.CurveLength},
		{"CLI", t.CurveLengthIndicator},
		{"Lambda", t.Lambda},
		{"A", t.AdjustedModulus},
		{"G", t.GiniCoef},
		{"HL", t.HapaxPercentage},
		{"Alpha", t.WritersView},
		{"VD", t.VerbDistance},
	}
	for _, item := range indices {
		v, err := item.fn()
		if err != nil {
			return nil, err
		}
		p.Set(item.key, v)
	}
	return p, nil
}
