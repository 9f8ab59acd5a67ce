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

// Package quita computes the frequency-structure indices of the
// Quantitative Index Text Analyzer (QUITA): h-point, vocabulary
// richness, repeat rate, entropy, Gini coefficient, the curve length
// family, thematic concentration, activity/descriptivity and verb
// distance.
package quita

import (
	"fmt"
	"sort"

	"lingprof/lperror"
	"lingprof/nlp"
)

// FreqRow is one row of the type-frequency table.
type FreqRow struct {
	// Type is the distinct token form.
	Type string

	// Freq is the number of occurrences (>= 1).
	Freq int

	// Prob is Freq / N.
	Prob float64

	// Rank is 1-based, descending by frequency. Equal frequencies keep
	// the enumeration order of the frequency-distribution capability
	// (first-occurrence order with the default counter).
	Rank int

	// CumProb is the running probability sum up to and including this
	// rank; non-decreasing, 1.0 at the last rank.
	CumProb float64

	// POS is the tag of the type tagged as a standalone word.
	POS string
}

// FreqTable holds one row per type, ordered by rank.
type FreqTable []FreqRow

// BuildFreqTable derives the type-frequency table from a token list.
// Empty input yields a zero-row table, not an error; callers must
// handle V=0 explicitly.
func BuildFreqTable(tokens []string, counter nlp.FreqCounter, tagger nlp.Tagger) (FreqTable, error) {
	dist := counter.Distribution(tokens)
	table := make(FreqTable, len(dist))
	for i, item := range dist {
		table[i] = FreqRow{Type: item.Type, Freq: item.Freq}
	}
	// stable: equal frequencies keep the counter's enumeration order
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Freq > table[j].Freq
	})
	n := float64(len(tokens))
	var cum float64
	for i := range table {
		table[i].Rank = i + 1
		table[i].Prob = float64(table[i].Freq) / n
		cum += table[i].Prob
		table[i].CumProb = cum
		tagged, err := tagger.Tag([]string{table[i].Type})
		if err != nil || len(tagged) != 1 {
			return nil, lperror.TaggingFailureError{
				Msg: fmt.Sprintf("failed to tag type %q: %v", table[i].Type, err),
			}
		}
		table[i].POS = tagged[0].Tag
	}
	return table, nil
}
