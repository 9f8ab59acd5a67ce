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

package nlp

// TypeFreq is a single row of a frequency distribution.
type TypeFreq struct {
	Type string
	Freq int
}

// FreqCounter builds a frequency distribution from a token list.
// The enumeration order of the returned types must be stable and
// deterministic - downstream rank assignment depends on it.
type FreqCounter interface {
	Distribution(tokens []string) []TypeFreq
}

// InsertionOrderCounter enumerates types in the order of their first
// occurrence in the token list.
type InsertionOrderCounter struct{}

func NewInsertionOrderCounter() *InsertionOrderCounter {
	return &InsertionOrderCounter{}
}

func (c *InsertionOrderCounter) Distribution(tokens []string) []TypeFreq {
	index := make(map[string]int, len(tokens))
	ans := make([]TypeFreq, 0, len(tokens))
	for _, tok := range tokens {
		i, ok := index[tok]
		if !ok {
			index[tok] = len(ans)
			ans = append(ans, TypeFreq{Type: tok, Freq: 1})

		} else {
			ans[i].Freq++
		}
	}
	return ans
}
