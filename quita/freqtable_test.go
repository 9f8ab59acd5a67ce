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
	"testing"

	"github.com/stretchr/testify/assert"

	"lingprof/nlp"
)

func TestBuildFreqTableInvariants(t *testing.T) {
	tokens := []string{"the", "cat", "the", "dog", "the", "cat"}
	table, err := BuildFreqTable(
		tokens, nlp.NewInsertionOrderCounter(), nlp.NewRuleTagger())
	assert.NoError(t, err)
	assert.Equal(t, 3, len(table))

	assert.Equal(t, "the", table[0].Type)
	assert.Equal(t, 3, table[0].Freq)
	assert.Equal(t, "cat", table[1].Type)
	assert.Equal(t, 2, table[1].Freq)
	assert.Equal(t, "dog", table[2].Type)
	assert.Equal(t, 1, table[2].Freq)

	for i, row := range table {
		assert.Equal(t, i+1, row.Rank)
		assert.InDelta(t, float64(row.Freq)/6, row.Prob, 1e-9)
		if i > 0 {
			assert.LessOrEqual(t, row.Freq, table[i-1].Freq)
			assert.Greater(t, row.CumProb, table[i-1].CumProb)
		}
	}
	assert.InDelta(t, 1.0, table[len(table)-1].CumProb, 1e-9)
}

func TestBuildFreqTableTieBreakByFirstOccurrence(t *testing.T) {
	table, err := BuildFreqTable(
		[]string{"dog", "dog", "cat", "cat"},
		nlp.NewInsertionOrderCounter(), nlp.NewRuleTagger())
	assert.NoError(t, err)
	assert.Equal(t, "dog", table[0].Type)
	assert.Equal(t, "cat", table[1].Type)
}

func TestBuildFreqTablePOSColumn(t *testing.T) {
	table, err := BuildFreqTable(
		[]string{"the", "ran"},
		nlp.NewInsertionOrderCounter(), nlp.NewRuleTagger())
	assert.NoError(t, err)
	assert.Equal(t, "DT", table[0].POS)
	assert.Equal(t, "VBD", table[1].POS)
}

func TestBuildFreqTableEmptyInput(t *testing.T) {
	table, err := BuildFreqTable(
		nil, nlp.NewInsertionOrderCounter(), nlp.NewRuleTagger())
	assert.NoError(t, err)
	assert.Empty(t, table)
}

func TestCleanText(t *testing.T) {
	cleaned := CleanText("It's 42 [noise] clear, isn't it?")
	assert.Equal(
		t,
		[]string{"it", "clear", "is", "it"},
		nlp.ExtractWords(cleaned),
	)
}
