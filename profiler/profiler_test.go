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

package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lingprof/cnf"
	"lingprof/lperror"
	"lingprof/nlp"
)

type panickyTokenizer struct{}

func (pt panickyTokenizer) Tokenize(text string) []string {
	panic("tokenizer blew up")
}

func TestBiberProfileEndToEnd(t *testing.T) {
	prof, err := ComputeBiberProfile("The cat sat on the mat.")
	assert.NoError(t, err)
	assert.Equal(t, 65, prof.Len())

	past, ok := prof.Get("PASTTENSE")
	assert.True(t, ok)
	assert.Greater(t, past, 0.0)

	prep, ok := prof.Get("PREP")
	assert.True(t, ok)
	assert.Greater(t, prep, 0.0)

	// 7 distinct tokens out of 7 (the period counts as a token)
	ttr, ok := prof.Get("TYPETOKEN")
	assert.True(t, ok)
	assert.InDelta(t, 1.0, ttr, 1e-9)
}

func TestQuitaProfileEndToEnd(t *testing.T) {
	prof, err := ComputeQuitaProfile(
		"The dog ran and the dog sat near the beautiful dog.")
	assert.NoError(t, err)
	assert.Equal(t, 18, prof.Len())

	ttr, ok := prof.Get("TTR")
	assert.True(t, ok)
	assert.InDelta(t, 7.0/11, ttr, 1e-9)
}

func TestProfilesAreIdempotent(t *testing.T) {
	text := "She said that it was broken. Nobody believed her."
	p1, err := ComputeBiberProfile(text)
	assert.NoError(t, err)
	p2, err := ComputeBiberProfile(text)
	assert.NoError(t, err)
	assert.Equal(t, p1.Values(), p2.Values())
}

func TestBiberProfileEmptyInput(t *testing.T) {
	_, err := ComputeBiberProfile("")
	var dErr lperror.DegenerateInputError
	assert.ErrorAs(t, err, &dErr)
}

func TestQuitaProfileEmptyInput(t *testing.T) {
	_, err := ComputeQuitaProfile("")
	var dErr lperror.DegenerateInputError
	assert.ErrorAs(t, err, &dErr)
}

func TestCapabilityPanicBecomesError(t *testing.T) {
	a := NewCustomAnalyzer(
		panickyTokenizer{}, nlp.NewRuleTagger(), nlp.NewInsertionOrderCounter())
	_, err := a.BiberProfile("some text")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "recovered panic")
}

func TestAnalyzerAppliesLexiconFromConfig(t *testing.T) {
	conf := &cnf.Conf{
		Language:      "en",
		TaggerLexicon: map[string]string{"smote": "VBD"},
	}
	a := NewAnalyzer(conf)
	prof, err := a.BiberProfile("He smote the dragon.")
	assert.NoError(t, err)

	// the default suffix heuristics cannot guess "smote"
	past, ok := prof.Get("PASTTENSE")
	assert.True(t, ok)
	assert.InDelta(t, 200.0, past, 1e-9)
}
