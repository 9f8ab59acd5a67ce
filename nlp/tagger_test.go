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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagsOf(t *testing.T, words ...string) []string {
	t.Helper()
	tagged, err := NewRuleTagger().Tag(words)
	assert.NoError(t, err)
	ans := make([]string, len(tagged))
	for i, tok := range tagged {
		ans[i] = tok.Tag
	}
	return ans
}

func TestTagSimpleSentence(t *testing.T) {
	assert.Equal(
		t,
		[]string{"DT", "NN", "VBD", "IN", "DT", "NN", "."},
		tagsOf(t, "The", "cat", "sat", "on", "the", "mat", "."),
	)
}

func TestTagClosedClasses(t *testing.T) {
	assert.Equal(
		t,
		[]string{"PRP", "MD", "RB", "VB"},
		tagsOf(t, "she", "could", "not", "go"),
	)
}

func TestTagSuffixHeuristics(t *testing.T) {
	assert.Equal(t, []string{"VBG"}, tagsOf(t, "running"))
	assert.Equal(t, []string{"VBD"}, tagsOf(t, "walked"))
	assert.Equal(t, []string{"RB"}, tagsOf(t, "quickly"))
	assert.Equal(t, []string{"NN"}, tagsOf(t, "creation"))
	assert.Equal(t, []string{"JJ"}, tagsOf(t, "beautiful"))
	assert.Equal(t, []string{"NNS"}, tagsOf(t, "cats"))
}

func TestTagNumbers(t *testing.T) {
	assert.Equal(t, []string{"CD", "CD"}, tagsOf(t, "3.14", "two"))
}

func TestTagProperNounMidSentence(t *testing.T) {
	assert.Equal(t, []string{"IN", "NNP"}, tagsOf(t, "in", "Paris"))
}

func TestTagContextualCorrections(t *testing.T) {
	// modal governs a base form
	assert.Equal(t, []string{"MD", "VB"}, tagsOf(t, "can", "walk"))
	// infinitive marker governs a base form
	assert.Equal(t, []string{"TO", "VB"}, tagsOf(t, "to", "walk"))
	// determiner turns a lexicon verb into a nominal
	assert.Equal(t, []string{"DT", "NN"}, tagsOf(t, "the", "run"))
}

func TestTagExtendOverridesLexicon(t *testing.T) {
	rt := NewRuleTagger()
	rt.Extend(map[string]string{"Frobnicate": "VB"})
	tagged, err := rt.Tag([]string{"frobnicate"})
	assert.NoError(t, err)
	assert.Equal(t, "VB", tagged[0].Tag)
}

func TestTagOneTagPerToken(t *testing.T) {
	words := []string{"we", "went", "home", "yesterday", "."}
	tagged, err := NewRuleTagger().Tag(words)
	assert.NoError(t, err)
	assert.Equal(t, len(words), len(tagged))
	for i, tok := range tagged {
		assert.Equal(t, words[i], tok.Word)
	}
}
