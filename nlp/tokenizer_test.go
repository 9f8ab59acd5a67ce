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

func TestTokenizeSimpleSentence(t *testing.T) {
	tk := NewWordTokenizer()
	assert.Equal(
		t,
		[]string{"The", "cat", "sat", "on", "the", "mat", "."},
		tk.Tokenize("The cat sat on the mat."),
	)
}

func TestTokenizeContractions(t *testing.T) {
	tk := NewWordTokenizer()
	assert.Equal(t, []string{"do", "n't"}, tk.Tokenize("don't"))
	assert.Equal(t, []string{"it", "'s"}, tk.Tokenize("it's"))
	assert.Equal(t, []string{"they", "'ll", "go"}, tk.Tokenize("they'll go"))
	assert.Equal(t, []string{"I", "'m"}, tk.Tokenize("I'm"))
}

func TestTokenizeSurroundingPunct(t *testing.T) {
	tk := NewWordTokenizer()
	assert.Equal(t, []string{"(", "hello", ")"}, tk.Tokenize("(hello)"))
	assert.Equal(t, []string{"\"", "yes", "\"", ",", "no", "!"}, tk.Tokenize("\"yes\", no!"))
}

func TestTokenizeInnerHyphenKept(t *testing.T) {
	tk := NewWordTokenizer()
	assert.Equal(t, []string{"well-known"}, tk.Tokenize("well-known"))
}

func TestTokenizeEmpty(t *testing.T) {
	tk := NewWordTokenizer()
	assert.Empty(t, tk.Tokenize(""))
	assert.Empty(t, tk.Tokenize("   \n\t"))
}

func TestExtractWords(t *testing.T) {
	assert.Equal(t, []string{"ab", "cd", "12"}, ExtractWords("ab, cd! 12"))
	assert.Empty(t, ExtractWords("..."))
}
