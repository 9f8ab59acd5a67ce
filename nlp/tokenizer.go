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

// Package nlp defines the external NLP capability boundary of LINGPROF
// (tokenization, part-of-speech tagging, frequency distribution) along
// with default in-process implementations. The feature engines consume
// only the interfaces; any of the defaults can be replaced by a caller
// with a more capable backend.
package nlp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer converts raw text into an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// contraction suffixes split off as separate tokens, longest first
var contractionSuffixes = []string{"n't", "'ll", "'re", "'ve", "'s", "'m", "'d"}

var wordRegexp = regexp.MustCompile(`\w+`)

// ExtractWords returns all maximal runs of word characters in text,
// in order of appearance. Punctuation is discarded entirely.
func ExtractWords(text string) []string {
	return wordRegexp.FindAllString(text, -1)
}

// WordTokenizer is a Treebank-style word tokenizer: it splits text on
// whitespace, peels leading and trailing punctuation into standalone
// tokens and separates common English contraction suffixes
// ('d 'll 'm 're 's 've n't) from their host word.
type WordTokenizer struct{}

func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

func (t *WordTokenizer) Tokenize(text string) []string {
	ans := make([]string, 0, len(text)/5)
	for _, field := range strings.Fields(text) {
		ans = append(ans, splitField(field)...)
	}
	return ans
}

func splitField(field string) []string {
	var lead, trail []string
	for len(field) > 0 {
		r, size := utf8.DecodeRuneInString(field)
		if !isSplitPunct(r) {
			break
		}
		lead = append(lead, string(r))
		field = field[size:]
	}
	for len(field) > 0 {
		r, size := utf8.DecodeLastRuneInString(field)
		if !isSplitPunct(r) {
			break
		}
		trail = append([]string{string(r)}, trail...)
		field = field[:len(field)-size]
	}
	ans := lead
	if field != "" {
		ans = append(ans, splitContraction(field)...)
	}
	return append(ans, trail...)
}

func splitContraction(tok string) []string {
	low := strings.ToLower(tok)
	for _, sfx := range contractionSuffixes {
		if len(low) > len(sfx) && strings.HasSuffix(low, sfx) {
			return []string{tok[:len(tok)-len(sfx)], tok[len(tok)-len(sfx):]}
		}
	}
	return []string{tok}
}

// apostrophes stay attached so contraction splitting can see them
func isSplitPunct(r rune) bool {
	return r != '\'' && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}
