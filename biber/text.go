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

// Package biber computes the 67-feature grammatical/discourse profile
// defined by Douglas Biber in Variation across Speech and Writing.
// Features 15 (gerunds) and 16 (total other nouns) have no generalized
// algorithm and are never computed.
package biber

import (
	"fmt"
	"strings"

	"lingprof/lperror"
	"lingprof/nlp"
	"lingprof/pattern"
)

// Text is a tagged document prepared for Biber feature extraction.
// It is built once per analysis and never mutated afterwards.
type Text struct {
	// Raw is the input text as received.
	Raw string

	// Tokens are the word tokens in source order, original casing.
	Tokens []string

	// Tagged is the token stream the pattern rules run on: surface
	// forms lower-cased, tag casing preserved.
	Tagged []pattern.Token
}

// NewText tokenizes and tags raw using the supplied capabilities.
// A tokenizer/tagger failure surfaces as TaggingFailureError.
func NewText(raw string, tokenizer nlp.Tokenizer, tagger nlp.Tagger) (*Text, error) {
	tokens := tokenizer.Tokenize(raw)
	tagged, err := tagger.Tag(tokens)
	if err != nil {
		return nil, lperror.TaggingFailureError{
			Msg: fmt.Sprintf("tagger failed: %s", err),
		}
	}
	if len(tagged) != len(tokens) {
		return nil, lperror.TaggingFailureError{
			Msg: fmt.Sprintf(
				"tagger returned %d tags for %d tokens", len(tagged), len(tokens)),
		}
	}
	for i, t := range tagged {
		tagged[i] = pattern.Token{Word: strings.ToLower(t.Word), Tag: t.Tag}
	}
	return &Text{Raw: raw, Tokens: tokens, Tagged: tagged}, nil
}

// NewTaggedText wraps an already tokenized and tagged stream. Surface
// forms are lower-cased for matching; the token list keeps original
// casing for the type/token ratio.
func NewTaggedText(tagged []pattern.Token) *Text {
	tokens := make([]string, len(tagged))
	lowered := make([]pattern.Token, len(tagged))
	for i, t := range tagged {
		tokens[i] = t.Word
		lowered[i] = pattern.Token{Word: strings.ToLower(t.Word), Tag: t.Tag}
	}
	return &Text{Tokens: tokens, Tagged: lowered}
}

// TokenCount returns N, the number of word tokens.
func (t *Text) TokenCount() int {
	return len(t.Tokens)
}

// TypeCount returns V, the number of distinct token forms
// (case-sensitive, as produced by the tokenizer).
func (t *Text) TypeCount() int {
	types := make(map[string]bool, len(t.Tokens))
	for _, tok := range t.Tokens {
		types[tok] = true
	}
	return len(types)
}

// count evaluates a pattern against the tagged stream.
func (t *Text) count(p pattern.Pattern) int {
	return pattern.Count(p, t.Tagged)
}

// rate normalizes a match count to occurrences per 1000 tokens.
func (t *Text) rate(num int) float64 {
	return 1000 * float64(num) / float64(len(t.Tokens))
}

// countTag counts tokens carrying exactly the given tag.
func (t *Text) countTag(tags ...string) int {
	var num int
	for _, tok := range t.Tagged {
		for _, tag := range tags {
			if tok.Tag == tag {
				num++
				break
			}
		}
	}
	return num
}
