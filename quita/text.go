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
	"fmt"
	"regexp"
	"strings"

	"lingprof/lperror"
	"lingprof/nlp"
)

var (
	suffixRegexp  = regexp.MustCompile(`'m|'s|n't`)
	digitRegexp   = regexp.MustCompile(`[0-9]`)
	bracketRegexp = regexp.MustCompile(`\[.+?\]`)
)

// CleanText prepares raw text for frequency analysis: lower-casing,
// removal of the suffixes 'm 's n't, digits and bracketed spans.
func CleanText(text string) string {
	text = strings.ToLower(text)
	text = suffixRegexp.ReplaceAllString(text, "")
	text = digitRegexp.ReplaceAllString(text, "")
	text = bracketRegexp.ReplaceAllString(text, " ")
	return text
}

// Text is a document prepared for QUITA analysis: the cleaned token
// list plus the derived type-frequency table. Built once per analysis,
// read-only afterwards.
type Text struct {
	Tokens []string
	Table  FreqTable

	tagger nlp.Tagger
	// standalone POS per token form; lazily filled
	posCache map[string]string
}

// NewText cleans and tokenizes raw and builds the frequency table.
func NewText(raw string, tagger nlp.Tagger, counter nlp.FreqCounter) (*Text, error) {
	return NewTextFromTokens(nlp.ExtractWords(CleanText(raw)), tagger, counter)
}

// NewTextFromTokens builds an analyzed text over an already tokenized
// word list.
func NewTextFromTokens(tokens []string, tagger nlp.Tagger, counter nlp.FreqCounter) (*Text, error) {
	table, err := BuildFreqTable(tokens, counter, tagger)
	if err != nil {
		return nil, err
	}
	return &Text{
		Tokens:   tokens,
		Table:    table,
		tagger:   tagger,
		posCache: make(map[string]string),
	}, nil
}

// TokenCount returns N.
func (t *Text) TokenCount() int {
	return len(t.Tokens)
}

// TypeCount returns V.
func (t *Text) TypeCount() int {
	return len(t.Table)
}

func (t *Text) checkNonEmpty() error {
	if len(t.Tokens) == 0 || len(t.Table) == 0 {
		return lperror.DegenerateInputError{
			Msg: "cannot compute index: text has no tokens",
		}
	}
	return nil
}

// posOf tags a single word out of context, memoized per text.
func (t *Text) posOf(word string) (string, error) {
	if tag, ok := t.posCache[word]; ok {
		return tag, nil
	}
	tagged, err := t.tagger.Tag([]string{word})
	if err != nil || len(tagged) != 1 {
		return "", lperror.TaggingFailureError{
			Msg: fmt.Sprintf("failed to tag word %q: %v", word, err),
		}
	}
	t.posCache[word] = tagged[0].Tag
	return tagged[0].Tag, nil
}
