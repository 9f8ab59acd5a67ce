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

// Package pattern provides a small combinator language for matching
// sequences of part-of-speech tagged tokens. Patterns are composed from
// single-token predicates via sequencing, alternation and bounded
// repetition and evaluated by a leftmost, non-overlapping counter.
package pattern

import "strings"

// Token is a single (surface form, POS tag) unit of a tagged text.
type Token struct {
	Word string
	Tag  string
}

// Unbounded can be used as the max argument of Repeat to express
// one-or-more / zero-or-more repetition.
const Unbounded = -1

// Pattern matches a span of tokens starting at a fixed position.
//
// Match must invoke next once for every admissible end position, in
// preference order (greedy repetition, leftmost-listed alternative),
// and stop as soon as next returns true. This gives the same match
// boundaries as a backtracking regular expression engine evaluating
// the equivalent text-level pattern.
type Pattern interface {
	Match(tokens []Token, pos int, next func(end int) bool) bool
}

// ---------------------- single-token predicates

type wordSet struct {
	words map[string]bool
}

func (p wordSet) Match(tokens []Token, pos int, next func(end int) bool) bool {
	if pos < len(tokens) && p.words[strings.ToLower(tokens[pos].Word)] {
		return next(pos + 1)
	}
	return false
}

// Words matches a single token whose surface form (case-insensitively)
// is one of the given words.
func Words(words ...string) Pattern {
	ans := wordSet{words: make(map[string]bool, len(words))}
	for _, w := range words {
		ans.words[strings.ToLower(w)] = true
	}
	return ans
}

type tagSet struct {
	tags map[string]bool
}

func (p tagSet) Match(tokens []Token, pos int, next func(end int) bool) bool {
	if pos < len(tokens) && p.tags[tokens[pos].Tag] {
		return next(pos + 1)
	}
	return false
}

// Tags matches a single token whose POS tag is one of the given tags
// (exact, case-sensitive comparison).
func Tags(tags ...string) Pattern {
	ans := tagSet{tags: make(map[string]bool, len(tags))}
	for _, t := range tags {
		ans.tags[t] = true
	}
	return ans
}

type taggedWordSet struct {
	words map[string]bool
	tag   string
}

func (p taggedWordSet) Match(tokens []Token, pos int, next func(end int) bool) bool {
	if pos < len(tokens) && tokens[pos].Tag == p.tag &&
		p.words[strings.ToLower(tokens[pos].Word)] {
		return next(pos + 1)
	}
	return false
}

// WordsWithTag matches a single token by both its surface form and
// its exact POS tag.
func WordsWithTag(tag string, words ...string) Pattern {
	ans := taggedWordSet{words: make(map[string]bool, len(words)), tag: tag}
	for _, w := range words {
		ans.words[strings.ToLower(w)] = true
	}
	return ans
}

type suffixSet struct {
	suffixes []string
}

func (p suffixSet) Match(tokens []Token, pos int, next func(end int) bool) bool {
	if pos >= len(tokens) {
		return false
	}
	w := strings.ToLower(tokens[pos].Word)
	for _, sfx := range p.suffixes {
		// the stem must be non-empty
		if len(w) > len(sfx) && strings.HasSuffix(w, sfx) {
			return next(pos + 1)
		}
	}
	return false
}

// WordSuffix matches a single token whose surface form ends with one of
// the given suffixes preceded by at least one character.
func WordSuffix(suffixes ...string) Pattern {
	return suffixSet{suffixes: suffixes}
}

type anyToken struct{}

func (p anyToken) Match(tokens []Token, pos int, next func(end int) bool) bool {
	if pos < len(tokens) {
		return next(pos + 1)
	}
	return false
}

// Any matches any single token.
func Any() Pattern {
	return anyToken{}
}

// ---------------------- combinators

type seq struct {
	items []Pattern
}

func (p seq) Match(tokens []Token, pos int, next func(end int) bool) bool {
	return p.matchFrom(tokens, pos, 0, next)
}

func (p seq) matchFrom(tokens []Token, pos, idx int, next func(end int) bool) bool {
	if idx == len(p.items) {
		return next(pos)
	}
	return p.items[idx].Match(tokens, pos, func(end int) bool {
		return p.matchFrom(tokens, end, idx+1, next)
	})
}

// Seq matches the given patterns one after another with no gaps.
func Seq(items ...Pattern) Pattern {
	return seq{items: items}
}

type alt struct {
	items []Pattern
}

func (p alt) Match(tokens []Token, pos int, next func(end int) bool) bool {
	for _, item := range p.items {
		if item.Match(tokens, pos, next) {
			return true
		}
	}
	return false
}

// Alt matches if any of the given patterns matches; alternatives are
// tried in the listed order. At least one alternative is required.
func Alt(items ...Pattern) Pattern {
	if len(items) == 0 {
		panic("pattern.Alt requires at least one alternative")
	}
	return alt{items: items}
}

type repeat struct {
	item     Pattern
	min, max int
}

func (p repeat) Match(tokens []Token, pos int, next func(end int) bool) bool {
	return p.matchN(tokens, pos, 0, next)
}

func (p repeat) matchN(tokens []Token, pos, n int, next func(end int) bool) bool {
	// greedy: prefer one more repetition over stopping here
	if p.max == Unbounded || n < p.max {
		if p.item.Match(tokens, pos, func(end int) bool {
			return p.matchN(tokens, end, n+1, next)
		}) {
			return true
		}
	}
	if n >= p.min {
		return next(pos)
	}
	return false
}

// Repeat matches between min and max consecutive repetitions of item
// (inclusive). Pass Unbounded as max for open-ended repetition.
func Repeat(item Pattern, min, max int) Pattern {
	return repeat{item: item, min: min, max: max}
}

// ---------------------- evaluation

// Count returns the number of non-overlapping matches of p in tokens,
// scanning left to right. A span consumed by a match is never reused by
// a subsequent match; a successful zero-width match still advances the
// scan by one position.
func Count(p Pattern, tokens []Token) int {
	var num, pos int
	for pos < len(tokens) {
		end := -1
		if p.Match(tokens, pos, func(e int) bool {
			end = e
			return true
		}) {
			num++
			if end > pos {
				pos = end

			} else {
				pos++
			}

		} else {
			pos++
		}
	}
	return num
}
