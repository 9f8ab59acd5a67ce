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

package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func toks(items ...[2]string) []Token {
	ans := make([]Token, len(items))
	for i, item := range items {
		ans[i] = Token{Word: item[0], Tag: item[1]}
	}
	return ans
}

func TestWordsCaseInsensitive(t *testing.T) {
	stream := toks([2]string{"The", "DT"}, [2]string{"cat", "NN"})
	assert.Equal(t, 1, Count(Words("the"), stream))
	assert.Equal(t, 1, Count(Words("CAT"), stream))
	assert.Equal(t, 0, Count(Words("dog"), stream))
}

func TestTagsExact(t *testing.T) {
	stream := toks([2]string{"runs", "VBZ"}, [2]string{"fast", "RB"})
	assert.Equal(t, 1, Count(Tags("VBZ"), stream))
	assert.Equal(t, 0, Count(Tags("vbz"), stream))
	assert.Equal(t, 2, Count(Tags("VBZ", "RB"), stream))
}

func TestWordsWithTag(t *testing.T) {
	stream := toks([2]string{"that", "DT"}, [2]string{"that", "IN"})
	assert.Equal(t, 1, Count(WordsWithTag("DT", "that", "this"), stream))
}

func TestWordSuffixRequiresStem(t *testing.T) {
	stream := toks(
		[2]string{"creation", "NN"},
		[2]string{"tion", "NN"},
		[2]string{"nation", "NN"},
	)
	assert.Equal(t, 2, Count(WordSuffix("tion"), stream))
}

func TestAltPrefersFirstListed(t *testing.T) {
	stream := toks([2]string{"a", "X"}, [2]string{"b", "X"}, [2]string{"a", "X"})
	p := Alt(Seq(Words("a"), Words("b")), Words("a"))
	// first match consumes "a b", leaving a single "a"
	assert.Equal(t, 2, Count(p, stream))
}

func TestRepeatGreedyWithBacktracking(t *testing.T) {
	stream := toks(
		[2]string{"w", "A"}, [2]string{"x", "B"},
		[2]string{"y", "B"}, [2]string{"z", "C"},
	)
	p := Seq(Tags("A"), Repeat(Tags("B"), 0, 2), Tags("C"))
	assert.Equal(t, 1, Count(p, stream))
}

func TestRepeatMaxIsHardBound(t *testing.T) {
	stream := toks(
		[2]string{"w", "A"}, [2]string{"x", "B"}, [2]string{"y", "B"},
		[2]string{"y2", "B"}, [2]string{"z", "C"},
	)
	p := Seq(Tags("A"), Repeat(Tags("B"), 0, 2), Tags("C"))
	assert.Equal(t, 0, Count(p, stream))
}

func TestRepeatUnbounded(t *testing.T) {
	stream := toks(
		[2]string{"w", "A"}, [2]string{"x", "X"}, [2]string{"y", "X"},
		[2]string{"z", "Z"},
	)
	p := Seq(Tags("A"), Repeat(Any(), 1, Unbounded), Tags("Z"))
	assert.Equal(t, 1, Count(p, stream))
}

func TestCountNonOverlapping(t *testing.T) {
	stream := toks(
		[2]string{"a", "N"}, [2]string{"b", "N"}, [2]string{"c", "N"})
	p := Seq(Tags("N"), Tags("N"))
	// "a b" consumes both tokens; the trailing "c" cannot pair up
	assert.Equal(t, 1, Count(p, stream))
}

func TestCountZeroWidthAdvances(t *testing.T) {
	stream := toks([2]string{"a", "A"}, [2]string{"b", "A"})
	p := Repeat(Tags("B"), 0, 2)
	assert.Equal(t, 2, Count(p, stream))
}

func TestCountEmptyStream(t *testing.T) {
	assert.Equal(t, 0, Count(Words("x"), nil))
}

func TestAltPanicsOnNoAlternatives(t *testing.T) {
	assert.Panics(t, func() { Alt() })
}
