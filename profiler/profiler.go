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

// Package profiler exposes the public entry points of LINGPROF: one
// call per document per battery. Calls are independent and side-effect
// free, so callers may parallelize across documents freely.
package profiler

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lingprof/biber"
	"lingprof/cnf"
	"lingprof/lperror"
	"lingprof/nlp"
	"lingprof/quita"
	"lingprof/results"
)

// Analyzer bundles the NLP capabilities used by both feature engines.
// The zero-config constructor wires the built-in defaults; any
// capability can be replaced for a different language or a better
// tagging backend.
type Analyzer struct {
	tokenizer nlp.Tokenizer
	tagger    nlp.Tagger
	counter   nlp.FreqCounter
}

// NewAnalyzer creates an analyzer with the default capabilities,
// applying the tagger lexicon extensions from conf (which may be nil).
func NewAnalyzer(conf *cnf.Conf) *Analyzer {
	tagger := nlp.NewRuleTagger()
	if conf != nil && len(conf.TaggerLexicon) > 0 {
		tagger.Extend(conf.TaggerLexicon)
	}
	return &Analyzer{
		tokenizer: nlp.NewWordTokenizer(),
		tagger:    tagger,
		counter:   nlp.NewInsertionOrderCounter(),
	}
}

// NewCustomAnalyzer creates an analyzer with caller-supplied
// capabilities.
func NewCustomAnalyzer(tokenizer nlp.Tokenizer, tagger nlp.Tagger, counter nlp.FreqCounter) *Analyzer {
	return &Analyzer{tokenizer: tokenizer, tagger: tagger, counter: counter}
}

// BiberProfile computes the 65 computable Biber features for rawText.
// A panic in a plugged-in capability surfaces as an error.
func (a *Analyzer) BiberProfile(rawText string) (prof *results.Profile, err error) {
	defer func() {
		if r := recover(); r != nil {
			prof, err = nil, lperror.PanicValueToErr(r)
		}
	}()
	t0 := time.Now()
	text, err := biber.NewText(rawText, a.tokenizer, a.tagger)
	if err != nil {
		return nil, err
	}
	ans, err := text.Profile()
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("analysisId", uuid.New().String()).
		Str("profileType", ans.Type()).
		Int("numTokens", text.TokenCount()).
		Float64("procTimeSecs", time.Since(t0).Seconds()).
		Msg("computed Biber profile")
	return ans, nil
}

// QuitaProfile computes the 18 QUITA indices for rawText.
// A panic in a plugged-in capability surfaces as an error.
func (a *Analyzer) QuitaProfile(rawText string) (prof *results.Profile, err error) {
	defer func() {
		if r := recover(); r != nil {
			prof, err = nil, lperror.PanicValueToErr(r)
		}
	}()
	t0 := time.Now()
	text, err := quita.NewText(rawText, a.tagger, a.counter)
	if err != nil {
		return nil, err
	}
	ans, err := text.Profile()
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("analysisId", uuid.New().String()).
		Str("profileType", ans.Type()).
		Int("numTokens", text.TokenCount()).
		Int("numTypes", text.TypeCount()).
		Float64("procTimeSecs", time.Since(t0).Seconds()).
		Msg("computed QUITA profile")
	return ans, nil
}

// ComputeBiberProfile computes the Biber battery with the default
// capabilities.
func ComputeBiberProfile(rawText string) (*results.Profile, error) {
	return NewAnalyzer(nil).BiberProfile(rawText)
}

// ComputeQuitaProfile computes the QUITA battery with the default
// capabilities.
func ComputeQuitaProfile(rawText string) (*results.Profile, error) {
	return NewAnalyzer(nil).QuitaProfile(rawText)
}
