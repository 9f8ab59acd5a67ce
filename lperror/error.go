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

package lperror

import (
	"encoding/json"
	"fmt"
)

// DegenerateInputError signals that a text is too small or too uniform
// for a requested feature to be defined (e.g. zero tokens for a Biber
// rate, or a single type where a formula divides by 1 - 1/sqrt(V)).
type DegenerateInputError struct {
	Msg string
}

func (err DegenerateInputError) Error() string {
	return err.Msg
}

func (err DegenerateInputError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ----------------------------

// TaggingFailureError signals that an external tokenizer/tagger capability
// failed or returned malformed output (e.g. token/tag count mismatch).
// It is propagated unchanged - the engines perform no speculative repair.
type TaggingFailureError struct {
	Msg string
}

func (err TaggingFailureError) Error() string {
	return err.Msg
}

func (err TaggingFailureError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// -----------------

func PanicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from an error of type %T", v)
	}
	return
}
