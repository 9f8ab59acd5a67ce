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
	"github.com/czcorpus/cnc-gokit/collections"
)

// Penn Treebank tag classes used by both feature engines.
var (
	VerbTags      = []string{"VB", "VBD", "VBG", "VBN", "VBP", "VBZ"}
	AdjectiveTags = []string{"JJ", "JJR", "JJS"}
	AdverbTags    = []string{"RB", "RBR", "RBS"}
	NounTags      = []string{"NN", "NNS", "NNP", "NNPS"}

	// FunctionWordTags is the closed function-word tag set used by the
	// thematic concentration indices. The PP/PP$ items come from the
	// published QUITA tag list; a Penn tagger emits PRP/PRP$ instead,
	// so personal pronouns stay outside the function-word class there,
	// matching the published reference values.
	FunctionWordTags = []string{
		"DT", "CD", "CC", "UH", "EX", "MD", "PP", "PP$",
		"WP", "WP$", "PDT", "WDT", "IN", "TO", "WRB",
	}
)

func IsVerbTag(tag string) bool {
	return collections.SliceContains(VerbTags, tag)
}

func IsAdjectiveTag(tag string) bool {
	return collections.SliceContains(AdjectiveTags, tag)
}

func IsFunctionWordTag(tag string) bool {
	return collections.SliceContains(FunctionWordTags, tag)
}
