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
	"strings"
	"unicode"

	"lingprof/pattern"
)

// Tagger assigns a Penn-Treebank-style POS tag to every token.
// Implementations must return exactly one tag per input token.
type Tagger interface {
	Tag(words []string) ([]pattern.Token, error)
}

// RuleTagger is the default in-process tagger: a closed-class lexicon
// baseline followed by suffix heuristics and a contextual correction
// pass. It is deliberately small - callers needing state-of-the-art
// accuracy should plug in an external Tagger.
type RuleTagger struct {
	lexicon map[string]string
}

func NewRuleTagger() *RuleTagger {
	rt := &RuleTagger{lexicon: make(map[string]string, len(defaultLexicon))}
	for w, tag := range defaultLexicon {
		rt.lexicon[w] = tag
	}
	return rt
}

// Extend adds or overrides lexicon entries (word -> tag). Keys are
// matched case-insensitively.
func (rt *RuleTagger) Extend(entries map[string]string) {
	for w, tag := range entries {
		rt.lexicon[strings.ToLower(w)] = tag
	}
}

func (rt *RuleTagger) Tag(words []string) ([]pattern.Token, error) {
	ans := make([]pattern.Token, len(words))
	for i, w := range words {
		ans[i] = pattern.Token{Word: w, Tag: rt.baseline(w, i == 0)}
	}
	// contextual correction pass
	for i := 1; i < len(ans); i++ {
		prev, curr := ans[i-1], ans[i]
		switch {
		// a modal governs a base-form verb ("can run")
		case prev.Tag == "MD" && (strings.HasPrefix(curr.Tag, "VB") || curr.Tag == "NN"):
			ans[i].Tag = "VB"
		// infinitive marker governs a base-form verb ("to run")
		case prev.Tag == "TO" && curr.Tag == "NN" && rt.lexicon[strings.ToLower(curr.Word)] == "":
			// lexicon nouns stay; only heuristic guesses flip
			ans[i].Tag = "VB"
		// a determiner governs a nominal ("the run")
		case prev.Tag == "DT" && curr.Tag == "VB":
			ans[i].Tag = "NN"
		}
	}
	return ans, nil
}

func (rt *RuleTagger) baseline(word string, sentenceStart bool) string {
	low := strings.ToLower(word)
	if tag, ok := rt.lexicon[low]; ok {
		return tag
	}
	if tag := punctTag(word); tag != "" {
		return tag
	}
	if isNumeric(word) {
		return "CD"
	}
	if !sentenceStart && startsUpper(word) {
		return "NNP"
	}
	return suffixTag(low)
}

func punctTag(word string) string {
	switch word {
	case ".", "!", "?":
		return "."
	case ",":
		return ","
	case ";", ":", "-", "--", "...":
		return ":"
	case "(", "[", "{":
		return "("
	case ")", "]", "}":
		return ")"
	case "\"", "''", "``", "`":
		return "''"
	}
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return ""
		}
	}
	return ":"
}

func isNumeric(word string) bool {
	var digits bool
	for _, r := range word {
		if unicode.IsDigit(r) {
			digits = true

		} else if r != '.' && r != ',' && r != '-' {
			return false
		}
	}
	return digits
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func suffixTag(low string) string {
	switch {
	case len(low) > 4 && strings.HasSuffix(low, "ing"):
		return "VBG"
	case len(low) > 3 && strings.HasSuffix(low, "ed"):
		return "VBD"
	case len(low) > 3 && strings.HasSuffix(low, "ly"):
		return "RB"
	case hasAnySuffix(low, "tions", "ments", "nesses", "ities", "ences", "ances"):
		return "NNS"
	case hasAnySuffix(low, "tion", "ment", "ness", "ity", "ence", "ance"):
		return "NN"
	case len(low) > 4 && strings.HasSuffix(low, "est"):
		return "JJS"
	case hasAnySuffix(low, "ous", "ful", "ive", "able", "ible", "ical"):
		return "JJ"
	case len(low) > 2 && strings.HasSuffix(low, "s") &&
		!strings.HasSuffix(low, "ss") && !strings.HasSuffix(low, "us") &&
		!strings.HasSuffix(low, "is"):
		return "NNS"
	}
	return "NN"
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, sfx := range suffixes {
		if len(s) > len(sfx) && strings.HasSuffix(s, sfx) {
			return true
		}
	}
	return false
}

// defaultLexicon covers the English closed classes plus frequent
// irregular verb forms. Open-class words fall through to the suffix
// heuristics.
var defaultLexicon = map[string]string{
	// determiners and quantifiers
	"the": "DT", "a": "DT", "an": "DT",
	"this": "DT", "that": "DT", "these": "DT", "those": "DT",
	"each": "DT", "all": "DT", "every": "DT", "many": "DT", "much": "DT",
	"few": "DT", "several": "DT", "some": "DT", "any": "DT", "no": "DT",
	"another": "DT", "either": "DT", "neither": "DT", "both": "DT",

	// prepositions and subordinators
	"of": "IN", "in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN",
	"with": "IN", "from": "IN", "into": "IN", "onto": "IN", "upon": "IN",
	"about": "IN", "over": "IN", "under": "IN", "between": "IN",
	"among": "IN", "through": "IN", "throughout": "IN", "during": "IN",
	"against": "IN", "without": "IN", "within": "IN", "toward": "IN",
	"towards": "IN", "after": "IN", "before": "IN", "since": "IN",
	"until": "IN", "because": "IN", "although": "IN", "though": "IN",
	"if": "IN", "unless": "IN", "while": "IN", "whereas": "IN",
	"despite": "IN", "except": "IN", "besides": "IN", "per": "IN",
	"versus": "IN", "via": "IN", "off": "IN", "out": "IN", "whether": "IN",
	"to": "TO",

	// coordinators
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC",

	// personal pronouns
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "us": "PRP",
	"them": "PRP", "myself": "PRP", "yourself": "PRP", "himself": "PRP",
	"herself": "PRP", "itself": "PRP", "ourselves": "PRP",
	"yourselves": "PRP", "themselves": "PRP",

	// possessives
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "her": "PRP$",
	"its": "PRP$", "our": "PRP$", "their": "PRP$",

	// modals
	"can": "MD", "could": "MD", "may": "MD", "might": "MD", "shall": "MD",
	"should": "MD", "will": "MD", "would": "MD", "must": "MD", "ought": "MD",
	"'ll": "MD", "'d": "MD",

	// auxiliaries and frequent verb forms
	"am": "VBP", "is": "VBZ", "are": "VBP", "was": "VBD", "were": "VBD",
	"be": "VB", "been": "VBN", "being": "VBG",
	"have": "VBP", "has": "VBZ", "had": "VBD", "having": "VBG",
	"do": "VBP", "does": "VBZ", "did": "VBD", "doing": "VBG", "done": "VBN",
	"'m": "VBP", "'re": "VBP", "'ve": "VBP", "'s": "POS",
	"n't": "RB", "not": "RB",

	// wh-words
	"who": "WP", "whom": "WP", "whose": "WP$", "which": "WDT", "what": "WDT",
	"where": "WRB", "when": "WRB", "why": "WRB", "how": "WRB",

	// existential
	"there": "EX",

	// frequent adverbs
	"very": "RB", "too": "RB", "also": "RB", "just": "RB", "really": "RB",
	"quite": "RB", "never": "RB", "always": "RB", "often": "RB",
	"sometimes": "RB", "then": "RB", "here": "RB", "soon": "RB",
	"again": "RB", "still": "RB", "already": "RB", "now": "RB",

	// small numerals
	"one": "CD", "two": "CD", "three": "CD", "four": "CD", "five": "CD",
	"six": "CD", "seven": "CD", "eight": "CD", "nine": "CD", "ten": "CD",

	// titles
	"mr": "NNP", "mrs": "NNP", "ms": "NNP", "dr": "NNP", "miss": "NNP",

	// irregular past forms (open class, but unguessable by suffix)
	"sat": "VBD", "ran": "VBD", "went": "VBD", "said": "VBD", "saw": "VBD",
	"came": "VBD", "took": "VBD", "got": "VBD", "made": "VBD", "knew": "VBD",
	"thought": "VBD", "found": "VBD", "gave": "VBD", "told": "VBD",
	"left": "VBD", "felt": "VBD", "kept": "VBD", "began": "VBD",
	"brought": "VBD", "wrote": "VBD", "stood": "VBD", "met": "VBD",
	"sent": "VBD", "built": "VBD", "spoke": "VBD", "ate": "VBD",
	"drank": "VBD", "drove": "VBD", "fell": "VBD", "flew": "VBD",
	"grew": "VBD", "heard": "VBD", "held": "VBD", "led": "VBD",
	"lost": "VBD", "rose": "VBD", "sang": "VBD", "slept": "VBD",
	"spent": "VBD", "taught": "VBD", "threw": "VBD", "wore": "VBD",
	"won": "VBD",

	// frequent base/participle forms
	"say": "VB", "see": "VB", "go": "VB", "know": "VB", "think": "VB",
	"take": "VB", "come": "VB", "give": "VB", "find": "VB", "tell": "VB",
	"feel": "VB", "run": "VB", "eat": "VB", "write": "VB", "read": "VB",
	"seem": "VB", "appear": "VB",
	"says": "VBZ", "sees": "VBZ", "goes": "VBZ", "knows": "VBZ",
	"thinks": "VBZ", "takes": "VBZ", "comes": "VBZ", "gives": "VBZ",
	"finds": "VBZ", "tells": "VBZ", "feels": "VBZ", "runs": "VBZ",
	"seems": "VBZ", "appears": "VBZ",
	"given": "VBN", "taken": "VBN", "seen": "VBN", "known": "VBN",
	"written": "VBN", "spoken": "VBN", "broken": "VBN", "chosen": "VBN",
	"eaten": "VBN", "fallen": "VBN", "forgotten": "VBN", "gone": "VBN",
	"grown": "VBN", "hidden": "VBN", "shown": "VBN", "thrown": "VBN",
	"worn": "VBN",
}
