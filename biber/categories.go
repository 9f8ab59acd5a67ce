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

package biber

import (
	"lingprof/pattern"
)

// Grammatical category patterns referenced by the feature rules. These
// are process-wide immutable constants; patterns are stateless and safe
// to share across concurrent analyses.
var (
	anyTok = pattern.Any()

	catDo    = pattern.Words("do", "does", "did", "doing", "done")
	catHave  = pattern.Words("have", "has", "had", "having", "'ve", "'d")
	catBe    = pattern.Words("am", "is", "are", "was", "were", "being", "been", "'m", "'re")
	catModal = pattern.Words(
		"can", "may", "shall", "will", "'ll", "could", "might", "should",
		"would", "must",
	)
	catAux = pattern.Alt(catDo, catHave, catBe, catModal, pattern.Words("'s"))

	catSubjPro   = pattern.Words("i", "we", "he", "she", "they")
	catPossPro   = pattern.Words("my", "our", "your", "his", "their", "its")
	catReflexPro = pattern.Words(
		"myself", "ourselves", "himself", "themselves", "herself",
		"yourself", "yourselves", "itself",
	)
	catObjPro = pattern.Words("me", "us", "him", "them")
	catPro    = pattern.Alt(
		catSubjPro, catObjPro, catPossPro, catReflexPro,
		pattern.Words("you", "her", "it"),
	)

	catPrep = pattern.Words(
		"against", "amid", "amidst", "among", "amongst", "at", "besides",
		"between", "by", "despite", "during", "except", "for", "from", "in",
		"into", "minus", "notwithstanding", "of", "off", "on", "onto",
		"opposite", "out", "per", "plus", "pro", "re", "than", "through",
		"throughout", "thru", "to", "toward", "towards", "upon", "versus",
		"via", "with", "within", "without",
	)

	catAdv  = pattern.Tags("RB", "RBR", "RBS")
	catAdj  = pattern.Tags("JJ", "JJR", "JJS")
	catNoun = pattern.Tags("NN", "NNS", "NNP", "NNPS")
	catVerb = pattern.Tags("VB", "VBD", "VBG", "VBN", "VBP", "VBZ")
	catVBN  = pattern.Tags("VBN")
	catVBG  = pattern.Tags("VBG")
	catVB   = pattern.Tags("VB")

	catPublicVerb = pattern.Words(
		"acknowledge", "admit", "agree", "assert", "claim", "complain",
		"declare", "deny", "explain", "hint", "insist", "mention",
		"proclaim", "promise", "protest", "remark", "reply", "report",
		"say", "suggest", "swear", "write",
	)
	catPrivateVerb = pattern.Words(
		"anticipate", "assume", "believe", "conclude", "decide",
		"demonstrate", "determine", "discover", "doubt", "estimate",
		"fear", "feel", "find", "forget", "guess", "hear", "hope",
		"imagine", "imply", "indicate", "infer", "know", "learn", "mean",
		"notice", "prove", "realize", "recognize", "remember", "reveal",
		"see", "show", "suppose", "think", "understand",
	)
	catSuasiveVerb = pattern.Words(
		"agree", "arrange", "ask", "beg", "command", "decide", "demand",
		"grant", "insist", "instruct", "ordain", "pledge", "pronounce",
		"propose", "recommend", "request", "stipulate", "suggest", "urge",
	)

	catWhPro = pattern.Words("who", "whom", "whose", "which")
	catWhOther = pattern.Words(
		"what", "where", "when", "how", "whether", "why", "whoever",
		"whomever", "whichever", "wherever", "whenever", "whatever",
		"however",
	)

	catArticle = pattern.Words("a", "an", "the")
	catDemonstrative = pattern.Words("this", "that", "these", "those")
	catQuantifier    = pattern.Words(
		"each", "all", "every", "many", "much", "few", "several", "some",
		"any",
	)
	catNumeral = pattern.Words(
		"one", "two", "three", "four", "five", "six", "seven", "eight",
		"nine", "ten", "twelve", "thirteen", "fourteen", "fifteen",
		"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
		"hundred", "thousand",
	)
	catDet = pattern.Alt(catArticle, catDemonstrative, catQuantifier, catNumeral)

	catQuanPro = pattern.Words(
		"everybody", "somebody", "anybody", "everyone", "someone",
		"anyone", "everything", "something", "anything",
	)
	catTitle = pattern.Words("mr", "ms", "miss", "mrs", "dr")

	// clause punctuation, and all punctuation incl. the comma
	catClausePunct = pattern.Words(".", "!", "?", ":", ";", "-")
	catAllPunct    = pattern.Alt(catClausePunct, pattern.Words(","))

	catSeem   = pattern.Words("seem")
	catAppear = pattern.Words("appear")

	// demonstrative pronoun: "that/this/these/those" in pronominal
	// context, or "that 's"
	catDemPro = pattern.Alt(
		pattern.Seq(
			catDemonstrative,
			pattern.Alt(catVerb, catAux, catClausePunct, catWhPro, pattern.Words("and")),
		),
		pattern.Seq(pattern.Words("that"), pattern.Words("'s")),
	)
)

// conjunctPattern builds the conjunct rule shared by features 45 and 65:
// single-word conjuncts plus the multi-word linking phrases.
func conjunctPattern() pattern.Pattern {
	return pattern.Alt(
		pattern.Words(
			"alternatively", "altogether", "consequently", "conversely",
			"else", "furthermore", "hence", "however", "instead",
			"likewise", "moreover", "namely", "nevertheless",
			"nonetheless", "notwithstanding", "otherwise", "rather",
			"similarly", "therefore", "thus", "viz",
		),
		pattern.Seq(
			pattern.Words("in"),
			pattern.Words(
				"comparison", "contrast", "particular", "addition",
				"conclusion", "consequence", "sum", "summary",
			),
		),
		pattern.Seq(
			pattern.Words("in"),
			pattern.Alt(
				pattern.Seq(pattern.Words("any"), pattern.Words("event")),
				pattern.Seq(pattern.Words("any"), pattern.Words("case")),
				pattern.Seq(pattern.Words("other"), pattern.Words("words")),
			),
		),
		pattern.Seq(pattern.Words("for"), pattern.Words("example", "instance")),
		pattern.Seq(pattern.Words("by"), pattern.Words("contrast", "comparison")),
		pattern.Seq(
			pattern.Words("as"), pattern.Words("a"),
			pattern.Words("result", "consequence"),
		),
		pattern.Alt(
			pattern.Seq(pattern.Words("on"), pattern.Words("the"), pattern.Words("contrary")),
			pattern.Seq(
				pattern.Words("on"), pattern.Words("the"),
				pattern.Words("other"), pattern.Words("hand"),
			),
		),
		pattern.Seq(
			catAllPunct,
			pattern.Alt(
				pattern.Seq(pattern.Words("that"), pattern.Words("is")),
				pattern.Words("else"),
				pattern.Words("altogether"),
			),
		),
	)
}

var catConjunct = conjunctPattern()
