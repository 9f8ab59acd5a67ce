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
	"strings"

	"lingprof/nlp"
	"lingprof/pattern"
)

// The feature rules below follow Biber's published definitions. Several
// rules use inclusion/exclusion counting: a broad pattern count minus
// the count of a narrower non-target context. Because matching is
// non-overlapping, the subtraction can go negative; such values are
// reported as-is, a known property of the reference algorithm.

// A01: past tense
func (t *Text) feature01() float64 {
	return t.rate(t.countTag("VBD"))
}

// A02: perfect aspect
func (t *Text) feature02() float64 {
	p := pattern.Alt(
		pattern.Seq(catHave, pattern.Repeat(catAdv, 0, 2), catVBN),
		pattern.Seq(catHave, pattern.Alt(catNoun, catPro), catVBN),
	)
	return t.rate(t.count(p))
}

// A03: present tense
func (t *Text) feature03() float64 {
	return t.rate(t.countTag("VBP", "VBZ"))
}

// B04: place adverbials
func (t *Text) feature04() float64 {
	p := pattern.Words(
		"aboard", "above", "abroad", "across", "ahead", "alongside",
		"around", "ashore", "astern", "away", "behind", "below",
		"beneath", "beside", "downhill", "downstairs", "downstream",
		"east", "far", "hereabouts", "indoors", "inland", "inshore",
		"inside", "locally", "near", "nearby", "north", "nowhere",
		"outdoors", "outside", "overboard", "overland", "overseas",
		"south", "underfoot", "underground", "underneath", "uphill",
		"upstairs", "upstream", "west",
	)
	return t.rate(t.count(p))
}

// B05: time adverbials
func (t *Text) feature05() float64 {
	p := pattern.Words(
		"afterwards", "again", "earlier", "early", "eventually",
		"formerly", "immediately", "initially", "instantly", "late",
		"lately", "later", "momentarily", "now", "nowadays", "once",
		"originally", "presently", "previously", "recently", "shortly",
		"simultaneously", "soon", "subsequently", "today", "tomorrow",
		"tonight", "yesterday",
	)
	return t.rate(t.count(p))
}

// C06: first person pronouns
func (t *Text) feature06() float64 {
	p := pattern.Words("i", "me", "we", "us", "my", "our", "myself", "ourselves")
	return t.rate(t.count(p))
}

// C07: second person pronouns
func (t *Text) feature07() float64 {
	p := pattern.Words("you", "your", "yourself", "yourselves")
	return t.rate(t.count(p))
}

// C08: third person personal pronouns
func (t *Text) feature08() float64 {
	p := pattern.Words(
		"she", "he", "they", "her", "him", "them", "his", "their",
		"himself", "herself", "themselves",
	)
	return t.rate(t.count(p))
}

// C09: pronoun "it"
func (t *Text) feature09() float64 {
	return t.rate(t.count(pattern.Words("it")))
}

// C10: demonstrative pronouns
func (t *Text) feature10() float64 {
	return t.rate(t.count(catDemPro))
}

// C11: indefinite pronouns
func (t *Text) feature11() float64 {
	p := pattern.Words(
		"anybody", "anyone", "anything", "everybody", "everyone",
		"everything", "nobody", "none", "nothing", "nowhere", "somebody",
		"someone", "something",
	)
	return t.rate(t.count(p))
}

// C12: pro-verb do; all do-forms minus auxiliary contexts
func (t *Text) feature12() float64 {
	auxA := pattern.Seq(catDo, pattern.Repeat(catAdv, 0, 1), catVerb)
	auxB := pattern.Seq(pattern.Alt(catAllPunct, catWhPro), catDo)
	num := t.count(catDo) - t.count(auxA) - t.count(auxB)
	return t.rate(num)
}

// D13: direct WH-questions
func (t *Text) feature13() float64 {
	p := pattern.Seq(catClausePunct, catWhOther, catAux)
	return t.rate(t.count(p))
}

// E14: nominalizations
func (t *Text) feature14() float64 {
	p := pattern.WordSuffix(
		"tion", "tions", "ment", "ments", "ness", "nesses", "ity", "ities")
	return t.rate(t.count(p))
}

// F17: agentless passives (all passives minus by-passives)
func (t *Text) feature17() float64 {
	all := pattern.Alt(
		pattern.Seq(catBe, pattern.Repeat(catAdv, 0, 2), catVBN),
		pattern.Seq(catBe, pattern.Alt(catNoun, catPro), catVBN),
	)
	withBy := pattern.Alt(
		pattern.Seq(catBe, pattern.Repeat(catAdv, 0, 2), catVBN, pattern.Words("by")),
		pattern.Seq(catBe, pattern.Alt(catNoun, catPro), catVBN, pattern.Words("by")),
	)
	return t.rate(t.count(all) - t.count(withBy))
}

// F18: by-passives
func (t *Text) feature18() float64 {
	p := pattern.Alt(
		pattern.Seq(catBe, pattern.Repeat(catAdv, 0, 2), catVBN, pattern.Words("by")),
		pattern.Seq(catBe, pattern.Alt(catNoun, catPro), catVBN, pattern.Words("by")),
	)
	return t.rate(t.count(p))
}

// G19: "be" as main verb
func (t *Text) feature19() float64 {
	p := pattern.Seq(
		catBe, pattern.Alt(catDet, catPossPro, catTitle, catPrep, catAdj))
	return t.rate(t.count(p))
}

// G20: existential there
func (t *Text) feature20() float64 {
	p := pattern.Alt(
		pattern.Seq(pattern.Words("there"), pattern.Repeat(anyTok, 0, 1), catBe),
		pattern.Seq(pattern.Words("there"), pattern.Words("'s")),
	)
	return t.rate(t.count(p))
}

// H21: "that" verb complements
func (t *Text) feature21() float64 {
	patternA := pattern.Seq(
		pattern.Alt(pattern.Words("and", "nor", "but", "or", "also"), catAllPunct),
		pattern.Words("that"),
		pattern.Alt(catDet, catPro, pattern.Words("there"), catNoun, catTitle),
	)
	numA := t.count(patternA)

	speechVerb := pattern.Alt(
		catPublicVerb, catPrivateVerb, catSuasiveVerb, catSeem, catAppear)
	bAll := pattern.Seq(speechVerb, pattern.Words("that"), anyTok)
	bExcept := pattern.Seq(
		speechVerb, pattern.Words("that"),
		pattern.Alt(catVerb, catAux, catClausePunct, pattern.Words("and")),
	)
	numB := t.count(bAll) - t.count(bExcept)

	reportVerb := pattern.Alt(catPublicVerb, catPrivateVerb, catSuasiveVerb)
	cAll := pattern.Seq(
		reportVerb, catPrep, pattern.Repeat(anyTok, 1, pattern.Unbounded),
		catNoun, pattern.Words("that"),
	)
	cExcept := pattern.Seq(reportVerb, catPrep, catNoun, catNoun, pattern.Words("that"))
	numC := t.count(cAll) - t.count(cExcept)

	return t.rate(numA + numB + numC)
}

// H22: "that" adjective complements
func (t *Text) feature22() float64 {
	return t.rate(t.count(pattern.Seq(catAdj, pattern.Words("that"))))
}

// H23: WH-clauses
func (t *Text) feature23() float64 {
	reportVerb := pattern.Alt(catPublicVerb, catPrivateVerb, catSuasiveVerb)
	wh := pattern.Alt(catWhPro, catWhOther)
	all := pattern.Seq(reportVerb, wh, anyTok)
	except := pattern.Seq(reportVerb, wh, catAux)
	return t.rate(t.count(all) - t.count(except))
}

// H24: infinitives
func (t *Text) feature24() float64 {
	p := pattern.Seq(pattern.Words("to"), pattern.Repeat(catAdv, 0, 1), catVB)
	return t.rate(t.count(p))
}

// H25: present participial clauses
func (t *Text) feature25() float64 {
	p := pattern.Seq(
		catAllPunct, catVBG,
		pattern.Alt(catPrep, catDet, catWhPro, catWhOther, catPro, catAdv),
	)
	return t.rate(t.count(p))
}

// H26: past participial clauses
func (t *Text) feature26() float64 {
	p := pattern.Seq(catAllPunct, catVBN, pattern.Alt(catPrep, catAdv))
	return t.rate(t.count(p))
}

// H27: past participial WHIZ deletion relatives
func (t *Text) feature27() float64 {
	p := pattern.Seq(
		pattern.Alt(catNoun, catQuanPro), catVBN,
		pattern.Alt(catPrep, catBe, catAdv),
	)
	return t.rate(t.count(p))
}

// H28: present participial WHIZ deletion relatives
func (t *Text) feature28() float64 {
	return t.rate(t.count(pattern.Seq(catNoun, catVBG)))
}

// H29: that relative clauses on subject position
func (t *Text) feature29() float64 {
	p := pattern.Seq(
		catNoun, pattern.Words("that"), pattern.Repeat(catAdv, 0, 1),
		pattern.Alt(catAux, catVerb),
	)
	return t.rate(t.count(p))
}

// H30: that relative clauses on object position
func (t *Text) feature30() float64 {
	p := pattern.Seq(
		catNoun, pattern.Words("that"),
		pattern.Alt(
			catDet, catSubjPro, catPossPro, pattern.Words("it"), catAdj,
			catNoun, catTitle,
		),
	)
	return t.rate(t.count(p))
}

var (
	catAsk  = pattern.Words("ask", "asked", "asks")
	catTell = pattern.Words("tell", "told", "tells")
)

// H31: WH relative clauses on subject position
func (t *Text) feature31() float64 {
	tail := pattern.Seq(
		catNoun, catWhPro, pattern.Repeat(catAdv, 0, 1),
		pattern.Alt(catAux, catVerb),
	)
	all := pattern.Seq(anyTok, anyTok, tail)
	except := pattern.Seq(pattern.Alt(catAsk, catTell), anyTok, tail)
	return t.rate(t.count(all) - t.count(except))
}

// H32: WH relative clauses on object positions
func (t *Text) feature32() float64 {
	askTell := pattern.Alt(catAsk, catTell)
	p1 := pattern.Seq(anyTok, anyTok, catNoun, catWhPro, anyTok)
	p2 := pattern.Seq(
		anyTok, askTell, catNoun, catWhPro, pattern.Alt(catAdv, catAux, catVerb))
	p3 := pattern.Seq(anyTok, askTell, catNoun, catWhPro, anyTok)
	p4 := pattern.Seq(
		anyTok, anyTok, catNoun, catWhPro, pattern.Alt(catAdv, catAux, catVerb))
	return t.rate(t.count(p1) + t.count(p2) - t.count(p4) - t.count(p3))
}

// H33: pied-piping relative clauses
func (t *Text) feature33() float64 {
	return t.rate(t.count(pattern.Seq(catPrep, catWhPro)))
}

// H34: sentence relatives
func (t *Text) feature34() float64 {
	p := pattern.Seq(pattern.Words(","), pattern.Words("which"))
	return t.rate(t.count(p))
}

// H35: causative adverbial subordinators
func (t *Text) feature35() float64 {
	return t.rate(t.count(pattern.Words("because")))
}

// H36: concessive adverbial subordinators
func (t *Text) feature36() float64 {
	return t.rate(t.count(pattern.Words("although", "though")))
}

// H37: conditional adverbial subordinators
func (t *Text) feature37() float64 {
	return t.rate(t.count(pattern.Words("if", "unless")))
}

// H38: other adverbial subordinators (multiple functions)
func (t *Text) feature38() float64 {
	p := pattern.Alt(
		pattern.Words("since", "while", "whilst", "whereupon", "whereas", "whereby"),
		pattern.Seq(pattern.Words("such", "so"), pattern.Words("that")),
		pattern.Seq(
			pattern.Words("inasmuch", "forasmuch", "insofar", "insomuch"),
			pattern.Words("as"),
		),
		pattern.Seq(
			pattern.Words("as"), pattern.Words("long", "soon"), pattern.Words("as")),
	)
	return t.rate(t.count(p))
}

// I39: total prepositional phrases
func (t *Text) feature39() float64 {
	return t.rate(t.count(catPrep))
}

// I40: attributive adjectives
func (t *Text) feature40() float64 {
	return t.rate(t.count(pattern.Seq(catAdj, pattern.Alt(catAdj, catNoun))))
}

// I41: predicative adjectives
func (t *Text) feature41() float64 {
	aAll := pattern.Seq(catBe, catAdj, anyTok)
	aExcept := pattern.Seq(catBe, catAdj, pattern.Alt(catAdj, catAdv, catNoun))
	numA := t.count(aAll) - t.count(aExcept)

	bAll := pattern.Seq(catBe, catAdj, catAdv, anyTok)
	bExcept := pattern.Seq(catBe, catAdj, catAdv, pattern.Alt(catAdj, catNoun))
	numB := t.count(bAll) - t.count(bExcept)

	return t.rate(numA + numB)
}

// I42: total adverbs
func (t *Text) feature42() float64 {
	return t.rate(t.count(catAdv))
}

// J43: type/token ratio (plain ratio, not a per-1000 rate)
func (t *Text) feature43() float64 {
	return float64(t.TypeCount()) / float64(t.TokenCount())
}

// J44: word length; computed from the raw text with digits and the
// suffixes 's 'm 't stripped, not from the tagged stream
func (t *Text) feature44() float64 {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, t.Raw)
	for _, sfx := range []string{"'s", "'m", "'t"} {
		cleaned = strings.ReplaceAll(cleaned, sfx, "")
	}
	words := nlp.ExtractWords(cleaned)
	if len(words) == 0 {
		return 0
	}
	var total int
	for _, w := range words {
		total += len(w)
	}
	return float64(total) / float64(len(words))
}

// K45: conjuncts
func (t *Text) feature45() float64 {
	return t.rate(t.count(catConjunct))
}

// K46: downtoners
func (t *Text) feature46() float64 {
	p := pattern.Words(
		"almost", "barely", "hardly", "merely", "mildly", "nearly",
		"only", "partially", "partly", "practically", "scarcely",
		"slightly", "somewhat",
	)
	return t.rate(t.count(p))
}

// K47: hedges
func (t *Text) feature47() float64 {
	direct := pattern.Alt(
		pattern.Seq(pattern.Words("at"), pattern.Words("about")),
		pattern.Seq(pattern.Words("something"), pattern.Words("like")),
		pattern.Seq(pattern.Words("more"), pattern.Words("or"), pattern.Words("less")),
		pattern.Words("almost"),
		pattern.Words("maybe"),
	)
	numA := t.count(direct)

	sortKindOf := pattern.Seq(pattern.Words("sort", "kind"), pattern.Words("of"))
	bAll := pattern.Seq(anyTok, sortKindOf)
	bExcept := pattern.Seq(
		pattern.Alt(catDet, catAdj, catPossPro, catWhOther), sortKindOf)
	numB := t.count(bAll) - t.count(bExcept)

	return t.rate(numA + numB)
}

// K48: amplifiers
func (t *Text) feature48() float64 {
	p := pattern.Words(
		"absolutely", "altogether", "completely", "enormously",
		"entirely", "extremely", "fully", "greatly", "highly",
		"intensely", "perfectly", "strongly", "thoroughly", "totally",
		"utterly", "very",
	)
	return t.rate(t.count(p))
}

// K49: emphatics
func (t *Text) feature49() float64 {
	p := pattern.Seq(
		pattern.Alt(
			pattern.Seq(pattern.Words("for"), pattern.Words("sure")),
			pattern.Seq(pattern.Words("a"), pattern.Words("lot")),
			pattern.Seq(pattern.Words("such"), pattern.Words("a")),
			pattern.Words("real"),
		),
		pattern.Alt(catAdj, pattern.Words("so")),
		pattern.Alt(catAdj, catDo),
		pattern.Alt(catVerb, pattern.Words("just", "really", "most", "more")),
	)
	return t.rate(t.count(p))
}

// K50: discourse particles
func (t *Text) feature50() float64 {
	p := pattern.Seq(
		catClausePunct,
		pattern.Words("well", "now", "anyway", "anyhow", "anyways"),
	)
	return t.rate(t.count(p))
}

// K51: demonstratives (determiner usage only)
func (t *Text) feature51() float64 {
	p := pattern.WordsWithTag("DT", "that", "this", "these", "those")
	return t.rate(t.count(p))
}

// L52: possibility modals
func (t *Text) feature52() float64 {
	return t.rate(t.count(pattern.Words("can", "may", "might", "could")))
}

// L53: necessity modals
func (t *Text) feature53() float64 {
	return t.rate(t.count(pattern.Words("ought", "should", "must")))
}

// L54: predictive modals
func (t *Text) feature54() float64 {
	return t.rate(t.count(pattern.Words("will", "would", "shall")))
}

// M55: public verbs
func (t *Text) feature55() float64 {
	return t.rate(t.count(catPublicVerb))
}

// M56: private verbs
func (t *Text) feature56() float64 {
	return t.rate(t.count(catPrivateVerb))
}

// M57: suasive verbs
func (t *Text) feature57() float64 {
	return t.rate(t.count(catSuasiveVerb))
}

// M58: seem/appear
func (t *Text) feature58() float64 {
	return t.rate(t.count(pattern.Words("seem", "appear")))
}

// N59: contractions
func (t *Text) feature59() float64 {
	all := pattern.Words("'d", "'ll", "'m", "'re", "'ve", "n't", "'s")
	except := pattern.Seq(
		pattern.Words("'s"),
		pattern.Alt(catVerb, catAux, catAdv),
		pattern.Alt(catVerb, catAdv),
		pattern.Alt(catAux, catDet, catPossPro, catPrep, catAdj),
		pattern.Alt(catClausePunct, catAdj),
	)
	return t.rate(t.count(all) - t.count(except))
}

// N60: subordinator-that deletion
func (t *Text) feature60() float64 {
	reportVerb := pattern.Alt(catPublicVerb, catPrivateVerb, catSuasiveVerb)
	p1 := pattern.Seq(reportVerb, pattern.Alt(catDemPro, catSubjPro))
	p2 := pattern.Seq(reportVerb, pattern.Alt(catPro, catNoun), pattern.Alt(catAux, catVerb))
	p3 := pattern.Seq(
		reportVerb,
		pattern.Alt(catAdj, catAdv, catDet, catPossPro),
		pattern.Repeat(catAdj, 0, 1),
		catNoun,
		pattern.Alt(catAux, catVerb),
	)
	return t.rate(t.count(p1) + t.count(p2) + t.count(p3))
}

// N61: stranded prepositions
func (t *Text) feature61() float64 {
	return t.rate(t.count(pattern.Seq(catPrep, catAllPunct)))
}

// N62: split infinitives
func (t *Text) feature62() float64 {
	p := pattern.Seq(
		pattern.Words("to"), catAdv, pattern.Repeat(catAdv, 0, 1), catVB)
	return t.rate(t.count(p))
}

// N63: split auxiliaries
func (t *Text) feature63() float64 {
	p := pattern.Seq(catAux, catAdv, pattern.Repeat(catAdv, 0, 1), catVB)
	return t.rate(t.count(p))
}

// O64: phrasal coordination
func (t *Text) feature64() float64 {
	phrase := pattern.Alt(catAdv, catAdj, catVerb, catNoun)
	p := pattern.Seq(phrase, pattern.Words("and"), phrase)
	return t.rate(t.count(p))
}

// O65: independent clause coordination
func (t *Text) feature65() float64 {
	p1 := pattern.Seq(
		pattern.Words(","), pattern.Words("and"),
		pattern.Words("it", "so", "then", "you", "there"),
		pattern.Alt(catBe, catDemPro, catSubjPro),
	)
	p2 := pattern.Seq(catClausePunct, pattern.Words("and"))
	p3 := pattern.Seq(
		pattern.Words("and"),
		pattern.Alt(
			catWhPro, catWhOther,
			pattern.Words("because", "though", "although", "if", "unless"),
			pattern.Words("well", "now", "anyway", "anyhow", "anyways"),
			catConjunct,
		),
	)
	return t.rate(t.count(pattern.Alt(p1, p2, p3)))
}

// P66: synthetic negation
func (t *Text) feature66() float64 {
	p := pattern.Alt(
		pattern.Seq(pattern.Words("no"), pattern.Alt(catQuantifier, catAdj, catNoun)),
		pattern.Words("neither", "nor"),
	)
	return t.rate(t.count(p))
}

// P67: analytic negation
func (t *Text) feature67() float64 {
	return t.rate(t.count(pattern.Words("not", "n't")))
}
