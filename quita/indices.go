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
	"math"

	"lingprof/lperror"
	"lingprof/nlp"
)

// TTR returns the type-token ratio V/N.
func (t *Text) TTR() (float64, error) {
	if err := t.checkNonEmpty(); err != nil {
		return 0, err
	}
	return float64(t.TypeCount()) / float64(t.TokenCount()), nil
}

// isExactHPoint reports whether some rank's frequency equals the rank.
func (t *Text) isExactHPoint() bool {
	for _, row := range t.Table {
		if row.Freq == row.Rank {
			return true
		}
	}
	return false
}

// HPoint returns the h-point: the first rank whose frequency equals the
// rank, or the interpolation between the two ranks straddling the
// frequency=rank crossover.
func (t *Text) HPoint() (float64, error) {
	if err := t.checkNonEmpty(); err != nil {
		return 0, err
	}
	for _, row := range t.Table {
		if row.Freq == row.Rank {
			return float64(row.Rank), nil
		}
	}
	var r1 int
	for _, row := range t.Table {
		if row.Freq > row.Rank {
			r1++
		}
	}
	r2 := r1 + 1
	if r1 < 1 || r2 > len(t.Table) {
		return 0, lperror.DegenerateInputError{
			Msg: fmt.Sprintf(
				"h-point undefined: frequency=rank crossover outside table (V=%d)",
				len(t.Table)),
		}
	}
	f1 := float64(t.Table[r1-1].Freq)
	f2 := float64(t.Table[r2-1].Freq)
	h := (f1*float64(r2) - f2*float64(r1)) / (float64(r2-r1) + f1 - f2)
	return h, nil
}

// Entropy returns the raw sum over types of p*log2(p). Note the sign:
// the published QUITA definition keeps the un-negated (negative) sum
// and so do we.
func (t *Text) Entropy() (float64, error) {
	if err := t.checkNonEmpty(); err != nil {
		return 0, err
	}
	var ans float64
	for _, row := range t.Table {
		ans += row.Prob * math.Log2(row.Prob)
	}
	return ans, nil
}

// AvgTokenLength returns the mean character length over all tokens.
func (t *Text) AvgTokenLength() (float64, error) {
	if err := t.checkNonEmpty(); err != nil {
		return 0, err
	}
	var total int
	for _, tok := range t.Tokens {
		total += len(tok)
	}
	return float64(total) / float64(len(t.Tokens)), nil
}

// VocabRichness returns the R4 richness index derived from the
// cumulative probability at the h-point.
func (t *Text) VocabRichness() (float64, error) {
	h, err := t.HPoint()
	if err != nil {
		return 0, err
	}
	n := float64(t.TokenCount())
	var hCumProb float64
	if t.isExactHPoint() {
		hCumProb = t.Table[int(h)-1].CumProb

	} else {
		left := t.Table[int(h)-1].CumProb
		right := t.Table[int(h)].CumProb
		hCumProb = (left + right) / 2
	}
	return 1 - (hCumProb - h*h/(2*n)), nil
}

// RepeatRate returns the sum of squared type probabilities.
func (t *Text) RepeatRate() (float64, error) {
	if err := t.checkNonEmpty(); err != nil {
		return 0, err
	}
	var ans float64
	for _, row := range t.Table {
		ans += row.Prob * row.Prob
	}
	return ans, nil
}

// RelativeRepeatRate returns McIntosh's relative repeat rate
// (1 - sqrt(RR)) / (1 - 1/sqrt(V)). Undefined for V=1.
func (t *Text) RelativeRepeatRate() (float64, error) {
	rr, err := t.RepeatRate()
	if err != nil {
		return 0, err
	}
	v := float64(t.TypeCount())
	denom := 1 - 1/math.Sqrt(v)
	if denom == 0 {
		return 0, lperror.DegenerateInputError{
			Msg: "relative repeat rate undefined for a single-type text",
		}
	}
	return (1 - math.Sqrt(rr)) / denom, nil
}

// thematicSum accumulates the TC formula over the rank interval
// [fromRank, toRank], skipping function-word types. Ranks beyond the
// vocabulary are ignored.
func (t *Text) thematicSum(h float64, fromRank, toRank int) (float64, error) {
	f1 := float64(t.Table[0].Freq)
	denom := h * (h - 1) * f1
	var ans float64
	for rank := fromRank; rank <= toRank && rank <= len(t.Table); rank++ {
		row := t.Table[rank-1]
		if nlp.IsFunctionWordTag(row.POS) {
			continue
		}
		if denom == 0 {
			return 0, lperror.DegenerateInputError{
				Msg: "thematic concentration undefined at h-point 1",
			}
		}
		ans += 2 * (h - float64(row.Rank)) * float64(row.Freq) / denom
	}
	return ans, nil
}

// ThematicConcentration sums the weighted frequencies of the
// non-function-word types above the h-point.
func (t *Text) ThematicConcentration() (float64, error) {
	h, err := t.HPoint()
	if err != nil {
		return 0, err
	}
	return t.thematicSum(h, 1, int(h)-1)
}

// SecondaryThematicConcentration covers the next rank window, from the
// h-point up to rank 2h-1.
func (t *Text) SecondaryThematicConcentration() (float64, error) {
	h, err := t.HPoint()
	if err != nil {
		return 0, err
	}
	return t.thematicSum(h, int(h), 2*int(h)-1)
}

// Activity returns verbs / (verbs + adjectives) over all tokens,
// each token classified by its standalone POS tag.
func (t *Text) Activity() (float64, error) {
	if err := t.checkNonEmpty(); err != nil {
		return 0, err
	}
	var verbs, adjs int
	for _, tok := range t.Tokens {
		tag, err := t.posOf(tok)
		if err != nil {
			return 0, err
		}
		if nlp.IsVerbTag(tag) {
			verbs++

		} else if nlp.IsAdjectiveTag(tag) {
			adjs++
		}
	}
	if verbs+adjs == 0 {
		return 0, lperror.DegenerateInputError{
			Msg: "activity undefined: no verb or adjective tokens",
		}
	}
	return float64(verbs) / float64(verbs+adjs), nil
}

// Descriptivity returns 1 - Activity.
func (t *Text) Descriptivity() (float64, error) {
	q, err := t.Activity()
	if err != nil {
		return 0, err
	}
	return 1 - q, nil
}

// curveLength returns the cumulative Euclidean distance between the
// first upTo consecutive frequency points with a unit horizontal step.
func (t *Text) curveLength(upTo int) float64 {
	if upTo > len(t.Table) {
		upTo = len(t.Table)
	}
	var ans float64
	for i := 0; i < upTo-1; i++ {
		diff := float64(t.Table[i].Freq - t.Table[i+1].Freq)
		ans += math.Sqrt(diff*diff + 1)
	}
	return ans
}

// CurveLength returns the arc length of the whole rank-frequency curve.
func (t *Text) CurveLength() (float64, error) {
	if err := t.checkNonEmpty(); err != nil {
		return 0, err
	}
	return t.curveLength(len(t.Table)), nil
}

// CurveLengthIndicator returns 1 - L(before h) / L(all).
func (t *Text) CurveLengthIndicator() (float64, error) {
	h, err := t.HPoint()
	if err != nil {
		return 0, err
	}
	all := t.curveLength(len(t.Table))
	if all == 0 {
		return 0, lperror.DegenerateInputError{
			Msg: "curve length indicator undefined for a single-type text",
		}
	}
	return 1 - t.curveLength(int(h)-1)/all, nil
}

// Lambda returns L * log10(N) / N.
func (t *Text) Lambda() (float64, error) {
	cl, err := t.CurveLength()
	if err != nil {
		return 0, err
	}
	n := float64(t.TokenCount())
	return cl * math.Log10(n) / n, nil
}

// AdjustedModulus returns sqrt((f1/h)^2 + (V/h)^2) / log10(N).
func (t *Text) AdjustedModulus() (float64, error) {
	h, err := t.HPoint()
	if err != nil {
		return 0, err
	}
	n := float64(t.TokenCount())
	if n < 2 {
		return 0, lperror.DegenerateInputError{
			Msg: "adjusted modulus undefined for a single-token text",
		}
	}
	f1 := float64(t.Table[0].Freq)
	v := float64(t.TypeCount())
	m := math.Sqrt((f1/h)*(f1/h) + (v/h)*(v/h))
	return m / math.Log10(n), nil
}

// GiniCoef returns (V + 1 - 2*sum(freq*rank)/N) / V.
func (t *Text) GiniCoef() (float64, error) {
	if err := t.checkNonEmpty(); err != nil {
		return 0, err
	}
	var weighted float64
	for _, row := range t.Table {
		weighted += float64(row.Freq) * float64(row.Rank)
	}
	v := float64(t.TypeCount())
	n := float64(t.TokenCount())
	return (v + 1 - 2*weighted/n) / v, nil
}

// HapaxPercentage returns the number of types occurring exactly once,
// relative to the token count.
func (t *Text) HapaxPercentage() (float64, error) {
	if err := t.checkNonEmpty(); err != nil {
		return 0, err
	}
	var hapax int
	for _, row := range t.Table {
		if row.Freq == 1 {
			hapax++
		}
	}
	return float64(hapax) / float64(t.TokenCount()), nil
}

// WritersView returns the alpha angle index derived from h, f1 and V.
func (t *Text) WritersView() (float64, error) {
	h, err := t.HPoint()
	if err != nil {
		return 0, err
	}
	f1 := float64(t.Table[0].Freq)
	v := float64(t.TypeCount())
	up := (1 - h) * (f1 + v - 2*h)
	down := math.Sqrt((h-1)*(h-1)+(f1-h)*(f1-h)) *
		math.Sqrt((h-1)*(h-1)+(v-h)*(v-h))
	if down == 0 {
		return 0, lperror.DegenerateInputError{
			Msg: "writer's view undefined at h-point 1",
		}
	}
	return up / down, nil
}

// VerbDistance returns the mean token-position gap between consecutive
// verb tokens (standalone POS classification).
func (t *Text) VerbDistance() (float64, error) {
	if err := t.checkNonEmpty(); err != nil {
		return 0, err
	}
	verbPos := make([]int, 0, len(t.Tokens))
	for i, tok := range t.Tokens {
		tag, err := t.posOf(tok)
		if err != nil {
			return 0, err
		}
		if nlp.IsVerbTag(tag) {
			verbPos = append(verbPos, i)
		}
	}
	if len(verbPos) < 2 {
		return 0, lperror.DegenerateInputError{
			Msg: "verb distance undefined: fewer than two verb tokens",
		}
	}
	var total int
	for i := 0; i < len(verbPos)-1; i++ {
		total += verbPos[i+1] - verbPos[i]
	}
	return float64(total) / float64(len(verbPos)-1), nil
}
