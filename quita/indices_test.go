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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"lingprof/lperror"
	"lingprof/nlp"
)

func mkText(t *testing.T, tokens ...string) *Text {
	t.Helper()
	text, err := NewTextFromTokens(
		tokens, nlp.NewRuleTagger(), nlp.NewInsertionOrderCounter())
	assert.NoError(t, err)
	return text
}

// frequencies 3, 3, 1, 1 over 8 tokens; no rank where freq == rank, so
// the h-point comes out of the interpolation: h = 7/3
func interpText(t *testing.T) *Text {
	return mkText(t, "a", "a", "a", "b", "b", "b", "c", "d")
}

func TestTTR(t *testing.T) {
	v, err := interpText(t).TTR()
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-9)
}

func TestHPointInterpolated(t *testing.T) {
	v, err := interpText(t).HPoint()
	assert.NoError(t, err)
	assert.InDelta(t, 7.0/3, v, 1e-9)
}

func TestHPointExactCaseAgreesWithInterpolation(t *testing.T) {
	// freq(rank 2) == 2, so the exact rule fires; the interpolation
	// formula on the same table gives the identical value
	text := mkText(t, "a", "a", "b", "b")
	v, err := text.HPoint()
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-9)

	r1, r2, f1, f2 := 1.0, 2.0, 2.0, 2.0
	assert.InDelta(t, (f1*r2-f2*r1)/(r2-r1+f1-f2), v, 1e-9)
}

func TestVocabRichnessInterpolated(t *testing.T) {
	v, err := interpText(t).VocabRichness()
	assert.NoError(t, err)
	// hCumProb = (0.75 + 0.875) / 2; h^2/(2N) = 49/144
	assert.InDelta(t, 1-(0.8125-49.0/144), v, 1e-9)
}

func TestRepeatRate(t *testing.T) {
	v, err := interpText(t).RepeatRate()
	assert.NoError(t, err)
	assert.InDelta(t, 0.3125, v, 1e-9)
}

func TestRelativeRepeatRate(t *testing.T) {
	v, err := interpText(t).RelativeRepeatRate()
	assert.NoError(t, err)
	assert.InDelta(t, (1-math.Sqrt(0.3125))/0.5, v, 1e-9)
}

func TestEntropyKeepsReferenceSign(t *testing.T) {
	v, err := interpText(t).Entropy()
	assert.NoError(t, err)
	expected := 2*(0.375*math.Log2(0.375)) + 2*(0.125*math.Log2(0.125))
	assert.InDelta(t, expected, v, 1e-9)
	assert.Negative(t, v)
}

func TestAvgTokenLength(t *testing.T) {
	v, err := mkText(t, "the", "cat", "sitting").AvgTokenLength()
	assert.NoError(t, err)
	assert.InDelta(t, 13.0/3, v, 1e-9)
}

func TestGiniCoef(t *testing.T) {
	v, err := interpText(t).GiniCoef()
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, v, 1e-9)
}

func TestHapaxPercentage(t *testing.T) {
	v, err := interpText(t).HapaxPercentage()
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, v, 1e-9)
}

func TestCurveLength(t *testing.T) {
	v, err := interpText(t).CurveLength()
	assert.NoError(t, err)
	assert.InDelta(t, 2+math.Sqrt(5), v, 1e-9)
}

func TestCurveLengthIndicatorBounds(t *testing.T) {
	v, err := interpText(t).CurveLengthIndicator()
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestLambda(t *testing.T) {
	v, err := interpText(t).Lambda()
	assert.NoError(t, err)
	assert.InDelta(t, (2+math.Sqrt(5))*math.Log10(8)/8, v, 1e-9)
}

func TestAdjustedModulus(t *testing.T) {
	v, err := interpText(t).AdjustedModulus()
	assert.NoError(t, err)
	h := 7.0 / 3
	expected := math.Sqrt((3/h)*(3/h)+(4/h)*(4/h)) / math.Log10(8)
	assert.InDelta(t, expected, v, 1e-9)
}

func TestWritersView(t *testing.T) {
	v, err := interpText(t).WritersView()
	assert.NoError(t, err)
	h := 7.0 / 3
	up := (1 - h) * (3 + 4 - 2*h)
	down := math.Sqrt((h-1)*(h-1)+(3-h)*(3-h)) *
		math.Sqrt((h-1)*(h-1)+(4-h)*(4-h))
	assert.InDelta(t, up/down, v, 1e-9)
}

func TestThematicConcentration(t *testing.T) {
	// freqs: said 3, the 2, cat 1, dog 1 -> exact h-point 2;
	// rank 1 ("said") is the only pre-h type and is not a function word
	text := mkText(t, "said", "said", "said", "the", "the", "cat", "dog")
	v, err := text.ThematicConcentration()
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestSecondaryThematicConcentration(t *testing.T) {
	// window covers ranks 2..3; "the" (DT) is skipped as a function
	// word, "cat" contributes 2*(2-3)*1 / (2*1*3)
	text := mkText(t, "said", "said", "said", "the", "the", "cat", "dog")
	v, err := text.SecondaryThematicConcentration()
	assert.NoError(t, err)
	assert.InDelta(t, -1.0/3, v, 1e-9)
}

func TestActivityAndDescriptivity(t *testing.T) {
	text := mkText(t, "ran", "beautiful", "ran", "cat", "ran")
	q, err := text.Activity()
	assert.NoError(t, err)
	assert.InDelta(t, 0.75, q, 1e-9)

	d, err := text.Descriptivity()
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, d, 1e-9)
}

func TestActivityUndefinedWithoutVerbsAndAdjectives(t *testing.T) {
	_, err := mkText(t, "cat", "dog").Activity()
	var dErr lperror.DegenerateInputError
	assert.ErrorAs(t, err, &dErr)
}

func TestVerbDistance(t *testing.T) {
	// verb tokens at positions 0, 2 and 4
	text := mkText(t, "ran", "beautiful", "ran", "cat", "ran")
	v, err := text.VerbDistance()
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-9)
}

func TestVerbDistanceNeedsTwoVerbs(t *testing.T) {
	_, err := mkText(t, "ran", "cat").VerbDistance()
	var dErr lperror.DegenerateInputError
	assert.ErrorAs(t, err, &dErr)
}

func TestSingleTypeTextBoundaries(t *testing.T) {
	text := mkText(t, "run", "run", "run")

	rr, err := text.RepeatRate()
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, rr, 1e-9)

	hl, err := text.HapaxPercentage()
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, hl, 1e-9)

	gini, err := text.GiniCoef()
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, gini, 1e-9)

	var dErr lperror.DegenerateInputError
	_, err = text.RelativeRepeatRate()
	assert.ErrorAs(t, err, &dErr)
	_, err = text.HPoint()
	assert.ErrorAs(t, err, &dErr)
	_, err = text.CurveLengthIndicator()
	assert.ErrorAs(t, err, &dErr)
}

func TestEmptyTextFailsEverywhere(t *testing.T) {
	text := mkText(t)
	var dErr lperror.DegenerateInputError
	_, err := text.TTR()
	assert.ErrorAs(t, err, &dErr)
	_, err = text.HPoint()
	assert.ErrorAs(t, err, &dErr)
	_, err = text.GiniCoef()
	assert.ErrorAs(t, err, &dErr)
}
