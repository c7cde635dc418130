package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestComputeMatch_MinDenominatorIsSymmetric verifies the teammate variant
// divides by the smaller set, making the score symmetric. Using the
// candidate's size instead is the classic mistake this guards against.
func TestComputeMatch_MinDenominatorIsSymmetric(t *testing.T) {
	a := []string{"Frontend", "Backend", "UI/UX"}
	b := []string{"Backend", "UI/UX", "Blockchain", "Cloud Computing", "Machine Learning"}

	commonAB, pctAB := ComputeMatch(a, b, DenominatorMinOfBoth)
	commonBA, pctBA := ComputeMatch(b, a, DenominatorMinOfBoth)

	assert.ElementsMatch(t, []string{"Backend", "UI/UX"}, commonAB)
	assert.ElementsMatch(t, []string{"Backend", "UI/UX"}, commonBA)
	assert.Equal(t, 67, pctAB, "round(100*2/min(3,5)) should be 67")
	assert.Equal(t, pctAB, pctBA, "min denominator makes the score symmetric")
}

// TestComputeMatch_PerfectSubsetScoresFull verifies a candidate whose
// skills are all shared scores 100% regardless of the viewer's total.
func TestComputeMatch_PerfectSubsetScoresFull(t *testing.T) {
	viewer := []string{"Frontend", "Backend", "UI/UX"}
	candidate := []string{"Backend", "UI/UX"}

	common, pct := ComputeMatch(viewer, candidate, DenominatorMinOfBoth)

	assert.Equal(t, []string{"Backend", "UI/UX"}, common)
	assert.Equal(t, 100, pct)
}

// TestComputeMatch_EmptySets verifies the division-by-zero convention.
func TestComputeMatch_EmptySets(t *testing.T) {
	common, pct := ComputeMatch(nil, []string{"Backend"}, DenominatorMinOfBoth)
	assert.Empty(t, common)
	assert.Equal(t, 0, pct)

	common, pct = ComputeMatch([]string{"Backend"}, nil, DenominatorMinOfBoth)
	assert.Empty(t, common)
	assert.Equal(t, 0, pct)

	common, pct = ComputeMatch(nil, nil, DenominatorCandidateTotal)
	assert.Empty(t, common)
	assert.Equal(t, 0, pct)
}

// TestComputeMatch_CandidateTotalDenominator covers the hackathon
// recommendation variant, which divides by the candidate's full
// requirement count and is therefore asymmetric.
func TestComputeMatch_CandidateTotalDenominator(t *testing.T) {
	viewer := []string{"Frontend", "Backend", "UI/UX"}
	required := []string{"Backend", "Cloud Computing", "Blockchain", "Machine Learning"}

	common, pct := ComputeMatch(viewer, required, DenominatorCandidateTotal)

	assert.Equal(t, []string{"Backend"}, common)
	assert.Equal(t, 25, pct, "round(100*1/4)")
}

// TestComputeMatch_DuplicateSkillsCountOnce verifies free-form skill lists
// with repeats behave as sets.
func TestComputeMatch_DuplicateSkillsCountOnce(t *testing.T) {
	viewer := []string{"Backend", "Backend", "Frontend"}
	candidate := []string{"Backend", "Backend"}

	common, pct := ComputeMatch(viewer, candidate, DenominatorMinOfBoth)

	assert.Equal(t, []string{"Backend"}, common)
	assert.Equal(t, 100, pct, "round(100*1/min(1,2))")
}

// TestComputeMatch_RoundsHalfUp pins the rounding behavior.
func TestComputeMatch_RoundsHalfUp(t *testing.T) {
	viewer := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	candidate := []string{"A", "B", "C", "X", "Y", "Z", "W", "V"}

	common, pct := ComputeMatch(viewer, candidate, DenominatorMinOfBoth)

	assert.Len(t, common, 3)
	assert.Equal(t, 38, pct, "round(100*3/8) = round(37.5)")
}
