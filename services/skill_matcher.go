package services

import "math"

// DenominatorStrategy selects how the match percentage is normalized
type DenominatorStrategy int

const (
	// DenominatorMinOfBoth divides by the smaller of the two skill sets.
	// A perfect subset scores 100% regardless of the other party's total
	// skill count. Used for teammate matching.
	DenominatorMinOfBoth DenominatorStrategy = iota

	// DenominatorCandidateTotal divides by the candidate's full skill
	// count. Used for hackathon recommendations, where the candidate set
	// is the hackathon's required skills.
	DenominatorCandidateTotal
)

// ComputeMatch returns the skills present in both sets and the overlap
// percentage (0-100). Common skills keep the candidate's order. Either
// set being empty yields 0.
func ComputeMatch(viewerSkills, candidateSkills []string, strategy DenominatorStrategy) ([]string, int) {
	viewerSet := make(map[string]struct{}, len(viewerSkills))
	for _, skill := range viewerSkills {
		viewerSet[skill] = struct{}{}
	}

	commonSkills := []string{}
	seen := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		if _, ok := viewerSet[skill]; ok {
			commonSkills = append(commonSkills, skill)
		}
	}

	denominator := 0
	switch strategy {
	case DenominatorCandidateTotal:
		denominator = len(seen)
	default:
		denominator = len(viewerSet)
		if len(seen) < denominator {
			denominator = len(seen)
		}
	}
	if denominator == 0 {
		return commonSkills, 0
	}

	percentage := int(math.Round(float64(len(commonSkills)) / float64(denominator) * 100))
	return commonSkills, percentage
}
