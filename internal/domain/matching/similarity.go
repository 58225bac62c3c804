package matching

import (
	"math"
	"strings"

	"worklink/internal/domain/job"
)

// Similarity rates how close candidate is to ref. The scale is additive,
// not normalized: type 30, shared skills up to 40, place 15, salary 15.
func Similarity(ref, candidate job.Job) float64 {
	var score float64

	if ref.EmploymentType != "" && strings.EqualFold(ref.EmploymentType, candidate.EmploymentType) {
		score += 30
	}

	if len(ref.Skills) > 0 {
		matched := 0
		for _, rs := range ref.Skills {
			for _, cs := range candidate.Skills {
				if matchesSkill(rs, cs) {
					matched++
					break
				}
			}
		}
		score += 40 * float64(matched) / float64(len(ref.Skills))
	}

	sameCity := ref.Location.City != "" && candidate.Location.City != "" &&
		strings.EqualFold(ref.Location.City, candidate.Location.City)
	if sameCity || (ref.IsRemote() && candidate.IsRemote()) {
		score += 15
	}

	refMid := ref.Salary.Midpoint()
	if refMid > 0 && math.Abs(candidate.Salary.Midpoint()-refMid) <= 0.3*refMid {
		score += 15
	}

	return score
}
