// Package matching scores open jobs against seeker profiles. Everything
// in here is pure computation over already-fetched records.
package matching

import (
	"strings"
	"time"

	"worklink/internal/domain/job"
)

type ScoredJob struct {
	Job     job.Job
	Score   int
	Reasons []string
}

// nowFunc is swapped in tests that exercise open-ended work history.
var nowFunc = time.Now

// matchesSkill treats two skill names as equivalent when either lowercased
// string contains the other, so "java" pairs with "javascript" and
// "react" with "react.js". Blank names never match.
func matchesSkill(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func matchedProfileSkills(profileSkills, jobSkills []string) []string {
	if len(profileSkills) == 0 || len(jobSkills) == 0 {
		return nil
	}
	out := make([]string, 0, len(profileSkills))
	for _, ps := range profileSkills {
		for _, js := range jobSkills {
			if matchesSkill(ps, js) {
				out = append(out, ps)
				break
			}
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	if s == "" || sub == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// citiesAlike is the loose city test used for scoring: either name may
// contain the other, so "Jakarta" pairs with "South Jakarta".
func citiesAlike(a, b string) bool {
	return containsFold(a, b) || containsFold(b, a)
}
