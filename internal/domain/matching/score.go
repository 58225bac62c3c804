package matching

import (
	"math"
	"strings"

	"worklink/internal/domain/job"
	"worklink/internal/domain/profile"
)

const (
	weightSkills     = 0.40
	weightExperience = 0.20
	weightEducation  = 0.15
	weightLocation   = 0.15
	weightType       = 0.10
)

// Score rates one job against one profile on a 0..100 scale. Factors the
// profile carries no data for are left out entirely, and the weighted sum
// is rescaled when the applied weights cover less than the full set. A
// profile with nothing to go on scores 0.
func Score(j job.Job, p profile.SeekerProfile) int {
	var weighted, applied float64

	if len(p.Skills) > 0 {
		weighted += skillsFactor(j, p) * weightSkills
		applied += weightSkills
	}
	if len(p.WorkHistory) > 0 {
		weighted += experienceFactor(j, p) * weightExperience
		applied += weightExperience
	}
	if hasUsableEducation(p.Education) {
		weighted += educationFactor(j, p) * weightEducation
		applied += weightEducation
	}
	if j.IsRemote() || p.Location.City != "" || p.Location.Country != "" {
		weighted += locationFactor(j, p) * weightLocation
		applied += weightLocation
	}
	if len(p.PreferredTypes) > 0 {
		weighted += typeFactor(j, p) * weightType
		applied += weightType
	}

	if applied == 0 {
		return 0
	}
	if applied > 0 && applied < 1 {
		weighted /= applied
	}

	score := int(math.Round(weighted))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func skillsFactor(j job.Job, p profile.SeekerProfile) float64 {
	matched := matchedProfileSkills(p.Skills, j.Skills)
	denom := len(j.Skills)
	if denom < 1 {
		denom = 1
	}
	return float64(len(matched)) / float64(denom) * 100
}

func experienceFactor(j job.Job, p profile.SeekerProfile) float64 {
	expected := expectedYears(j.EmploymentType)
	actual := TotalExperienceYears(p.WorkHistory)
	switch {
	case actual >= expected:
		return 100
	case actual >= expected*0.5:
		return 70
	default:
		return 40
	}
}

// hasUsableEducation reports whether any entry names a field of study.
// Entries with a blank field carry no signal, so a profile holding only
// those leaves the education factor out entirely.
func hasUsableEducation(entries []profile.Education) bool {
	for _, e := range entries {
		if strings.TrimSpace(e.FieldOfStudy) != "" {
			return true
		}
	}
	return false
}

func educationFactor(j job.Job, p profile.SeekerProfile) float64 {
	jobText := strings.ToLower(j.Title + " " + j.Description)
	for _, e := range p.Education {
		field := strings.ToLower(strings.TrimSpace(e.FieldOfStudy))
		if field == "" {
			continue
		}
		if strings.Contains(jobText, field) {
			return 100
		}
		if strings.Contains(field, "computer") ||
			strings.Contains(field, "engineering") ||
			strings.Contains(field, "business") {
			return 100
		}
	}
	return 50
}

func locationFactor(j job.Job, p profile.SeekerProfile) float64 {
	if j.IsRemote() {
		return 100
	}
	if p.Location.City != "" && j.Location.City != "" && citiesAlike(p.Location.City, j.Location.City) {
		return 100
	}
	if p.Location.Country != "" && j.Location.Country != "" &&
		strings.EqualFold(p.Location.Country, j.Location.Country) {
		return 70
	}
	return 50
}

func typeFactor(j job.Job, p profile.SeekerProfile) float64 {
	if typePreferred(j, p) {
		return 100
	}
	return 50
}

func typePreferred(j job.Job, p profile.SeekerProfile) bool {
	for _, t := range p.PreferredTypes {
		if strings.EqualFold(t, j.EmploymentType) {
			return true
		}
		if strings.EqualFold(t, job.TypeRemote) && j.IsRemote() {
			return true
		}
	}
	return false
}

// expectedYears is the experience bar implied by the employment type.
func expectedYears(employmentType string) float64 {
	switch strings.ToLower(employmentType) {
	case job.TypeFullTime:
		return 2
	case job.TypePartTime:
		return 1
	case job.TypeContract:
		return 3
	case job.TypeInternship:
		return 0
	case job.TypeTemporary:
		return 1
	default:
		return 2
	}
}
