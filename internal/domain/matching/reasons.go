package matching

import (
	"fmt"
	"strings"

	"worklink/internal/domain/job"
	"worklink/internal/domain/profile"
)

const maxReasonSkills = 3

// Reasons explains, in fixed order, which signals favour the job for this
// profile: skills, experience, location, employment type, salary. A job
// with nothing going for it gets the single fallback reason.
func Reasons(j job.Job, p profile.SeekerProfile) []string {
	reasons := make([]string, 0, 5)

	if matched := matchedProfileSkills(p.Skills, j.Skills); len(matched) > 0 {
		shown := matched
		if len(shown) > maxReasonSkills {
			shown = shown[:maxReasonSkills]
		}
		reasons = append(reasons, "Matches your skills: "+strings.Join(shown, ", "))
	}

	if len(p.WorkHistory) > 0 {
		total := TotalExperienceYears(p.WorkHistory)
		if total >= expectedYears(j.EmploymentType) {
			reasons = append(reasons, fmt.Sprintf("Suits your %d years of experience", int(total)))
		}
	}

	if j.IsRemote() {
		reasons = append(reasons, "Remote-friendly position")
	} else if p.Location.City != "" && j.Location.City != "" && citiesAlike(p.Location.City, j.Location.City) {
		reasons = append(reasons, "Located in "+j.Location.City)
	}

	if typePreferred(j, p) {
		reasons = append(reasons, "Matches your preferred employment type")
	}

	if salaryOverlaps(j.Salary, p.ExpectedSalary) {
		reasons = append(reasons, "Salary range fits your expectations")
	}

	if len(reasons) == 0 {
		return []string{"New opportunity"}
	}
	return reasons
}

func salaryOverlaps(offered job.Salary, want profile.SalaryExpectation) bool {
	if offered.Max <= 0 || want.Max <= 0 {
		return false
	}
	return offered.Min <= want.Max && want.Min <= offered.Max
}
