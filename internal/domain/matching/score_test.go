package matching

import (
	"testing"
	"time"

	"worklink/internal/domain/job"
	"worklink/internal/domain/profile"
)

func historyOfYears(n int) []profile.Experience {
	end := time.Now()
	start := end.AddDate(-n, 0, 0)
	return []profile.Experience{{Title: "Engineer", Company: "Acme", Start: start, End: &end}}
}

func fullTimeJob(skills ...string) job.Job {
	return job.Job{
		Title:          "Backend Engineer",
		Description:    "Build services",
		EmploymentType: job.TypeFullTime,
		Skills:         skills,
		Location:       job.Location{City: "Jakarta", Country: "Indonesia"},
		Status:         job.StatusActive,
	}
}

func TestScoreEmptyProfileIsZero(t *testing.T) {
	j := fullTimeJob("go", "sql")
	j.Location = job.Location{}
	got := Score(j, profile.SeekerProfile{})
	if got != 0 {
		t.Fatalf("Score with empty profile = %d, want 0", got)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	profiles := []profile.SeekerProfile{
		{},
		{Skills: []string{"go"}},
		{Skills: []string{"go", "sql", "python", "java", "javascript"}},
		{
			Skills:         []string{"go", "kafka"},
			WorkHistory:    historyOfYears(10),
			Education:      []profile.Education{{FieldOfStudy: "Computer Science"}},
			Location:       profile.Location{City: "Jakarta", Country: "Indonesia"},
			PreferredTypes: []string{"full-time", "remote"},
			ExpectedSalary: profile.SalaryExpectation{Min: 1000, Max: 2000},
		},
	}
	jobs := []job.Job{
		fullTimeJob(),
		fullTimeJob("go"),
		fullTimeJob("go", "sql", "docker"),
		{EmploymentType: job.TypeRemote, Skills: []string{"go"}},
		{EmploymentType: "freelance", Location: job.Location{City: "Bandung"}},
	}
	for pi, p := range profiles {
		for ji, j := range jobs {
			got := Score(j, p)
			if got < 0 || got > 100 {
				t.Errorf("Score(jobs[%d], profiles[%d]) = %d, out of [0,100]", ji, pi, got)
			}
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	j := fullTimeJob("go", "sql", "docker")
	p := profile.SeekerProfile{
		Skills:         []string{"go", "postgresql"},
		WorkHistory:    historyOfYears(3),
		Education:      []profile.Education{{FieldOfStudy: "Informatics"}},
		Location:       profile.Location{City: "Jakarta"},
		PreferredTypes: []string{"contract"},
	}
	first := Score(j, p)
	for i := 0; i < 5; i++ {
		if got := Score(j, p); got != first {
			t.Fatalf("Score changed between calls: first=%d now=%d", first, got)
		}
	}
}

func TestScoreSkillsOnlyFullMatch(t *testing.T) {
	// A single applied factor is rescaled to carry the whole score.
	j := fullTimeJob("go", "sql")
	j.Location = job.Location{}
	p := profile.SeekerProfile{Skills: []string{"go", "sql"}}
	if got := Score(j, p); got != 100 {
		t.Fatalf("Score = %d, want 100 for a full skills-only match", got)
	}
}

func TestScoreSkillsOnlyHalfMatch(t *testing.T) {
	j := fullTimeJob("python", "sql")
	j.Location = job.Location{}
	p := profile.SeekerProfile{Skills: []string{"python"}}
	if got := Score(j, p); got != 50 {
		t.Fatalf("Score = %d, want 50 when half the requirements match", got)
	}
}

func TestScoreMoreMatchingSkillsScoresHigher(t *testing.T) {
	j := fullTimeJob("python", "sql")
	j.Location = job.Location{}
	narrow := profile.SeekerProfile{Skills: []string{"python"}}
	wide := profile.SeekerProfile{Skills: []string{"python", "sql"}}
	ns, ws := Score(j, narrow), Score(j, wide)
	if ns >= ws {
		t.Fatalf("Score narrow=%d wide=%d, want narrow < wide", ns, ws)
	}
}

func TestScoreSkillContainmentBothWays(t *testing.T) {
	j := fullTimeJob("javascript")
	j.Location = job.Location{}
	p := profile.SeekerProfile{Skills: []string{"java"}}
	if got := Score(j, p); got != 100 {
		t.Fatalf("Score = %d, want 100: profile skill contained in requirement counts", got)
	}

	j2 := fullTimeJob("java")
	j2.Location = job.Location{}
	p2 := profile.SeekerProfile{Skills: []string{"javascript"}}
	if got := Score(j2, p2); got != 100 {
		t.Fatalf("Score = %d, want 100: requirement contained in profile skill counts", got)
	}
}

func TestScoreSkillsOverCountClampsAt100(t *testing.T) {
	// Two profile skills can both match one requirement; the clamp keeps
	// the result on scale.
	j := fullTimeJob("java")
	j.Location = job.Location{}
	p := profile.SeekerProfile{Skills: []string{"java", "javascript"}}
	if got := Score(j, p); got != 100 {
		t.Fatalf("Score = %d, want 100", got)
	}
}

func TestScoreExperienceTiers(t *testing.T) {
	cases := []struct {
		name  string
		years int
		want  int
	}{
		{"meets the bar", 3, 100},
		{"half the bar", 1, 70},
		{"well under", 0, 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			j := fullTimeJob() // full-time expects 2 years
			j.Location = job.Location{}
			var hist []profile.Experience
			if c.years > 0 {
				hist = historyOfYears(c.years)
			} else {
				start := time.Now().AddDate(0, -1, 0)
				end := time.Now()
				hist = []profile.Experience{{Start: start, End: &end}}
			}
			p := profile.SeekerProfile{WorkHistory: hist}
			if got := Score(j, p); got != c.want {
				t.Fatalf("Score = %d, want %d", got, c.want)
			}
		})
	}
}

func TestScoreInternshipBarIsZero(t *testing.T) {
	j := fullTimeJob()
	j.EmploymentType = job.TypeInternship
	j.Location = job.Location{}
	start := time.Now().AddDate(0, -2, 0)
	end := time.Now()
	p := profile.SeekerProfile{WorkHistory: []profile.Experience{{Start: start, End: &end}}}
	if got := Score(j, p); got != 100 {
		t.Fatalf("Score = %d, want 100: any experience clears the internship bar", got)
	}
}

func TestScoreEducationFactor(t *testing.T) {
	cases := []struct {
		name  string
		field string
		want  int
	}{
		{"field named in the posting", "backend", 100},
		{"computer-ish field", "Computer Science", 100},
		{"engineering field", "Electrical Engineering", 100},
		{"business field", "Business Administration", 100},
		{"unrelated field", "Fine Arts", 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			j := fullTimeJob()
			j.Location = job.Location{}
			p := profile.SeekerProfile{Education: []profile.Education{{FieldOfStudy: c.field}}}
			if got := Score(j, p); got != c.want {
				t.Fatalf("Score = %d, want %d", got, c.want)
			}
		})
	}
}

func TestScoreBlankFieldOfStudyDoesNotApply(t *testing.T) {
	j := fullTimeJob()
	j.Location = job.Location{}

	// Entries without a field of study carry no signal; a profile holding
	// only those must not pick up the education factor's neutral 50.
	blankOnly := profile.SeekerProfile{Education: []profile.Education{{Degree: "Bachelor"}, {FieldOfStudy: "  "}}}
	if got := Score(j, blankOnly); got != 0 {
		t.Fatalf("Score = %d, want 0 when every education entry has a blank field", got)
	}

	// One named field alongside blanks still applies the factor.
	mixed := profile.SeekerProfile{Education: []profile.Education{{FieldOfStudy: ""}, {FieldOfStudy: "Computer Science"}}}
	if got := Score(j, mixed); got != 100 {
		t.Fatalf("Score = %d, want 100 when a usable entry is present", got)
	}
}

func TestScoreLocationFactor(t *testing.T) {
	cases := []struct {
		name string
		job  job.Location
		typ  string
		loc  profile.Location
		want int
	}{
		{"remote job", job.Location{Remote: true}, job.TypeFullTime, profile.Location{City: "Medan"}, 100},
		{"remote type", job.Location{City: "Jakarta"}, job.TypeRemote, profile.Location{City: "Medan"}, 100},
		{"same city", job.Location{City: "Jakarta", Country: "Indonesia"}, job.TypeFullTime, profile.Location{City: "jakarta"}, 100},
		{"city contains", job.Location{City: "South Jakarta"}, job.TypeFullTime, profile.Location{City: "Jakarta"}, 100},
		{"same country only", job.Location{City: "Surabaya", Country: "Indonesia"}, job.TypeFullTime, profile.Location{City: "Medan", Country: "indonesia"}, 70},
		{"nothing shared", job.Location{City: "Berlin", Country: "Germany"}, job.TypeFullTime, profile.Location{City: "Medan", Country: "Indonesia"}, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			j := job.Job{EmploymentType: c.typ, Location: c.job}
			p := profile.SeekerProfile{Location: c.loc}
			if got := Score(j, p); got != c.want {
				t.Fatalf("Score = %d, want %d", got, c.want)
			}
		})
	}
}

func TestScoreTypePreference(t *testing.T) {
	j := fullTimeJob()
	j.Location = job.Location{}

	liked := profile.SeekerProfile{PreferredTypes: []string{"Full-Time"}}
	if got := Score(j, liked); got != 100 {
		t.Fatalf("Score = %d, want 100 for a preferred type", got)
	}

	disliked := profile.SeekerProfile{PreferredTypes: []string{"contract"}}
	if got := Score(j, disliked); got != 50 {
		t.Fatalf("Score = %d, want 50 for a non-preferred type", got)
	}
}

func TestScoreRemotePreferenceMatchesRemoteJob(t *testing.T) {
	j := job.Job{EmploymentType: job.TypeFullTime, Location: job.Location{Remote: true}}
	p := profile.SeekerProfile{PreferredTypes: []string{"remote"}}
	// Both the type factor and the location factor apply here.
	if got := Score(j, p); got != 100 {
		t.Fatalf("Score = %d, want 100", got)
	}
}

func TestScoreAllFactorsNoRescale(t *testing.T) {
	// Every factor present: skills 100, experience 100, education 100,
	// location 100, type 100 -> exactly 100 with no normalization.
	j := fullTimeJob("go")
	p := profile.SeekerProfile{
		Skills:         []string{"go"},
		WorkHistory:    historyOfYears(5),
		Education:      []profile.Education{{FieldOfStudy: "Computer Science"}},
		Location:       profile.Location{City: "Jakarta"},
		PreferredTypes: []string{job.TypeFullTime},
	}
	if got := Score(j, p); got != 100 {
		t.Fatalf("Score = %d, want 100", got)
	}
}

func TestScoreMixedFactorsWeighted(t *testing.T) {
	// skills 0 (no overlap), type 100. Applied weight 0.5, so
	// (0*0.4 + 100*0.1) / 0.5 = 20.
	j := fullTimeJob("rust")
	j.Location = job.Location{}
	p := profile.SeekerProfile{
		Skills:         []string{"go"},
		PreferredTypes: []string{job.TypeFullTime},
	}
	if got := Score(j, p); got != 20 {
		t.Fatalf("Score = %d, want 20", got)
	}
}
