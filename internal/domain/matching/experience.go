package matching

import "worklink/internal/domain/profile"

// TotalExperienceYears sums work history at month granularity and returns
// fractional years. Open-ended entries (Current, or a missing end date)
// count up to now. Entries whose end precedes their start contribute 0.
func TotalExperienceYears(history []profile.Experience) float64 {
	if len(history) == 0 {
		return 0
	}

	now := nowFunc()
	months := 0
	for _, e := range history {
		end := now
		if !e.Current && e.End != nil {
			end = *e.End
		}
		m := (end.Year()-e.Start.Year())*12 + int(end.Month()) - int(e.Start.Month())
		if m < 0 {
			m = 0
		}
		months += m
	}
	return float64(months) / 12
}
