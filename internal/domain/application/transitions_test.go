package application_test

import (
	"testing"

	"worklink/internal/domain/application"
)

func TestParseStatusValidValues(t *testing.T) {
	valid := []string{
		"submitted", "in_review", "shortlisted", "interview",
		"offered", "hired", "rejected", "withdrawn",
	}
	for _, s := range valid {
		got, err := application.ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseStatusInvalidValue(t *testing.T) {
	for _, s := range []string{"", "UNKNOWN", "Submitted", "in-review"} {
		if _, err := application.ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) expected error, got nil", s)
		}
	}
}

func TestIsTransitionAllowedForward(t *testing.T) {
	cases := []struct {
		from application.Status
		to   application.Status
	}{
		{application.StatusSubmitted, application.StatusInReview},
		{application.StatusInReview, application.StatusShortlisted},
		{application.StatusShortlisted, application.StatusInterview},
		{application.StatusInterview, application.StatusOffered},
		{application.StatusOffered, application.StatusHired},
	}
	for _, c := range cases {
		if !application.IsTransitionAllowed(c.from, c.to) {
			t.Errorf("IsTransitionAllowed(%s, %s) should be true", c.from, c.to)
		}
	}
}

func TestIsTransitionAllowedToRejectedAndWithdrawn(t *testing.T) {
	nonTerminals := []application.Status{
		application.StatusSubmitted,
		application.StatusInReview,
		application.StatusShortlisted,
		application.StatusInterview,
		application.StatusOffered,
	}
	for _, from := range nonTerminals {
		if !application.IsTransitionAllowed(from, application.StatusRejected) {
			t.Errorf("IsTransitionAllowed(%s, rejected) should be true", from)
		}
		if !application.IsTransitionAllowed(from, application.StatusWithdrawn) {
			t.Errorf("IsTransitionAllowed(%s, withdrawn) should be true", from)
		}
	}
}

func TestIsTransitionAllowedFromTerminal(t *testing.T) {
	terminals := []application.Status{
		application.StatusHired,
		application.StatusRejected,
		application.StatusWithdrawn,
	}
	targets := []application.Status{
		application.StatusSubmitted,
		application.StatusInReview,
		application.StatusShortlisted,
		application.StatusInterview,
		application.StatusOffered,
		application.StatusHired,
		application.StatusRejected,
		application.StatusWithdrawn,
	}
	for _, from := range terminals {
		for _, to := range targets {
			if application.IsTransitionAllowed(from, to) {
				t.Errorf("IsTransitionAllowed(%s, %s) should be false", from, to)
			}
		}
	}
}

func TestIsTransitionAllowedSkipLevel(t *testing.T) {
	cases := []struct {
		from application.Status
		to   application.Status
	}{
		{application.StatusSubmitted, application.StatusShortlisted},
		{application.StatusSubmitted, application.StatusHired},
		{application.StatusInReview, application.StatusInterview},
		{application.StatusShortlisted, application.StatusOffered},
		{application.StatusInterview, application.StatusHired},
	}
	for _, c := range cases {
		if application.IsTransitionAllowed(c.from, c.to) {
			t.Errorf("IsTransitionAllowed(%s, %s) should be false", c.from, c.to)
		}
	}
}

func TestIsTransitionAllowedBackwards(t *testing.T) {
	cases := []struct {
		from application.Status
		to   application.Status
	}{
		{application.StatusInReview, application.StatusSubmitted},
		{application.StatusShortlisted, application.StatusInReview},
		{application.StatusOffered, application.StatusInterview},
	}
	for _, c := range cases {
		if application.IsTransitionAllowed(c.from, c.to) {
			t.Errorf("IsTransitionAllowed(%s, %s) should be false", c.from, c.to)
		}
	}
}

func TestIsTransitionAllowedSelf(t *testing.T) {
	all := []application.Status{
		application.StatusSubmitted,
		application.StatusInReview,
		application.StatusShortlisted,
		application.StatusInterview,
		application.StatusOffered,
		application.StatusHired,
		application.StatusRejected,
		application.StatusWithdrawn,
	}
	for _, s := range all {
		if application.IsTransitionAllowed(s, s) {
			t.Errorf("IsTransitionAllowed(%s, %s) should be false", s, s)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminals := map[application.Status]bool{
		application.StatusHired:     true,
		application.StatusRejected:  true,
		application.StatusWithdrawn: true,
	}
	all := []application.Status{
		application.StatusSubmitted,
		application.StatusInReview,
		application.StatusShortlisted,
		application.StatusInterview,
		application.StatusOffered,
		application.StatusHired,
		application.StatusRejected,
		application.StatusWithdrawn,
	}
	for _, s := range all {
		if got := application.IsTerminal(s); got != terminals[s] {
			t.Errorf("IsTerminal(%s) = %v, want %v", s, got, terminals[s])
		}
	}
}
