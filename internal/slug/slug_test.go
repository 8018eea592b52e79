// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"speaker name", "Dr. Avinash K Shrivastava", "dr-avinash-k-shrivastava"},
		{"committee name", "Organizing Committee", "organizing-committee"},
		{"question", "What is the registration fee?", "what-is-the-registration-fee"},
		{"ampersand", "Registration & Finance", "registration-finance"},
		{"slash", "Technical/Paper Submission", "technical-paper-submission"},
		{"accents folded", "Café Résumé", "cafe-resume"},
		{"apostrophe dropped", "The Manager's Guide", "the-managers-guide"},
		{"leading and trailing space", "  Venue  ", "venue"},
		{"repeated separators", "Track -- 1", "track-1"},
		{"digits", "Track 3", "track-3"},
		{"empty", "", ""},
		{"only punctuation", "?!.", ""},
		{"non latin dropped", "会议 Conference", "conference"},
		{"parentheses", "Review of Management Literature (RML)", "review-of-management-literature-rml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetAdd(t *testing.T) {
	var s Set
	got := []string{
		s.Add("Keynote Session"),
		s.Add("Keynote Session"),
		s.Add("keynote session"),
		s.Add("Lunch"),
	}
	want := []string{"keynote-session", "keynote-session-2", "keynote-session-3", "lunch"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Add #%d = %q, want %q", i, got[i], want[i])
		}
	}
}
