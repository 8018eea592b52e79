// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package routes

import (
	"strings"
	"testing"
)

// recordingNavigator captures navigation side effects in call order.
type recordingNavigator struct {
	calls []string
}

func (r *recordingNavigator) PushPath(path string) { r.calls = append(r.calls, "push "+path) }
func (r *recordingNavigator) ScrollToTop()         { r.calls = append(r.calls, "scroll") }

func TestResolve(t *testing.T) {
	table := Default(false)

	tests := []struct {
		path string
		want PageID
	}{
		{"/", Home},
		{"/registration", Registration},
		{"/speakers", Speakers},
		{"/committees", Committees},
		{"/contact", Contact},
		{"/venue", Venue},
		{"", Home},
		{"/unknown-path", Home},
		{"/venue/", Home},
		{"/venue/hall-a", Home},
		{"/VENUE", Home},
		{"//", Home},
		{"/tracks", Home},
		{"/schedule", Home},
		{"/venue?x=1", Home},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := table.Resolve(tt.path); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFor(t *testing.T) {
	table := Default(false)

	tests := []struct {
		id   PageID
		want string
	}{
		{Home, "/"},
		{Registration, "/registration"},
		{Venue, "/venue"},
		{AboutConference, "/"},
		{CallForPapers, "/"},
		{Tracks, "/"},
		{Schedule, "/"},
		{Sponsors, "/"},
		{"", "/"},
		{"no-such-page", "/"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			if got := table.PathFor(tt.id); got != tt.want {
				t.Errorf("PathFor(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, extended := range []bool{false, true} {
		table := Default(extended)
		for _, r := range table.Routes() {
			nav := &recordingNavigator{}
			path := NavigateTo(nav, table, r.ID)
			if got := table.Resolve(path); got != r.ID {
				t.Errorf("extended=%v: Resolve(NavigateTo(%q)) = %q", extended, r.ID, got)
			}
		}
	}
}

func TestExtendedRoutes(t *testing.T) {
	plain := Default(false)
	ext := Default(true)

	if plain.Known("/tracks") {
		t.Error("/tracks should not be routed by default")
	}
	if !ext.Known("/tracks") {
		t.Error("/tracks should be routed when extended")
	}
	if got := ext.Resolve("/call-for-papers"); got != CallForPapers {
		t.Errorf("Resolve(/call-for-papers) = %q, want %q", got, CallForPapers)
	}
	if len(ext.Routes()) != len(All) {
		t.Errorf("extended table has %d routes, want %d", len(ext.Routes()), len(All))
	}
	if len(plain.Routes()) != 6 {
		t.Errorf("default table has %d routes, want 6", len(plain.Routes()))
	}
}

func TestNavigateToOrder(t *testing.T) {
	table := Default(false)

	t.Run("known id", func(t *testing.T) {
		nav := &recordingNavigator{}
		path := NavigateTo(nav, table, Registration)
		if path != "/registration" {
			t.Errorf("path = %q, want /registration", path)
		}
		want := "push /registration,scroll"
		if got := strings.Join(nav.calls, ","); got != want {
			t.Errorf("calls = %q, want %q", got, want)
		}
	})

	t.Run("unknown id falls back to root", func(t *testing.T) {
		nav := &recordingNavigator{}
		path := NavigateTo(nav, table, "call-for-papers")
		if path != "/" {
			t.Errorf("path = %q, want /", path)
		}
		if got := strings.Join(nav.calls, ","); got != "push /,scroll" {
			t.Errorf("calls = %q", got)
		}
	})
}

func TestNewRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name   string
		routes []Route
		errHas string
	}{
		{
			name:   "duplicate path",
			routes: []Route{{ID: Home, Path: "/"}, {ID: Venue, Path: "/"}},
			errHas: "duplicate route path",
		},
		{
			name:   "duplicate id",
			routes: []Route{{ID: Home, Path: "/"}, {ID: Home, Path: "/home"}},
			errHas: "duplicate route id",
		},
		{
			name:   "missing home",
			routes: []Route{{ID: Venue, Path: "/venue"}},
			errHas: "no \"home\" entry",
		},
		{
			name:   "empty path",
			routes: []Route{{ID: Home, Path: ""}},
			errHas: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.routes)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errHas) {
				t.Errorf("error %q should contain %q", err, tt.errHas)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	table := Default(false)
	if got := table.Label(Committees); got != "Committee" {
		t.Errorf("Label(committees) = %q, want Committee", got)
	}
	if got := table.Label(Tracks); got != "" {
		t.Errorf("Label(tracks) = %q, want empty for unrouted id", got)
	}
}

func TestFingerprint(t *testing.T) {
	base, ext := Default(false), Default(true)
	if base.Fingerprint() == ext.Fingerprint() {
		t.Error("default and extended tables must not share a fingerprint")
	}
	if base.Fingerprint() != Default(false).Fingerprint() {
		t.Error("fingerprint must be stable for the same routes")
	}
	if got := len(base.Fingerprint()); got != 8 {
		t.Errorf("fingerprint length = %d, want 8", got)
	}
}
