// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package routes holds the mapping between URL paths and logical page
// identifiers. A single ordered list of routes is the only source of truth;
// both lookup directions are derived from it so they cannot drift apart.
package routes

import (
	"fmt"
	"hash/fnv"
)

// PageID is the short internal name of a page, e.g. "venue".
type PageID string

// Page identifiers used across the site. The footer-only ids are linked
// from the chrome but are not routed unless extended routes are enabled.
const (
	Home         PageID = "home"
	Registration PageID = "registration"
	Speakers     PageID = "speakers"
	Committees   PageID = "committees"
	Contact      PageID = "contact"
	Venue        PageID = "venue"

	AboutConference PageID = "about-conference"
	CallForPapers   PageID = "call-for-papers"
	Tracks          PageID = "tracks"
	Schedule        PageID = "schedule"
	Sponsors        PageID = "sponsors"
	Theme           PageID = "theme"
)

// RootPath is where unknown paths and unknown ids end up.
const RootPath = "/"

// Route binds a page id to its path.
type Route struct {
	ID    PageID
	Path  string
	Label string

	// Extended routes are only registered when the site is configured to
	// expose the footer-only pages.
	Extended bool
}

// All lists every route the site knows about, in navigation order.
var All = []Route{
	{ID: Home, Path: "/", Label: "Home"},
	{ID: Registration, Path: "/registration", Label: "Registration"},
	{ID: Speakers, Path: "/speakers", Label: "Speakers"},
	{ID: Committees, Path: "/committees", Label: "Committee"},
	{ID: Contact, Path: "/contact", Label: "Contact"},
	{ID: Venue, Path: "/venue", Label: "Venue"},

	{ID: AboutConference, Path: "/about-conference", Label: "About Conference", Extended: true},
	{ID: CallForPapers, Path: "/call-for-papers", Label: "Call for Papers", Extended: true},
	{ID: Tracks, Path: "/tracks", Label: "Tracks", Extended: true},
	{ID: Schedule, Path: "/schedule", Label: "Schedule", Extended: true},
	{ID: Sponsors, Path: "/sponsors", Label: "Sponsors", Extended: true},
	{ID: Theme, Path: "/theme", Label: "Theme", Extended: true},
}

// Table is the bidirectional route table. It is immutable after
// construction and safe for concurrent use.
type Table struct {
	routes []Route
	byPath map[string]PageID
	byID   map[PageID]string
}

// New builds a table from the given routes. A repeated id or path is
// rejected so that every forward entry has exactly one reverse entry.
func New(rs []Route) (*Table, error) {
	t := &Table{
		byPath: make(map[string]PageID, len(rs)),
		byID:   make(map[PageID]string, len(rs)),
	}
	for _, r := range rs {
		if r.ID == "" || r.Path == "" {
			return nil, fmt.Errorf("route %q -> %q: id and path are required", r.ID, r.Path)
		}
		if _, dup := t.byPath[r.Path]; dup {
			return nil, fmt.Errorf("duplicate route path %q", r.Path)
		}
		if _, dup := t.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate route id %q", r.ID)
		}
		t.byPath[r.Path] = r.ID
		t.byID[r.ID] = r.Path
		t.routes = append(t.routes, r)
	}
	if _, ok := t.byID[Home]; !ok {
		return nil, fmt.Errorf("route table has no %q entry", Home)
	}
	return t, nil
}

// Default returns the route table for the site. With extended set, the
// footer-only pages get their own paths; otherwise they fall back to home.
func Default(extended bool) *Table {
	var rs []Route
	for _, r := range All {
		if r.Extended && !extended {
			continue
		}
		rs = append(rs, r)
	}
	t, err := New(rs)
	if err != nil {
		// All is a package literal; a failure here is a programming error.
		panic(err)
	}
	return t
}

// Resolve maps a URL path to its page id. Matching is exact; anything not
// in the table, including trailing-slash variants, resolves to Home.
func (t *Table) Resolve(path string) PageID {
	if id, ok := t.byPath[path]; ok {
		return id
	}
	return Home
}

// Known reports whether path is routed.
func (t *Table) Known(path string) bool {
	_, ok := t.byPath[path]
	return ok
}

// PathFor returns the path for a page id, or RootPath when the id is not
// routed. The id is free text and is not validated.
func (t *Table) PathFor(id PageID) string {
	if p, ok := t.byID[id]; ok {
		return p
	}
	return RootPath
}

// Routes returns the registered routes in table order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Label returns the display label for a routed id, or "" if unrouted.
func (t *Table) Label(id PageID) string {
	for _, r := range t.routes {
		if r.ID == id {
			return r.Label
		}
	}
	return ""
}

// Fingerprint identifies the set of registered routes. Tables with the
// same routes in the same order share a fingerprint.
func (t *Table) Fingerprint() string {
	h := fnv.New32a()
	for _, r := range t.routes {
		fmt.Fprintf(h, "%s=%s\n", r.ID, r.Path)
	}
	return fmt.Sprintf("%08x", h.Sum32())
}
