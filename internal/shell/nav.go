// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package shell builds the persistent chrome around every page: header
// navigation, mobile menu, and footer. It never decides which page is
// current; callers pass the current page id in.
package shell

import "confsite/internal/routes"

// Item is a navigation entry definition.
type Item struct {
	ID    routes.PageID
	Label string
}

// NavLink is the template view of an Item.
type NavLink struct {
	ID     routes.PageID
	Label  string
	Href   string
	Active bool
}

// Header is the primary navigation, shared by the desktop bar and the
// mobile menu.
var Header = []Item{
	{ID: routes.Home, Label: "Home"},
	{ID: routes.Registration, Label: "Registration"},
	{ID: routes.Committees, Label: "Committee"},
	{ID: routes.Speakers, Label: "Speakers"},
	{ID: routes.Venue, Label: "Venue"},
	{ID: routes.Contact, Label: "Contact"},
}

// QuickLinks is the footer link list. Several of these ids are not routed
// by default and resolve to the home page.
var QuickLinks = []Item{
	{ID: routes.Home, Label: "Home"},
	{ID: routes.AboutConference, Label: "About Conference"},
	{ID: routes.CallForPapers, Label: "Call for Papers"},
	{ID: routes.Tracks, Label: "Tracks"},
	{ID: routes.Registration, Label: "Registration"},
	{ID: routes.Schedule, Label: "Schedule"},
}

// Legal links both lead to the contact page.
var Legal = []Item{
	{ID: routes.Contact, Label: "Privacy Policy"},
	{ID: routes.Contact, Label: "Terms of Use"},
}

// Build renders items against the route table. A link is active only when
// its id equals current exactly.
func Build(items []Item, t *routes.Table, current routes.PageID) []NavLink {
	links := make([]NavLink, 0, len(items))
	for _, it := range items {
		links = append(links, NavLink{
			ID:     it.ID,
			Label:  it.Label,
			Href:   t.PathFor(it.ID),
			Active: it.ID == current,
		})
	}
	return links
}

// NavItems is Build over the header navigation.
func NavItems(t *routes.Table, current routes.PageID) []NavLink {
	return Build(Header, t, current)
}

// Footer groups the footer link lists.
type Footer struct {
	QuickLinks []NavLink
	Legal      []NavLink
}

// BuildFooter renders the footer links. Footer links carry no active state.
func BuildFooter(t *routes.Table) Footer {
	quick := Build(QuickLinks, t, "")
	legal := Build(Legal, t, "")
	return Footer{QuickLinks: quick, Legal: legal}
}
