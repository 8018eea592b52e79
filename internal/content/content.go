// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content loads the site copy. Every page is described by a YAML
// file embedded in the binary and decoded into a typed page model once at
// startup; after that the catalog is read-only and shared by all requests.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/yaml.v3"

	"confsite/internal/markdown"
	"confsite/internal/routes"
	"confsite/internal/slug"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Catalog holds the decoded content of every page.
type Catalog struct {
	Site            Site
	Home            Home
	Registration    Registration
	Speakers        Speakers
	Committees      Committees
	Venue           Venue
	Contact         Contact
	AboutConference AboutConference
	CallForPapers   CallForPapers
	Tracks          Tracks
	Schedule        Schedule
	Sponsors        Sponsors
	Theme           Theme
}

// Load decodes the embedded content files.
func Load() (*Catalog, error) {
	c := &Catalog{}

	files := []struct {
		name string
		dst  any
	}{
		{"site.yaml", &c.Site},
		{"home.yaml", &c.Home},
		{"registration.yaml", &c.Registration},
		{"speakers.yaml", &c.Speakers},
		{"committees.yaml", &c.Committees},
		{"venue.yaml", &c.Venue},
		{"contact.yaml", &c.Contact},
		{"about-conference.yaml", &c.AboutConference},
		{"call-for-papers.yaml", &c.CallForPapers},
		{"tracks.yaml", &c.Tracks},
		{"schedule.yaml", &c.Schedule},
		{"sponsors.yaml", &c.Sponsors},
		{"theme.yaml", &c.Theme},
	}
	for _, f := range files {
		if err := decodeFile(f.name, f.dst); err != nil {
			return nil, err
		}
	}

	if err := c.prepare(); err != nil {
		return nil, err
	}
	return c, nil
}

// decodeFile strictly decodes one embedded YAML file; unknown keys fail.
func decodeFile(name string, dst any) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("read content %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode content %s: %w", name, err)
	}
	return nil
}

// prepare renders Markdown fields and assigns anchor ids.
func (c *Catalog) prepare() error {
	proses := []*Prose{
		&c.Home.Intro, &c.Home.Closing,
		&c.Registration.Payment,
		&c.Committees.Intro,
		&c.Venue.About, &c.Venue.Accommodation,
		&c.AboutConference.Closing,
		&c.CallForPapers.Intro, &c.CallForPapers.Closing,
		&c.Tracks.Intro,
		&c.Sponsors.Closing,
		&c.Theme.Overview,
	}
	for i := range c.AboutConference.Sections {
		proses = append(proses, &c.AboutConference.Sections[i])
	}
	for _, p := range proses {
		h, err := renderMarkdown(p.Body)
		if err != nil {
			return fmt.Errorf("render %q: %w", p.Heading, err)
		}
		p.HTML = h
	}

	var faqIDs slug.Set
	for i := range c.Contact.FAQs {
		f := &c.Contact.FAQs[i]
		h, err := renderMarkdown(f.Answer)
		if err != nil {
			return fmt.Errorf("render faq %q: %w", f.Question, err)
		}
		f.HTML = h
		f.Anchor = "faq-" + faqIDs.Add(f.Question)
	}

	// Keynote and workshop cards share one page, so one id set.
	var speakerIDs slug.Set
	for i := range c.Speakers.Keynotes {
		c.Speakers.Keynotes[i].Anchor = speakerIDs.Add(c.Speakers.Keynotes[i].Name)
	}
	for i := range c.Speakers.Workshop {
		c.Speakers.Workshop[i].Anchor = speakerIDs.Add(c.Speakers.Workshop[i].Name)
	}
	for i := range c.Committees.Groups {
		c.Committees.Groups[i].Anchor = slug.Generate(c.Committees.Groups[i].Name)
	}
	for i := range c.CallForPapers.Guidelines {
		c.CallForPapers.Guidelines[i].Anchor = slug.Generate(c.CallForPapers.Guidelines[i].Title)
	}
	for i := range c.Tracks.Tracks {
		t := &c.Tracks.Tracks[i]
		t.Anchor = fmt.Sprintf("track-%d", t.Number)
	}
	return nil
}

func renderMarkdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	h, err := markdown.ToHTML(src)
	if err != nil {
		return "", err
	}
	return template.HTML(h), nil
}

// Page returns the content model and head metadata for a page id.
func (c *Catalog) Page(id routes.PageID) (any, Meta, bool) {
	switch id {
	case routes.Home:
		return &c.Home, c.Home.Meta, true
	case routes.Registration:
		return &c.Registration, c.Registration.Meta, true
	case routes.Speakers:
		return &c.Speakers, c.Speakers.Meta, true
	case routes.Committees:
		return &c.Committees, c.Committees.Meta, true
	case routes.Venue:
		return &c.Venue, c.Venue.Meta, true
	case routes.Contact:
		return &c.Contact, c.Contact.Meta, true
	case routes.AboutConference:
		return &c.AboutConference, c.AboutConference.Meta, true
	case routes.CallForPapers:
		return &c.CallForPapers, c.CallForPapers.Meta, true
	case routes.Tracks:
		return &c.Tracks, c.Tracks.Meta, true
	case routes.Schedule:
		return &c.Schedule, c.Schedule.Meta, true
	case routes.Sponsors:
		return &c.Sponsors, c.Sponsors.Meta, true
	case routes.Theme:
		return &c.Theme, c.Theme.Meta, true
	}
	return nil, Meta{}, false
}
