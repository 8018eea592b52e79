// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import "html/template"

// Meta is the per-page <head> data.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Hero is the banner at the top of every page.
type Hero struct {
	Title     string `yaml:"title"`
	Highlight string `yaml:"highlight"` // accented trailing words of the title
	Subtitle  string `yaml:"subtitle"`
}

// Prose is a headed block of Markdown copy.
type Prose struct {
	Heading string        `yaml:"heading"`
	Body    string        `yaml:"body"`
	HTML    template.HTML `yaml:"-"`
}

// Card is a small icon/title/description tile.
type Card struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Stat is a headline figure such as "6 | Research Tracks".
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// DateItem is an entry in an important-dates list.
type DateItem struct {
	Label string `yaml:"label"`
	Date  string `yaml:"date"`
}

// CTA is a call-to-action button that points at a page id.
type CTA struct {
	Label string `yaml:"label"`
	Page  string `yaml:"page"`
}

// SocialLink is an external profile, opened in a new browsing context.
type SocialLink struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Site is conference-wide data shared by the chrome and several pages.
type Site struct {
	Name        string       `yaml:"name"`
	ShortName   string       `yaml:"short_name"`
	Theme       string       `yaml:"theme"`
	Dates       string       `yaml:"dates"`
	Institution string       `yaml:"institution"`
	Department  string       `yaml:"department"`
	Address     []string     `yaml:"address"`
	Email       string       `yaml:"email"`
	Phone       string       `yaml:"phone"`
	Logo        string       `yaml:"logo"`
	Social      []SocialLink `yaml:"social"`
	Copyright   string       `yaml:"copyright"`
}

// Home is the landing page.
type Home struct {
	Meta           Meta       `yaml:"meta"`
	Hero           Hero       `yaml:"hero"`
	Badge          string     `yaml:"badge"`
	Primary        CTA        `yaml:"primary"`
	Secondary      CTA        `yaml:"secondary"`
	Stats          []Stat     `yaml:"stats"`
	Intro          Prose      `yaml:"intro"`
	Highlights     []Card     `yaml:"highlights"`
	ImportantDates []DateItem `yaml:"important_dates"`
	Closing        Prose      `yaml:"closing"`
}

// FeeRow is one participant category with early-bird and regular fees.
type FeeRow struct {
	Category  string `yaml:"category"`
	EarlyBird string `yaml:"early_bird"`
	Regular   string `yaml:"regular"`
}

// FeeGroup is a fee table for one participant origin.
type FeeGroup struct {
	Name string   `yaml:"name"`
	Rows []FeeRow `yaml:"rows"`
}

// Registration is the fees and registration process page.
type Registration struct {
	Meta           Meta       `yaml:"meta"`
	Hero           Hero       `yaml:"hero"`
	Fees           []FeeGroup `yaml:"fees"`
	Inclusions     []string   `yaml:"inclusions"`
	Steps          []Card     `yaml:"steps"`
	Notes          []string   `yaml:"notes"`
	ImportantDates []DateItem `yaml:"important_dates"`
	Payment        Prose      `yaml:"payment"`
}

// Person is a speaker card.
type Person struct {
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title"`
	Affiliation string   `yaml:"affiliation"`
	Topic       string   `yaml:"topic"`
	Bio         string   `yaml:"bio"`
	Expertise   []string `yaml:"expertise"`
	Image       string   `yaml:"image"`
	Anchor      string   `yaml:"-"`
}

// Speakers lists keynote and workshop speakers.
type Speakers struct {
	Meta         Meta     `yaml:"meta"`
	Hero         Hero     `yaml:"hero"`
	Keynotes     []Person `yaml:"keynotes"`
	WorkshopDate string   `yaml:"workshop_date"`
	Workshop     []Person `yaml:"workshop"`
}

// Member is a committee member.
type Member struct {
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	Affiliation string `yaml:"affiliation"`
}

// CommitteeGroup is a named committee.
type CommitteeGroup struct {
	Name    string   `yaml:"name"`
	Members []Member `yaml:"members"`
	Anchor  string   `yaml:"-"`
}

// Committees is the organizing and advisory committee page.
type Committees struct {
	Meta   Meta             `yaml:"meta"`
	Hero   Hero             `yaml:"hero"`
	Intro  Prose            `yaml:"intro"`
	Groups []CommitteeGroup `yaml:"groups"`
}

// Venue is the location and travel page.
type Venue struct {
	Meta          Meta     `yaml:"meta"`
	Hero          Hero     `yaml:"hero"`
	About         Prose    `yaml:"about"`
	MapURL        string   `yaml:"map_url"`
	Travel        []Card   `yaml:"travel"`
	Facilities    []string `yaml:"facilities"`
	Accommodation Prose    `yaml:"accommodation"`
}

// ContactPerson is a point of contact on the contact page.
type ContactPerson struct {
	Title       string `yaml:"title"`
	Name        string `yaml:"name"`
	Designation string `yaml:"designation"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
}

// Option is a select option.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// FAQ is an accordion entry. Answers are Markdown.
type FAQ struct {
	Question string        `yaml:"question"`
	Answer   string        `yaml:"answer"`
	HTML     template.HTML `yaml:"-"`
	Anchor   string        `yaml:"-"`
}

// Contact is the contact page, including the enquiry form options.
type Contact struct {
	Meta           Meta            `yaml:"meta"`
	Hero           Hero            `yaml:"hero"`
	People         []ContactPerson `yaml:"people"`
	Subjects       []Option        `yaml:"subjects"`
	FAQs           []FAQ           `yaml:"faqs"`
	Acknowledgment string          `yaml:"acknowledgment"`
}

// AboutConference covers the conference, the institute and the department.
type AboutConference struct {
	Meta       Meta    `yaml:"meta"`
	Hero       Hero    `yaml:"hero"`
	Sections   []Prose `yaml:"sections"`
	Facts      []Stat  `yaml:"facts"`
	Highlights []Card  `yaml:"highlights"`
	Closing    Prose   `yaml:"closing"`
}

// SubmissionType is a kind of paper accepted for review.
type SubmissionType struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Points      []string `yaml:"points"`
}

// Guideline is an accordion section of submission rules.
type Guideline struct {
	Title  string   `yaml:"title"`
	Points []string `yaml:"points"`
	Anchor string   `yaml:"-"`
}

// CallForPapers is the submission guidelines page.
type CallForPapers struct {
	Meta            Meta             `yaml:"meta"`
	Hero            Hero             `yaml:"hero"`
	Intro           Prose            `yaml:"intro"`
	SubmissionTypes []SubmissionType `yaml:"submission_types"`
	Guidelines      []Guideline      `yaml:"guidelines"`
	Closing         Prose            `yaml:"closing"`
}

// Track is a research track.
type Track struct {
	Number      int      `yaml:"number"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Subtopics   []string `yaml:"subtopics"`
	Anchor      string   `yaml:"-"`
}

// Tracks is the research tracks page.
type Tracks struct {
	Meta   Meta    `yaml:"meta"`
	Hero   Hero    `yaml:"hero"`
	Intro  Prose   `yaml:"intro"`
	Tracks []Track `yaml:"tracks"`
}

// Session is one room within a parallel session slot.
type Session struct {
	Track  string   `yaml:"track"`
	Room   string   `yaml:"room"`
	Papers []string `yaml:"papers"`
}

// Event is a schedule slot.
type Event struct {
	Time         string    `yaml:"time"`
	Title        string    `yaml:"title"`
	Type         string    `yaml:"type"`
	Location     string    `yaml:"location"`
	Description  string    `yaml:"description"`
	Speaker      string    `yaml:"speaker"`
	SpeakerTitle string    `yaml:"speaker_title"`
	Topic        string    `yaml:"topic"`
	Speakers     []string  `yaml:"speakers"`
	Sessions     []Session `yaml:"sessions"`
	Moderator    string    `yaml:"moderator"`
	Panelists    []string  `yaml:"panelists"`
}

// Day is a schedule tab.
type Day struct {
	ID     string  `yaml:"id"`
	Label  string  `yaml:"label"`
	Date   string  `yaml:"date"`
	Events []Event `yaml:"events"`
}

// Schedule is the day-by-day programme.
type Schedule struct {
	Meta Meta  `yaml:"meta"`
	Hero Hero  `yaml:"hero"`
	Days []Day `yaml:"days"`
}

// Partner is a publication partner journal.
type Partner struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Tier        string `yaml:"tier"`
	Note        string `yaml:"note"`
}

// Tier is a sponsorship package.
type Tier struct {
	Name     string   `yaml:"name"`
	Amount   string   `yaml:"amount"`
	Benefits []string `yaml:"benefits"`
}

// Sponsors lists partners and sponsorship packages.
type Sponsors struct {
	Meta         Meta      `yaml:"meta"`
	Hero         Hero      `yaml:"hero"`
	Partners     []Partner `yaml:"partners"`
	Tiers        []Tier    `yaml:"tiers"`
	Associations []string  `yaml:"associations"`
	Closing      Prose     `yaml:"closing"`
}

// ThemeArea is one dimension of the conference theme.
type ThemeArea struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Points      []string `yaml:"points"`
}

// Theme explains the conference theme.
type Theme struct {
	Meta     Meta        `yaml:"meta"`
	Hero     Hero        `yaml:"hero"`
	Overview Prose       `yaml:"overview"`
	Areas    []ThemeArea `yaml:"areas"`
	Impact   []Card      `yaml:"impact"`
}
