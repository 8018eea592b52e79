// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"strings"

	"confsite/internal/content"
	"confsite/internal/routes"
	"confsite/internal/shell"
)

// NewPageData assembles the data for page id. The live server and the
// static export both build pages through here.
func NewPageData(cat *content.Catalog, table *routes.Table, id routes.PageID, chrome shell.Chrome, baseURL string) (*PageData, error) {
	page, meta, ok := cat.Page(id)
	if !ok {
		return nil, &UnknownPageError{ID: id}
	}
	title := meta.Title + " | " + cat.Site.ShortName
	if id == routes.Home {
		title = cat.Site.ShortName + " | " + cat.Site.Name
	}
	return &PageData{
		Title:       title,
		Description: meta.Description,
		Canonical:   strings.TrimRight(baseURL, "/") + table.PathFor(id),
		Site:        &cat.Site,
		Chrome:      chrome,
		Page:        page,
	}, nil
}

// UnknownPageError is returned for an id the catalog has no content for.
type UnknownPageError struct {
	ID routes.PageID
}

func (e *UnknownPageError) Error() string {
	return "render: no content for page " + string(e.ID)
}
