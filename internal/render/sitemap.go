// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"encoding/xml"
	"strings"

	"confsite/internal/routes"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// Sitemap lists every routed path of t as absolute URLs under baseURL.
func Sitemap(t *routes.Table, baseURL string) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	set := urlSet{XMLNS: sitemapNS}
	for _, r := range t.Routes() {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + r.Path})
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
