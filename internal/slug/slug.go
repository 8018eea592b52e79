// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns display text (speaker names, track titles, FAQ
// questions) into stable fragment identifiers for in-page anchors.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Generate creates a lowercase, hyphen-separated identifier from s.
// Accents are folded ("Café" -> "cafe"); other punctuation is dropped and
// runs of separators collapse to a single hyphen.
// Example: "Dr. Avinash K Shrivastava" -> "dr-avinash-k-shrivastava"
func Generate(s string) string {
	folded, _, err := transform.String(newFolder(), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/' || r == '&':
			pendingHyphen = true
		}
	}
	return b.String()
}

// newFolder decomposes characters and drops combining marks. Chained
// transformers carry state, so each call gets its own.
func newFolder() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Set hands out identifiers that are unique within one page.
type Set struct {
	seen map[string]int
}

// Add returns Generate(s), suffixed with -2, -3, ... on repeats.
func (st *Set) Add(s string) string {
	if st.seen == nil {
		st.seen = make(map[string]int)
	}
	id := Generate(s)
	st.seen[id]++
	if n := st.seen[id]; n > 1 {
		return id + "-" + strconv.Itoa(n)
	}
	return id
}
