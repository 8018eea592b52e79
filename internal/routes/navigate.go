// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package routes

// Navigator carries out the side effects of a page change.
type Navigator interface {
	// PushPath makes path the current location.
	PushPath(path string)
	// ScrollToTop brings the viewport back to the top of the page.
	ScrollToTop()
}

// NavigateTo resolves id to a path and applies it to nav. The path change
// always happens before the scroll so the scroll lands on the new page.
// It returns the resolved path.
func NavigateTo(nav Navigator, t *Table, id PageID) string {
	path := t.PathFor(id)
	nav.PushPath(path)
	nav.ScrollToTop()
	return path
}
