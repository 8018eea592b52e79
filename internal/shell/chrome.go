// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package shell

import "confsite/internal/routes"

// MenuParam is the query parameter that carries the open menu state on
// requests made without JavaScript.
const MenuParam = "menu"

// Chrome is the view model for the layout around a page.
type Chrome struct {
	Current routes.PageID
	Nav     []NavLink
	Footer  Footer

	MenuOpen     bool
	ScrollLocked bool
	Scrolled     bool

	// ToggleHref flips the menu state; BackdropHref always closes it.
	ToggleHref   string
	BackdropHref string
	RegisterHref string
}

// NewChrome snapshots the shell state for rendering. path is the path the
// page is served at; links that close the menu point back to it without
// the menu parameter.
func NewChrome(t *routes.Table, current routes.PageID, path string, menu *Menu, lock *BodyLock, scroll ScrollState) Chrome {
	open := menu.IsOpen()
	toggle := path + "?" + MenuParam + "=open"
	if open {
		toggle = path
	}
	return Chrome{
		Current:      current,
		Nav:          NavItems(t, current),
		Footer:       BuildFooter(t),
		MenuOpen:     open,
		ScrollLocked: lock.Locked(),
		Scrolled:     scroll.Scrolled,
		ToggleHref:   toggle,
		BackdropHref: path,
		RegisterHref: t.PathFor(routes.Registration),
	}
}
