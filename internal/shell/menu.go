// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package shell

import (
	"sync"

	"confsite/internal/routes"
)

// DesktopBreakpoint is the viewport width at which the mobile menu is
// hidden and forced closed.
const DesktopBreakpoint = 1024

// MenuState is the mobile menu state.
type MenuState int

const (
	Closed MenuState = iota
	Open
)

func (s MenuState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// ScrollLock suspends page scrolling while held.
type ScrollLock interface {
	Acquire()
	Release()
}

// Menu is the mobile menu state machine. The scroll lock is held exactly
// while the menu is open.
type Menu struct {
	mu    sync.Mutex
	state MenuState
	lock  ScrollLock
}

// NewMenu returns a closed menu that drives lock.
func NewMenu(lock ScrollLock) *Menu {
	return &Menu{lock: lock}
}

// State returns the current state.
func (m *Menu) State() MenuState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool {
	return m.State() == Open
}

// Toggle flips between open and closed.
func (m *Menu) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Open {
		m.closeLocked()
		return
	}
	m.state = Open
	m.lock.Acquire()
}

// Select closes the menu and then hands id to navigate.
func (m *Menu) Select(id routes.PageID, navigate func(routes.PageID)) {
	m.mu.Lock()
	m.closeLocked()
	m.mu.Unlock()
	navigate(id)
}

// Backdrop handles a click outside the menu panel.
func (m *Menu) Backdrop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
}

// Resize forces the menu closed once the viewport reaches desktop width,
// regardless of prior state.
func (m *Menu) Resize(width int) {
	if width < DesktopBreakpoint {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
}

// Close is the teardown path. It always leaves the menu closed with the
// scroll lock released and may be called any number of times.
func (m *Menu) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
}

func (m *Menu) closeLocked() {
	if m.state != Open {
		return
	}
	m.state = Closed
	m.lock.Release()
}

// BodyLock is the server-side ScrollLock: it records whether the rendered
// <body> must carry the scroll-locked class.
type BodyLock struct {
	held int
}

// Acquire marks the body as locked.
func (b *BodyLock) Acquire() { b.held++ }

// Release unlocks the body. Extra releases are ignored.
func (b *BodyLock) Release() {
	if b.held > 0 {
		b.held--
	}
}

// Locked reports whether scrolling is suspended.
func (b *BodyLock) Locked() bool { return b.held > 0 }
