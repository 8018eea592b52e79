// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package shell

// ScrolledThreshold is the vertical offset, in pixels, past which the
// header switches to its condensed style.
const ScrolledThreshold = 20

// ScrollState holds the cosmetic "scrolled" header flag.
type ScrollState struct {
	Scrolled bool
}

// Update recomputes the flag from the current vertical offset.
func (s *ScrollState) Update(offsetY int) {
	s.Scrolled = offsetY > ScrolledThreshold
}
