// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "context"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	csrfTokenKey
	viewportWidthKey
)

// RequestIDFromCtx returns the id assigned by RequestID, or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// CSRFTokenFromCtx returns the token the CSRF middleware issued or
// accepted for this request.
func CSRFTokenFromCtx(ctx context.Context) string {
	tok, _ := ctx.Value(csrfTokenKey).(string)
	return tok
}

// ViewportWidthFromCtx returns the viewport width reported by client hints.
// ok is false when the client sent none.
func ViewportWidthFromCtx(ctx context.Context) (width int, ok bool) {
	width, ok = ctx.Value(viewportWidthKey).(int)
	return width, ok
}
