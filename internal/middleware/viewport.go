// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// Viewport client hint headers, newest first.
var viewportHeaders = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// ViewportHint asks browsers for the viewport width and stores a reported
// width in the request context. Handlers use it to close the mobile menu
// on desktop-sized viewports.
func ViewportHint(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", strings.Join(viewportHeaders, ", "))
		w.Header().Add("Vary", viewportHeaders[0])

		for _, h := range viewportHeaders {
			v := strings.TrimSpace(r.Header.Get(h))
			if v == "" {
				continue
			}
			width, err := strconv.Atoi(v)
			if err != nil || width <= 0 {
				continue
			}
			r = r.WithContext(context.WithValue(r.Context(), viewportWidthKey, width))
			break
		}

		next.ServeHTTP(w, r)
	})
}
