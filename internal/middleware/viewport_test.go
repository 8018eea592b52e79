// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestViewportHint(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    int
		wantOK  bool
	}{
		{"no hint", nil, 0, false},
		{"modern hint", map[string]string{"Sec-CH-Viewport-Width": "1280"}, 1280, true},
		{"legacy hint", map[string]string{"Viewport-Width": "375"}, 375, true},
		{"modern wins", map[string]string{"Sec-CH-Viewport-Width": "1024", "Viewport-Width": "320"}, 1024, true},
		{"malformed ignored", map[string]string{"Sec-CH-Viewport-Width": "wide"}, 0, false},
		{"negative ignored", map[string]string{"Viewport-Width": "-5"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got int
			var ok bool
			h := ViewportHint(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok = ViewportWidthFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
			if rr.Header().Get("Accept-CH") == "" {
				t.Error("Accept-CH should be advertised")
			}
		})
	}
}
