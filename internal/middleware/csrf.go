// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
)

const (
	// csrfTokenLength is the byte length of CSRF tokens (32 bytes = 64 hex chars).
	csrfTokenLength = 32

	// CSRFCookieName is the cookie that holds the CSRF token.
	CSRFCookieName = "confsite_csrf"

	// CSRFHeaderName is checked before the form field, for fetch-based
	// submissions from shell.js.
	CSRFHeaderName = "X-CSRF-Token"

	// CSRFFormField is the hidden form field name in the contact form.
	CSRFFormField = "csrf_token"
)

// NewCSRF returns double-submit cookie protection for the contact form.
// Every request carries a token in its context so templates can embed it;
// state-changing requests must echo the cookie value in the header or the
// form field. secure marks the cookie Secure and should be set whenever
// the site is served over TLS.
func NewCSRF(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return csrfHandler(next, secure)
	}
}

func csrfHandler(next http.Handler, secure bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(CSRFCookieName); err == nil && len(cookie.Value) == 2*csrfTokenLength {
			token = cookie.Value
		}
		fromCookie := token != ""
		if !fromCookie {
			var err error
			token, err = generateCSRFToken()
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     CSRFCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), csrfTokenKey, token)
		r = r.WithContext(ctx)

		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		submitted := r.Header.Get(CSRFHeaderName)
		if submitted == "" {
			submitted = r.PostFormValue(CSRFFormField)
		}

		// A freshly minted token can never match: the client had no cookie.
		if !fromCookie || subtle.ConstantTimeCompare([]byte(token), []byte(submitted)) != 1 {
			http.Error(w, "CSRF token mismatch", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// generateCSRFToken creates a cryptographically random token.
func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
