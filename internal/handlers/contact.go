// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"confsite/internal/middleware"
	"confsite/internal/render"
	"confsite/internal/routes"
)

// ContactSubmit handles the enquiry form. The submission is validated and
// acknowledged at the same URL; nothing is stored or sent anywhere.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	form := parseContactForm(r)

	data, err := render.NewPageData(p.catalog, p.table, routes.Contact, p.chrome(r, routes.Contact), p.baseURL)
	if err != nil {
		p.fail(w, r, routes.Contact, err)
		return
	}

	status := http.StatusOK
	if field, msg := validateContact(form, p.catalog.Contact.Subjects); msg != "" {
		status = http.StatusUnprocessableEntity
		data.Flashes = []render.Flash{{Type: "error", Message: msg}}
		data.Form = render.Form{Values: form.values(), Field: field}
	} else {
		slog.Info("contact enquiry acknowledged",
			"subject", form.Subject,
			"request_id", middleware.RequestIDFromCtx(r.Context()),
		)
		data.Flashes = []render.Flash{{Type: "success", Message: p.catalog.Contact.Acknowledgment}}
	}

	if err := p.renderer.Page(w, r, status, routes.Contact, data); err != nil {
		p.logRenderError(r, routes.Contact, err)
	}
}
