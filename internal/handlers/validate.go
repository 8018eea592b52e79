// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"confsite/internal/content"
)

// Validation limits for the contact form. They match the maxlength
// attributes on the form fields.
const (
	maxNameLen    = 120
	maxEmailLen   = 254
	maxPhoneLen   = 32
	maxMessageLen = 5000
)

// contactForm is a submitted enquiry with surrounding whitespace trimmed.
type contactForm struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func parseContactForm(r *http.Request) contactForm {
	get := func(k string) string { return strings.TrimSpace(r.PostFormValue(k)) }
	return contactForm{
		Name:    get("name"),
		Email:   get("email"),
		Phone:   get("phone"),
		Subject: get("subject"),
		Message: get("message"),
	}
}

// values returns the submission keyed by form field name, for echoing
// back into a re-rendered form.
func (f contactForm) values() map[string]string {
	return map[string]string{
		"name":    f.Name,
		"email":   f.Email,
		"phone":   f.Phone,
		"subject": f.Subject,
		"message": f.Message,
	}
}

// validateContact checks the form and returns the field and message of the
// first problem found, or two empty strings.
func validateContact(f contactForm, subjects []content.Option) (field, msg string) {
	switch {
	case f.Name == "":
		return "name", "Please enter your full name."
	case utf8.RuneCountInString(f.Name) > maxNameLen:
		return "name", "Name is too long (max 120 characters)."
	case f.Email == "":
		return "email", "Please enter your email address."
	case len(f.Email) > maxEmailLen || !validEmail(f.Email):
		return "email", "Please enter a valid email address."
	case utf8.RuneCountInString(f.Phone) > maxPhoneLen || !validPhone(f.Phone):
		return "phone", "Please enter a valid phone number."
	case f.Subject == "":
		return "subject", "Please select a subject."
	case !knownSubject(f.Subject, subjects):
		return "subject", "Please select a subject from the list."
	case f.Message == "":
		return "message", "Please enter a message."
	case utf8.RuneCountInString(f.Message) > maxMessageLen:
		return "message", "Message is too long (max 5,000 characters)."
	}
	return "", ""
}

// validEmail accepts a bare address; display names are rejected.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validPhone accepts an empty value or digits with common separators.
func validPhone(s string) bool {
	digits := 0
	for i, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '+' && i == 0:
		case c == ' ' || c == '-' || c == '(' || c == ')':
		default:
			return false
		}
	}
	return s == "" || digits >= 6
}

func knownSubject(v string, subjects []content.Option) bool {
	for _, o := range subjects {
		if o.Value == v {
			return true
		}
	}
	return false
}
