package domain

import (
	"html"
	"strings"
)

// RawRequest carries the user-supplied fields before validation. A nil
// Profile or Lang means the field was absent, which selects the default;
// a present but empty value is rejected.
type RawRequest struct {
	CSS     string
	Profile *string
	Lang    *string
}

// ValidationRequest is a request whose profile and lang passed the catalog
// check. It cannot be modified after construction.
type ValidationRequest struct {
	css     string
	profile string
	lang    string
}

// NewValidationRequest normalizes the CSS and validates the parameters.
// It returns a *Error of kind KindBadRequest when css is empty and
// KindInvalidParameter when profile or lang is not in the catalog.
func NewValidationRequest(raw RawRequest, catalog Catalog) (ValidationRequest, error) {
	if raw.CSS == "" {
		return ValidationRequest{}, BadRequest()
	}

	profile := DefaultProfile
	if raw.Profile != nil {
		profile = *raw.Profile
	}
	lang := DefaultLang
	if raw.Lang != nil {
		lang = *raw.Lang
	}

	if err := catalog.Check(profile, lang); err != nil {
		return ValidationRequest{}, err
	}

	return ValidationRequest{css: NormalizeCSS(raw.CSS), profile: profile, lang: lang}, nil
}

func (r ValidationRequest) CSS() string     { return r.css }
func (r ValidationRequest) Profile() string { return r.profile }
func (r ValidationRequest) Lang() string    { return r.lang }

// NormalizeCSS decodes HTML entities, trims whitespace and strips one quote
// character from each end.
func NormalizeCSS(s string) string {
	s = strings.TrimSpace(html.UnescapeString(s))
	if s != "" && isQuote(s[0]) {
		s = s[1:]
	}
	if s != "" && isQuote(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}

func isQuote(b byte) bool { return b == '\'' || b == '"' }
