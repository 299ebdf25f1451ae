package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Default request parameters applied when the caller omits them.
const (
	DefaultProfile = "css3svg"
	DefaultLang    = "en"
)

// Catalog holds the allow-lists a request's profile and lang are checked against.
// It is built once at start-up and injected; requests never extend it.
type Catalog struct {
	Profiles []string `json:"profiles"`
	Langs    []string `json:"langs"`
}

// DefaultCatalog returns the profiles and languages the W3C validator accepts.
func DefaultCatalog() Catalog {
	return Catalog{
		Profiles: []string{
			"css1", "css2", "css21", "css3", "css3svg",
			"svg", "svgbasic", "svgtiny", "atsc-tv", "mobile", "tv",
		},
		Langs: []string{
			"bg", "cs", "de", "el", "en", "es", "fa", "fr", "hi", "hu", "it",
			"ja", "ko", "nl", "pl-PL", "pt-BR", "ro", "ru", "sv", "uk", "zh-cn",
		},
	}
}

// HasProfile reports whether p is an allowed profile. Matching is exact.
func (c Catalog) HasProfile(p string) bool { return slices.Contains(c.Profiles, p) }

// HasLang reports whether l is an allowed language. Matching is exact.
func (c Catalog) HasLang(l string) bool { return slices.Contains(c.Langs, l) }

// Check validates profile and lang, profile first. The returned error is a
// *Error of kind KindInvalidParameter naming every valid value.
func (c Catalog) Check(profile, lang string) error {
	if !c.HasProfile(profile) {
		return invalidParameter("profile", c.Profiles)
	}
	if !c.HasLang(lang) {
		return invalidParameter("lang", c.Langs)
	}
	return nil
}

func invalidParameter(field string, valid []string) *Error {
	return &Error{
		Kind:    KindInvalidParameter,
		Message: fmt.Sprintf("Invalid %s. Valid values: %s", field, strings.Join(valid, ", ")),
	}
}
