package util

import (
	"html"
	"strings"

	"opiol_backend/internal/model"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes all markup but keeps the plain text readable ("A&M" stays "A&M").
func StripTags(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// SanitizeDraft strips markup from every free-text field of the draft.
func SanitizeDraft(d model.Draft) model.Draft {
	d.EducationLevel = StripTags(d.EducationLevel)
	d.GPA = StripTags(d.GPA)
	d.CurrentUniversity = StripTags(d.CurrentUniversity)
	d.DestinationCountry = StripTags(d.DestinationCountry)
	d.TargetDegree = StripTags(d.TargetDegree)
	d.IntendedField = StripTags(d.IntendedField)
	d.EnglishTestScore = StripTags(d.EnglishTestScore)
	d.TargetYear = StripTags(d.TargetYear)
	return d
}

// IsBlank reports whether s has no visible content once markup is removed.
func IsBlank(s string) bool {
	return strings.TrimSpace(StripTags(s)) == ""
}
