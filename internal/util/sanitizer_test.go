package util

import (
	"testing"

	"opiol_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Texas A&M", StripTags("Texas A&M"))
	assert.Equal(t, "TU Munich", StripTags("<b>TU Munich</b>"))
	assert.Equal(t, "", StripTags("<script>alert(1)</script>"))
}

func TestSanitizeDraft(t *testing.T) {
	d := model.Draft{
		CurrentUniversity: "<i>ETH</i> Zurich",
		IntendedField:     "Data <br/>Science",
		EnglishTestTaken:  true,
	}
	got := SanitizeDraft(d)
	assert.Equal(t, "ETH Zurich", got.CurrentUniversity)
	assert.Equal(t, "Data Science", got.IntendedField)
	assert.True(t, got.EnglishTestTaken)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("<p> </p>"))
	assert.False(t, IsBlank("sop"))
}
