package validation

import (
	"testing"

	"opiol_backend/internal/model"
	"opiol_backend/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() model.Draft {
	return model.Draft{
		EducationLevel:     "bachelor",
		GPA:                "3.8",
		CurrentUniversity:  "X",
		DestinationCountry: "germany",
		TargetDegree:       "msc",
		IntendedField:      "CS",
		EnglishTestTaken:   false,
		TargetYear:         "2025",
	}
}

func newValidator() *Validator {
	return New(i18n.MustNew("en"))
}

func TestValidate_CompleteDraftPassesUnchanged(t *testing.T) {
	d := completeDraft()
	got, ferr := newValidator().Validate(d, "en")
	require.Nil(t, ferr)
	assert.Equal(t, d, got)
}

func TestValidate_ScoreIsUnconstrained(t *testing.T) {
	d := completeDraft()
	d.EnglishTestTaken = true
	d.EnglishTestScore = ""

	_, ferr := newValidator().Validate(d, "en")
	assert.Nil(t, ferr)
}

func TestValidate_MissingUniversity(t *testing.T) {
	d := completeDraft()
	d.CurrentUniversity = ""

	_, ferr := newValidator().Validate(d, "en")
	require.NotNil(t, ferr)
	assert.Equal(t, model.FieldCurrentUniversity, ferr.Field)
	assert.Equal(t, "Please enter your current university", ferr.Message)
}

func TestValidate_ReportsEarliestMissingField(t *testing.T) {
	required := []model.DraftField{
		model.FieldEducationLevel,
		model.FieldGPA,
		model.FieldCurrentUniversity,
		model.FieldDestinationCountry,
		model.FieldTargetDegree,
		model.FieldIntendedField,
		model.FieldTargetYear,
	}
	v := newValidator()

	// 清空第 i 个及其之后任意一个字段，报告的总是第 i 个
	for i, field := range required {
		for _, later := range required[i:] {
			d := completeDraft()
			require.NoError(t, d.Set(field, ""))
			require.NoError(t, d.Set(later, ""))

			_, ferr := v.Validate(d, "en")
			require.NotNil(t, ferr, "field %s", field)
			assert.Equal(t, field, ferr.Field)
			assert.Equal(t, MessageID(field), ferr.MessageID)
		}
	}
}

func TestValidate_EmptyDraftReportsEducationLevel(t *testing.T) {
	_, ferr := newValidator().Validate(model.DefaultDraft(), "en")
	require.NotNil(t, ferr)
	assert.Equal(t, model.FieldEducationLevel, ferr.Field)
	assert.Equal(t, "Please select your education level", ferr.Error())
}

func TestValidate_PersianMessages(t *testing.T) {
	d := completeDraft()
	d.TargetYear = ""

	_, ferr := newValidator().Validate(d, "fa")
	require.NotNil(t, ferr)
	assert.Equal(t, "لطفا سال هدف را انتخاب کنید", ferr.Message)
}

func TestValidateInput_RequiresEnglishTestTaken(t *testing.T) {
	in := model.NewDraftInput(completeDraft())
	in.EnglishTestTaken = nil

	_, ferr := newValidator().ValidateInput(in, "en")
	require.NotNil(t, ferr)
	assert.Equal(t, model.FieldEnglishTestTaken, ferr.Field)
	assert.Equal(t, "Please specify whether you have taken an English test", ferr.Message)

	in.GPA = ""
	_, ferr = newValidator().ValidateInput(in, "en")
	require.NotNil(t, ferr)
	assert.Equal(t, model.FieldGPA, ferr.Field)
}

func TestValidateInput_ExplicitFalsePasses(t *testing.T) {
	got, ferr := newValidator().ValidateInput(model.NewDraftInput(completeDraft()), "en")
	require.Nil(t, ferr)
	assert.Equal(t, completeDraft(), got)
}
