package service

import (
	"testing"

	"opiol_backend/internal/repository"
	"opiol_backend/internal/validation"
	"opiol_backend/pkg/i18n"

	"github.com/stretchr/testify/require"
)

var testTranslator = i18n.MustNew(i18n.LangEnglish)

func newFixtures(t *testing.T) *repository.FixtureRepository {
	t.Helper()
	r, err := repository.NewFixtureRepository()
	require.NoError(t, err)
	return r
}

func newValidator() *validation.Validator {
	return validation.New(testTranslator)
}
