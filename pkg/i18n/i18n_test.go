package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_Languages(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "Server error", tr.T(LangEnglish, MsgServerError))
	assert.Equal(t, "خطای سرور", tr.T(LangPersian, MsgServerError))
	assert.Equal(t, "Server error", tr.T("", MsgServerError))
}

func TestTranslator_UnknownMessage(t *testing.T) {
	tr := MustNew("en")
	assert.Equal(t, "no_such_message", tr.T(LangEnglish, "no_such_message"))
}

func TestTranslator_Match(t *testing.T) {
	tr := MustNew("fa")

	assert.Equal(t, "fa", tr.DefaultLanguage())
	assert.Equal(t, "fa", tr.Match(""))
	assert.Equal(t, "en", tr.Match("en-US"))
	assert.Equal(t, "fa", tr.Match("fa-IR,fa;q=0.9,en;q=0.5"))
	assert.Equal(t, "en", tr.Match("", "en"))
}
