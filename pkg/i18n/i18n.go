package i18n

import (
	"embed"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

const (
	LangEnglish = "en"
	LangPersian = "fa"
)

// 消息 ID
const (
	MsgProfileSaved          = "profile_saved"
	MsgProfileSaveFailed     = "profile_save_failed"
	MsgServerError           = "server_error"
	MsgWizardSaving          = "wizard_saving"
	MsgWizardSaved           = "wizard_saved"
	MsgWizardSaveFailedRetry = "wizard_save_failed_retry"
	MsgBoundaryTitle         = "boundary_title"
	MsgBoundaryMessage       = "boundary_message"
	MsgAdvisorEmptyMessage   = "advisor_empty_message"
)

var supported = []language.Tag{language.English, language.Persian}

// Translator 持有翻译包，按语言返回本地化消息
type Translator struct {
	bundle      *goi18n.Bundle
	matcher     language.Matcher
	defaultLang string
}

func New(defaultLang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"locales/active.en.toml", "locales/active.fa.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, err
		}
	}

	t := &Translator{
		bundle:  bundle,
		matcher: language.NewMatcher(supported),
	}
	t.defaultLang = t.Match(defaultLang)
	return t, nil
}

// MustNew is for tests and package-level defaults; the embedded files always parse.
func MustNew(defaultLang string) *Translator {
	t, err := New(defaultLang)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match 将请求中的语言偏好（如 "fa-IR" 或 Accept-Language 头）归一化为支持的语言
func (t *Translator) Match(prefs ...string) string {
	var nonEmpty []string
	for _, p := range prefs {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		if t.defaultLang != "" {
			return t.defaultLang
		}
		return LangEnglish
	}

	tag, _ := language.MatchStrings(t.matcher, nonEmpty...)
	base, _ := tag.Base()
	return base.String()
}

// T translates messageID; unknown IDs come back unchanged.
func (t *Translator) T(lang, messageID string) string {
	if lang == "" {
		lang = t.defaultLang
	}
	localizer := goi18n.NewLocalizer(t.bundle, lang, t.defaultLang)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
