package models

// Supported content locales. English is the default and the fallback.
const (
	LocaleEnglish = "en"
	LocaleSinhala = "si"
	LocaleTamil   = "ta"
	DefaultLocale = LocaleEnglish
)

// LocalizedText holds the same text in the three supported languages.
// It is stored as embedded columns, e.g. name_en, name_si, name_ta.
type LocalizedText struct {
	EN string `json:"en"`
	SI string `json:"si"`
	TA string `json:"ta"`
}

// IsSupportedLocale reports whether locale is one of en, si or ta.
func IsSupportedLocale(locale string) bool {
	switch locale {
	case LocaleEnglish, LocaleSinhala, LocaleTamil:
		return true
	}
	return false
}

// Resolve returns the text for locale, falling back to English when the
// translation is empty or the locale is not supported.
func (t LocalizedText) Resolve(locale string) string {
	var v string
	switch locale {
	case LocaleSinhala:
		v = t.SI
	case LocaleTamil:
		v = t.TA
	}
	if v == "" {
		return t.EN
	}
	return v
}

// Localized is implemented by entities that carry a localized name and description.
type Localized interface {
	LocalizedName() LocalizedText
	LocalizedDescription() LocalizedText
}
