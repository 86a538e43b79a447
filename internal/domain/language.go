package domain

import "strings"

type Language string

const (
	LanguageGeorgian Language = "ka"
	LanguageEnglish  Language = "en"
)

// ParseLanguage aceita "ka" ou "en" (também "ka-GE", "en-US" etc.)
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}

	switch Language(s) {
	case LanguageGeorgian, LanguageEnglish:
		return Language(s), true
	}
	return "", false
}
