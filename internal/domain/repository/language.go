package repository

// Language narrows analysis language codes the upstream accepts.
type Language string

const (
	LangKorean   Language = "ko"
	LangEnglish  Language = "en"
	LangChinese  Language = "zh"
	LangJapanese Language = "ja"
)

// IsValidLanguage returns true if lang is a supported language.
func IsValidLanguage(lang Language) bool {
	switch lang {
	case LangKorean, LangEnglish, LangChinese, LangJapanese:
		return true
	default:
		return false
	}
}

// DefaultLanguage returns the default analysis language.
func DefaultLanguage() Language { return LangKorean }

// NormalizeLanguage converts raw string to a valid language (or default).
func NormalizeLanguage(s string) Language {
	if s == "" {
		return DefaultLanguage()
	}
	l := Language(s)
	if IsValidLanguage(l) {
		return l
	}
	return DefaultLanguage()
}
