package i18n

import (
	"strings"
	"sync/atomic"
)

// Translator retrieves localized default messages for violation codes.
// data carries the values embedded in the message ("name", "value", "zero",
// "type", "expected", "index").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var templates = map[string]map[string]string{
	"en": {
		"null_not_allowed":          "{name} must not be nil",
		"empty_not_allowed":         "{name} must not be empty",
		"whitespace_not_allowed":    "{name} must not consist only of whitespace",
		"default_value_not_allowed": "{name} must not be the zero value {zero} of {type}",
		"out_of_range":              "{name} is out of range: {value}",
		"collection_empty":          "{name} must contain at least one element",
		"item_null":                 "{name} must not contain nil elements (index {index})",
		"item_empty":                "{name} must not contain empty elements (index {index})",
		"item_whitespace":           "{name} must not contain whitespace-only elements (index {index})",
		"type_mismatch":             "{name} has type {type}, expected {expected}",
		"enum_out_of_range":         "{name} value {value} is not a declared member of {type}",
		"predicate_failed":          "{name} does not satisfy the required condition",
		"invalid_uri":               "{name} is not a well-formed URI: {value}",
		"state_invalid":             "{name} is in an invalid state",
		"custom":                    "{name} violated a contract",
	},
	"ja": {
		"null_not_allowed":          "{name} は nil であってはなりません",
		"empty_not_allowed":         "{name} は空であってはなりません",
		"whitespace_not_allowed":    "{name} は空白のみであってはなりません",
		"default_value_not_allowed": "{name} は {type} のゼロ値 {zero} であってはなりません",
		"out_of_range":              "{name} が範囲外です: {value}",
		"collection_empty":          "{name} には少なくとも 1 つの要素が必要です",
		"item_null":                 "{name} に nil の要素が含まれています (インデックス {index})",
		"item_empty":                "{name} に空の要素が含まれています (インデックス {index})",
		"item_whitespace":           "{name} に空白のみの要素が含まれています (インデックス {index})",
		"type_mismatch":             "{name} の型は {type} ですが {expected} が必要です",
		"enum_out_of_range":         "{name} の値 {value} は {type} に定義されていません",
		"predicate_failed":          "{name} が条件を満たしていません",
		"invalid_uri":               "{name} は正しい URI ではありません: {value}",
		"state_invalid":             "{name} の状態が不正です",
		"custom":                    "{name} が契約に違反しました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := templates[t.lang][code]
	if !ok {
		tmpl, ok = templates["en"][code]
	}
	if !ok {
		return code
	}
	return Render(tmpl, data)
}

// Render substitutes {key} placeholders in tmpl with entries from data.
// Unknown placeholders are left untouched.
func Render(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// Languages lists the languages known to the built-in Translator.
func Languages() []string { return []string{"en", "ja"} }

// Supported reports whether lang has a built-in dictionary.
func Supported(lang string) bool {
	_, ok := templates[lang]
	return ok
}

// For returns the built-in Translator for lang without installing it.
// Unsupported languages fall back to English.
func For(lang string) Translator {
	if !Supported(lang) {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	current.Store(&holder{tr: For(lang)})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// Current returns the Translator in use.
func Current() Translator { return current.Load().tr }

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
