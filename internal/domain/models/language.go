package models

// DefaultLanguage is the language products and posts are stored in.
const DefaultLanguage = "en"

// SupportedLanguages maps the UI language codes to their display names: the
// 22 scheduled Indian languages plus English. Catalog translation only runs
// for codes in this table; anything else falls back to English.
var SupportedLanguages = map[string]string{
	"en":  "English",
	"hi":  "Hindi",
	"bn":  "Bengali",
	"te":  "Telugu",
	"mr":  "Marathi",
	"ta":  "Tamil",
	"ur":  "Urdu",
	"gu":  "Gujarati",
	"kn":  "Kannada",
	"or":  "Odia",
	"ml":  "Malayalam",
	"pa":  "Punjabi",
	"as":  "Assamese",
	"mai": "Maithili",
	"sat": "Santali",
	"ks":  "Kashmiri",
	"ne":  "Nepali",
	"sd":  "Sindhi",
	"kok": "Konkani",
	"doi": "Dogri",
	"mni": "Manipuri",
	"brx": "Bodo",
	"sa":  "Sanskrit",
}

// NormalizeLanguage returns the given code when supported, DefaultLanguage
// otherwise.
func NormalizeLanguage(code string) string {
	if _, ok := SupportedLanguages[code]; ok {
		return code
	}
	return DefaultLanguage
}
