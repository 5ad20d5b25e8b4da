// Package casing converts feature names between the lexical conventions used
// in generated files: param-case for file and folder names, camelCase for
// local identifiers and PascalCase for components and types.
package casing

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEmptyName is returned when a name has no letters or digits left after
// splitting it into words.
var ErrEmptyName = errors.New("feature name is empty")

// Name is a validated feature name together with its derived forms.
type Name struct {
	Raw    string // as typed, surrounding whitespace trimmed
	Param  string // "auth-login"
	Camel  string // "authLogin"
	Pascal string // "AuthLogin"
}

// NewName builds a Name from user input.
func NewName(raw string) (Name, error) {
	raw = strings.TrimSpace(raw)
	words := splitIntoWords(raw)
	if len(words) == 0 {
		return Name{}, ErrEmptyName
	}
	return Name{
		Raw:    raw,
		Param:  joinParam(words),
		Camel:  joinCamel(words),
		Pascal: joinPascal(words),
	}, nil
}

// String returns the raw form.
func (n Name) String() string { return n.Raw }

// ToParamCase produces "hello-world" from "Hello World" or "helloWorld".
func ToParamCase(input string) string {
	return joinParam(splitIntoWords(input))
}

// ToPascalCase produces "HelloWorld" from "hello-world".
func ToPascalCase(input string) string {
	return joinPascal(splitIntoWords(input))
}

// ToCamelCase produces "helloWorld" from "HelloWorld".
func ToCamelCase(input string) string {
	return joinCamel(splitIntoWords(input))
}

func joinParam(words []string) string {
	return strings.Join(words, "-")
}

func joinPascal(words []string) string {
	// A Caser keeps state between calls, so each join gets its own.
	titler := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(titler.String(w))
	}
	return b.String()
}

func joinCamel(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[0] + joinPascal(words[1:])
}

// splitIntoWords breaks s into lower-cased words. Any rune that is not a
// letter or digit separates words, as does a lower-case letter or digit
// followed by an upper-case letter. A run of upper-case letters followed by a
// lower-case one is split before its last letter, so "XMLHttp" yields "xml"
// and "http".
func splitIntoWords(s string) []string {
	runes := []rune(s)
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
