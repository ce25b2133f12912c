package domain

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares a label for storage and display:
//   - trims leading/trailing whitespace
//   - compresses multiple spaces into one
//
// Case, diacritics and punctuation are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// dateRangeRe matches a parenthesised numeric range such as "(1850-1920)"
// or "( 18.. - 19.. )".
var dateRangeRe = regexp.MustCompile(`\(\s*[\d.]+\s*-\s*[\d.]+\s*\)`)

// deletedPunct is the literal set of characters removed from entries.
// Keep it literal: stored canonical keys depend on it.
const deletedPunct = "!\"#$%&()*+,-./:;<=>?@[\\]^_`{|}~'"

var specialChars = strings.NewReplacer(
	"\u00a0", " ", // no-break space
	"\u00b0", " ", // degree sign
	"\u2026", " ", // horizontal ellipsis
	"\u00b4", "_", // spacing acute accent
	"\u00a8", "_", // spacing diaeresis
)

// NormalizeEntry returns the canonical key of an authority label. Labels that
// differ only in punctuation, diacritics, case, a trailing "(1850-1920)" style
// date range or word order share the same key:
//
//	NormalizeEntry("Dupont, Paul (1850-1920)") == "dupont paul"
//	NormalizeEntry("Paul Dupont")              == "dupont paul"
//
// The function is pure and safe for concurrent use.
func NormalizeEntry(entry string) string {
	s := dateRangeRe.ReplaceAllString(entry, "")
	s = strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && strings.ContainsRune(deletedPunct, r) {
			return -1
		}
		return r
	}, s)
	s = specialChars.Replace(s)
	s = strings.ToLower(foldAccents(strings.TrimSpace(s)))

	words := strings.Split(s, " ")
	words = slices.DeleteFunc(words, func(w string) bool { return w == "" })
	slices.Sort(words)

	return strings.TrimSpace(strings.Join(words, " "))
}

// foldAccents strips diacritics from Latin letters. A letter is replaced only
// when its folded form consists of letters and digits, so folding never
// introduces punctuation into a key. Other scripts pass through.
func foldAccents(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	afterLatin := false
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			if !afterLatin {
				b.WriteRune(r)
			}
			continue
		case r < unicode.MaxASCII:
			b.WriteRune(r)
		case unicode.Is(unicode.Latin, r):
			b.WriteString(foldLatin(r))
		default:
			b.WriteRune(r)
		}
		afterLatin = unicode.Is(unicode.Latin, r)
	}
	return b.String()
}

func foldLatin(r rune) string {
	var folded strings.Builder
	stripped := false
	for _, d := range norm.NFD.String(string(r)) {
		if unicode.Is(unicode.Mn, d) {
			stripped = true
			continue
		}
		folded.WriteRune(d)
	}
	if f := folded.String(); stripped && f != "" && isAlnum(f) {
		return f
	}

	// No canonical decomposition: ø, ß, æ, ł, ...
	if t := asciiAlnum(unidecode.Unidecode(string(r))); t != "" {
		return t
	}
	return string(r)
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func asciiAlnum(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}
