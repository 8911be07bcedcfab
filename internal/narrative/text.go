// Package narrative turns structured clinical selections into the prose used
// in chiropractic exam notes. Every builder is a pure function of its input.
package narrative

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// JoinHuman joins items for use inside a sentence: "A", "A and B",
// "A, B, and C". Blank items are ignored.
// When lowerFirst is set, the first rune of the first item is lower-cased.
func JoinHuman(items []string, lowerFirst bool) string {
	cleaned := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return ""
	}
	if lowerFirst {
		cleaned[0] = lowerFirstRune(cleaned[0])
	}

	switch len(cleaned) {
	case 1:
		return cleaned[0]
	case 2:
		return cleaned[0] + " and " + cleaned[1]
	default:
		return strings.Join(cleaned[:len(cleaned)-1], ", ") + ", and " + cleaned[len(cleaned)-1]
	}
}

// DedupePreserveOrder trims every item and drops case-insensitive duplicates,
// keeping the casing and position of the first occurrence.
func DedupePreserveOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		t := strings.TrimSpace(it)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// EnsurePeriod terminates a sentence with "." unless it already ends in
// sentence punctuation. Blank input yields "".
func EnsurePeriod(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

// PronounSet holds the subject, object and possessive forms used in a sentence.
type PronounSet struct {
	Subj string
	Obj  string
	Poss string
}

// Pronouns picks a pronoun set from a free-form sex value by prefix.
func Pronouns(sex string) PronounSet {
	s := strings.ToLower(strings.TrimSpace(sex))
	switch {
	case strings.HasPrefix(s, "m"):
		return PronounSet{Subj: "he", Obj: "him", Poss: "his"}
	case strings.HasPrefix(s, "f"):
		return PronounSet{Subj: "she", Obj: "her", Poss: "her"}
	default:
		return PronounSet{Subj: "they", Obj: "them", Poss: "their"}
	}
}

// Reports returns "<first> reports", falling back to "The patient reports".
func Reports(first string) string {
	return leadIn(first, "reports")
}

// States returns "<first> states", falling back to "The patient states".
func States(first string) string {
	return leadIn(first, "states")
}

func leadIn(first, verb string) string {
	if f := strings.TrimSpace(first); f != "" {
		return f + " " + verb
	}
	return "The patient " + verb
}

// IsPlaceholder reports whether a selector value means "nothing selected".
func IsPlaceholder(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "(none)", "none", "n/a", "(select)", "(unknown)":
		return true
	}
	return false
}

// clean trims a value and maps placeholders to "".
func clean(s string) string {
	if IsPlaceholder(s) {
		return ""
	}
	return strings.TrimSpace(s)
}

func lowerFirstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func lowerAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			out = append(out, strings.ToLower(t))
		}
	}
	return out
}

// joinSentences space-joins the non-blank sentences.
func joinSentences(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
