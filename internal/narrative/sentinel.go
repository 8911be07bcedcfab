package narrative

import "strings"

// Provenance markers kept in stored text and removed before printing.
const (
	TagMOI  = "[AUTO:MOI]"
	TagDx   = "[AUTO:DX]"
	TagPlan = "[AUTO:PLAN]"
)

var sentinelTags = []string{TagMOI, TagDx, TagPlan}

// StripSentinels removes AUTO markers from text bound for output: a trailing
// line equal to a marker and a leading marker token, compared
// case-insensitively. It repeats until nothing changes, so applying it twice
// gives the same result as applying it once.
func StripSentinels(text string) string {
	out := strings.TrimSpace(text)
	for {
		next := stripOnce(out)
		if next == out {
			return out
		}
		out = next
	}
}

func stripOnce(text string) string {
	if text == "" {
		return ""
	}

	i := strings.LastIndex(text, "\n")
	if isSentinel(text[i+1:]) {
		return strings.TrimSpace(text[:i+1])
	}

	for _, tag := range sentinelTags {
		if len(text) >= len(tag) && strings.EqualFold(text[:len(tag)], tag) {
			return strings.TrimSpace(text[len(tag):])
		}
	}
	return text
}

func isSentinel(line string) bool {
	l := strings.TrimSpace(line)
	for _, tag := range sentinelTags {
		if strings.EqualFold(l, tag) {
			return true
		}
	}
	return false
}

// HasSentinel reports whether text carries tag as its trailing line or
// leading token.
func HasSentinel(text, tag string) bool {
	t := strings.TrimSpace(text)
	if len(t) >= len(tag) && strings.EqualFold(t[:len(tag)], tag) {
		return true
	}
	last := t
	if i := strings.LastIndex(t, "\n"); i >= 0 {
		last = t[i+1:]
	}
	return strings.EqualFold(strings.TrimSpace(last), tag)
}
