package narrative

import "strings"

// ImagingEntry is one imaging visit as captured by a review-of-findings block.
type ImagingEntry struct {
	Type      string   `json:"type"`
	BodyParts []string `json:"parts"`
	Facility  string   `json:"facility"`
	City      string   `json:"city"`
	Date      string   `json:"date"`
}

// IsEmpty reports whether the entry carries nothing worth narrating.
func (e ImagingEntry) IsEmpty() bool {
	return clean(e.Type) == "" && len(cleanParts(e.BodyParts)) == 0 &&
		clean(e.Facility) == "" && clean(e.City) == ""
}

// phrase describes the entry: "<noun> of the <parts>", "<noun>" or
// "imaging of the <parts>".
func (e ImagingEntry) phrase() string {
	t := clean(e.Type)
	parts := lowerAll(cleanParts(e.BodyParts))
	switch {
	case t != "" && len(parts) > 0:
		return ImagingNoun(t) + " of the " + JoinHuman(parts, false)
	case t != "":
		return ImagingNoun(t)
	case len(parts) > 0:
		return "imaging of the " + JoinHuman(parts, false)
	}
	return ""
}

// ImagingGroup gathers the entries performed at one (facility, city) pair.
type ImagingGroup struct {
	Facility string
	City     string
	Entries  []ImagingEntry
}

// GroupImaging drops empty entries and groups the rest by their cleaned
// (facility, city) in first-seen order, keeping at most limit groups. The
// key is case-sensitive: "Hoag Radiology" and "HOAG RADIOLOGY" are two
// groups.
// A limit of zero or less keeps every group.
func GroupImaging(entries []ImagingEntry, limit int) []ImagingGroup {
	var groups []ImagingGroup
	index := make(map[[2]string]int)

	for _, e := range entries {
		if e.IsEmpty() {
			continue
		}
		fac, city := clean(e.Facility), clean(e.City)
		key := [2]string{fac, city}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ImagingGroup{Facility: fac, City: city})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

// Detail joins the phrases of every entry in the group.
func (g ImagingGroup) Detail() string {
	phrases := make([]string, 0, len(g.Entries))
	for _, e := range g.Entries {
		if p := e.phrase(); p != "" {
			phrases = append(phrases, p)
		}
	}
	return JoinHuman(phrases, false)
}

// DateClause is " on <date>" when the group's entries agree on exactly one
// date, and "" otherwise.
func (g ImagingGroup) DateClause() string {
	var dates []string
	for _, e := range g.Entries {
		if d := strings.TrimSpace(e.Date); d != "" {
			dates = append(dates, d)
		}
	}
	distinct := DedupePreserveOrder(dates)
	if len(distinct) != 1 {
		return ""
	}
	return " on " + distinct[0]
}

// Place is "<facility> in <city>", either part alone, or "".
func (g ImagingGroup) Place() string {
	fac, city := clean(g.Facility), clean(g.City)
	switch {
	case fac != "" && city != "":
		return fac + " in " + city
	case fac != "":
		return fac
	default:
		return city
	}
}

// ImagingBlock is a structured history-of-injury imaging selection: several
// imaging types over several body parts.
type ImagingBlock struct {
	Types []string `json:"types"`
	Parts []string `json:"parts"`
}

// ImagingSentence summarizes the history imaging blocks in one sentence.
// It returns "" unless imaging was performed.
func ImagingSentence(done string, blocks []ImagingBlock) string {
	if strings.TrimSpace(done) != ImagingPerformed {
		return ""
	}

	var phrases []string
	for _, b := range blocks {
		var nouns []string
		for _, t := range b.Types {
			if n := ImagingNoun(clean(t)); n != "" {
				nouns = append(nouns, n)
			}
		}
		parts := lowerAll(cleanParts(b.Parts))
		if len(nouns) == 0 && len(parts) == 0 {
			continue
		}

		typeText := "imaging"
		if len(nouns) > 0 {
			typeText = JoinHuman(nouns, false)
		}
		if len(parts) > 0 {
			phrases = append(phrases, typeText+" of the "+JoinHuman(parts, false))
		} else {
			phrases = append(phrases, typeText)
		}
	}
	if len(phrases) == 0 {
		phrases = []string{"imaging studies"}
	}

	return EnsurePeriod("Diagnostic imaging was performed, including " + JoinHuman(phrases, false))
}

func cleanParts(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := clean(p); c != "" {
			out = append(out, c)
		}
	}
	return out
}
