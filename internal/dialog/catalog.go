package dialog

import "strings"

// Known location names. Matching is a case-insensitive substring check, so
// entries here are the canonical display forms used in rewrites.
var locations = []string{
	"Marine Parade",
	"Punggol",
	"Bishan",
	"Jurong",
	"Kovan",
}

// levelGroups declares which subjects run at which levels. Adding a subject
// or a level is a data change here, not a new conditional branch.
var levelGroups = []struct {
	levels   []string
	subjects []string
}{
	{[]string{"P2"}, []string{"Math", "English", "Chinese"}},
	{[]string{"P3", "P4", "P5", "P6"}, []string{"Math", "Science", "English", "Chinese"}},
	{[]string{"S1", "S2"}, []string{"Math", "Science", "English", "Chinese"}},
	{[]string{"S3", "S4"}, []string{"EMath", "AMath", "Chemistry", "Physics", "Biology", "English", "Chinese"}},
	{[]string{"J1", "J2"}, []string{"Math", "Chemistry", "Physics", "Biology", "Economics"}},
}

// subjectPhrases is the flattened level × subject catalog, e.g. "J1 Math".
var subjectPhrases = buildSubjectPhrases()

func buildSubjectPhrases() []string {
	var phrases []string
	for _, g := range levelGroups {
		for _, lvl := range g.levels {
			for _, subj := range g.subjects {
				phrases = append(phrases, lvl+" "+subj)
			}
		}
	}
	return phrases
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// matchLocation returns the canonical name of the first known location found
// in s, via case-insensitive substring search.
func matchLocation(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, loc := range locations {
		if strings.Contains(lower, strings.ToLower(loc)) {
			return loc, true
		}
	}
	return "", false
}

// matchSubjectPhrase returns the canonical form of the first known
// level+subject phrase found in s.
func matchSubjectPhrase(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, phrase := range subjectPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return phrase, true
		}
	}
	return "", false
}
