// Package matching implements the skill-matching scorer: pure functions that
// compare a candidate's normalized skill set against live job and internship
// listings. Scores are flat distinct-skill-match counts; no weighting is
// applied (match_settings weights are reserved configuration).
package matching

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ParseSkills parses the candidates.skills column, a JSON-encoded array of
// skill names. Anything that is not a JSON array (including malformed JSON)
// degrades to nil instead of erroring.
func ParseSkills(raw string) []string {
	return parseStringArray(raw)
}

// ParseRequirements parses the jobs.requirements column with the same
// degrade-to-empty behavior as ParseSkills.
func ParseRequirements(raw string) []string {
	return parseStringArray(raw)
}

func parseStringArray(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	// gjson.Parse is lenient with truncated input, so invalid JSON has to be
	// rejected up front.
	if !gjson.Valid(raw) {
		return nil
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil
	}
	var out []string
	for _, item := range parsed.Array() {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Normalize lowercases and trims each entry, dropping empties and duplicates.
// First-seen order is preserved so matched-skill output stays deterministic.
func Normalize(values []string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
