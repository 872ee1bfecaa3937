package matching

import (
	"strings"
)

// ScoreJob counts how many distinct normalized skills appear in the job's
// searchable text: case-insensitive substring of the title or description,
// or an exact match against one of the parsed requirements. A skill counts
// once no matter how many fields it hits. requirementsRaw is the raw JSON
// column value.
func ScoreJob(skills []string, title, description, requirementsRaw string) (int, []string) {
	if len(skills) == 0 {
		return 0, nil
	}

	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	reqs := Normalize(ParseRequirements(requirementsRaw))
	reqSet := make(map[string]bool, len(reqs))
	for _, r := range reqs {
		reqSet[r] = true
	}

	var matched []string
	for _, skill := range skills {
		if strings.Contains(titleLower, skill) || strings.Contains(descLower, skill) || reqSet[skill] {
			matched = append(matched, skill)
		}
	}
	return len(matched), matched
}

// ScoreInternship counts distinct skills appearing as a case-insensitive
// substring of the internship title. The internship projection used for
// matching carries no requirements, so the title is the only searchable
// field.
func ScoreInternship(skills []string, title string) (int, []string) {
	if len(skills) == 0 {
		return 0, nil
	}

	titleLower := strings.ToLower(title)

	var matched []string
	for _, skill := range skills {
		if strings.Contains(titleLower, skill) {
			matched = append(matched, skill)
		}
	}
	return len(matched), matched
}
