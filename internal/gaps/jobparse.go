package gaps

import (
	"regexp"
	"strconv"
	"strings"

	"resume-engine/internal/apperrors"
	"resume-engine/internal/normalize"
)

var yearsPattern = regexp.MustCompile(`(\d{1,2})\s*(?:-|to)?\s*(\d{1,2})?\+?\s*(?:\+\s*)?years?`)

// Headers that open a preferred/nice-to-have block. Everything before
// the first such header counts as required.
var preferredHeaders = []string{
	"nice to have", "nice-to-have", "preferred", "bonus", "a plus",
	"plus:", "good to have", "desirable",
}

// ParseJobDescription derives structured requirements from free text.
// It is a heuristic convenience; callers with structured requirements
// should pass those directly to Detect.
func ParseJobDescription(text string) (JobRequirements, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return JobRequirements{}, apperrors.New(apperrors.CodeMissingJobDescription)
	}

	requiredText, preferredText := splitPreferred(trimmed)

	req := JobRequirements{
		Title:           firstLine(trimmed),
		RequiredSkills:  normalize.DetectSkills(requiredText),
		RequiredTools:   normalize.DetectTools(requiredText),
		ExperienceTypes: DetectExperienceTypes(trimmed),
		DomainKeywords:  normalize.DetectIndustries(trimmed),
	}
	if preferredText != "" {
		req.PreferredSkills = subtract(normalize.DetectSkills(preferredText), req.RequiredSkills)
		req.PreferredTools = subtract(normalize.DetectTools(preferredText), req.RequiredTools)
	}

	req.Seniority = collapseTier(normalize.SeniorityOf(req.Title))
	if req.Seniority == TierMid && !mentionsMidLevel(req.Title) {
		// SeniorityOf defaults unknown titles to mid; only keep an
		// explicit cue as an expectation.
		req.Seniority = ""
	}

	req.MinYears, req.MaxYears = parseYears(trimmed)

	if req.IsEmpty() {
		return JobRequirements{}, apperrors.New(apperrors.CodeJobParsingFailed)
	}
	return req, nil
}

func splitPreferred(text string) (required, preferred string) {
	lower := strings.ToLower(text)
	cut := -1
	for _, h := range preferredHeaders {
		if idx := strings.Index(lower, h); idx >= 0 && (cut < 0 || idx < cut) {
			cut = idx
		}
	}
	if cut < 0 {
		return text, ""
	}
	return text[:cut], text[cut:]
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}
	return strings.TrimSpace(text)
}

func mentionsMidLevel(title string) bool {
	lower := strings.ToLower(title)
	return strings.Contains(lower, "mid-level") || strings.Contains(lower, "mid level") ||
		strings.Contains(lower, "intermediate")
}

func parseYears(text string) (min, max int) {
	m := yearsPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, 0
	}
	min, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		max, _ = strconv.Atoi(m[2])
		if max < min {
			min, max = max, min
		}
	}
	return min, max
}

func subtract(items, exclude []string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[strings.ToLower(e)] = true
	}
	var out []string
	for _, item := range items {
		if !skip[strings.ToLower(item)] {
			out = append(out, item)
		}
	}
	return out
}
