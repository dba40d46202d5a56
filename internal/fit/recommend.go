package fit

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"resume-engine/internal/gaps"
)

// Decision-table thresholds.
const (
	notReadyGapCount   = 5
	notReadyFitScore   = 50
	notReadyResume     = 40
	notReadyMatch      = 30
	applyFitScore      = 75
	applyResume        = minQualityScore
	applyMaxGaps       = 2
	applyAltFitScore   = 65
	applyAltResume     = 75
	applyMatchFallback = 80
)

// recommend evaluates the decision table in priority order: NOT_READY
// conditions first, then APPLY, defaulting to OPTIMIZE_FIRST.
func recommend(fitScore, resumeScore int, analysis gaps.Analysis, flags Flags) (Recommendation, string) {
	gapsCount := analysis.Summary.CriticalGapCount
	match := analysis.Summary.OverallMatch

	switch {
	case gapsCount > notReadyGapCount:
		return RecommendNotReady, fmt.Sprintf(
			"%d critical gaps stand between this resume and the role%s. Close the biggest gaps before applying.",
			gapsCount, namedGaps(analysis))
	case fitScore < notReadyFitScore:
		return RecommendNotReady, fmt.Sprintf(
			"Fit score %d is below the readiness bar of %d%s. This role is currently out of range.",
			fitScore, notReadyFitScore, namedGaps(analysis))
	case flags.Underqualified && flags.CareerSwitch:
		return RecommendNotReady, fmt.Sprintf(
			"The role asks for %s-level experience in a different domain; this reads as a simultaneous level and industry jump (overall match %d%%).",
			analysis.Seniority.RequiredLevel, match)
	case resumeScore < notReadyResume:
		return RecommendNotReady, fmt.Sprintf(
			"Resume quality score %d is below %d; fix the resume itself before evaluating fit against roles.",
			resumeScore, notReadyResume)
	case match < notReadyMatch:
		return RecommendNotReady, fmt.Sprintf(
			"Overall requirement match is only %d%%%s. The overlap with this role is too thin.",
			match, namedGaps(analysis))
	}

	switch {
	case fitScore >= applyFitScore && resumeScore >= applyResume && gapsCount <= applyMaxGaps:
		return RecommendApply, fmt.Sprintf(
			"Fit score %d with a resume score of %d and only %d critical gap(s). Apply now.",
			fitScore, resumeScore, gapsCount)
	case fitScore >= applyAltFitScore && resumeScore >= applyAltResume:
		return RecommendApply, fmt.Sprintf(
			"A strong resume (score %d) compensates for a moderate fit score of %d. Apply, and address%s in the cover letter.",
			resumeScore, fitScore, orNothing(namedGaps(analysis), " any gaps"))
	case match >= applyMatchFallback && !flags.Underqualified && resumeScore >= applyResume:
		return RecommendApply, fmt.Sprintf(
			"Requirement match of %d%% at the right seniority level with a solid resume (score %d). Apply now.",
			match, resumeScore)
	}

	return RecommendOptimizeFirst, fmt.Sprintf(
		"Fit score %d and overall match %d%% are workable but not compelling%s. Tailor the resume to this role before applying.",
		fitScore, match, namedGaps(analysis))
}

// namedGaps names the top missing skills and tools so the reasoning is
// auditable, or returns "" when nothing is missing.
func namedGaps(analysis gaps.Analysis) string {
	var missing []string
	missing = append(missing, analysis.Skills.CriticalMissing...)
	missing = append(missing, analysis.Tools.CriticalMissing...)
	if len(missing) == 0 {
		return ""
	}
	if len(missing) > 3 {
		missing = missing[:3]
	}
	return " (missing: " + strings.Join(missing, ", ") + ")"
}

func orNothing(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// tailoringHints suggests concrete edits driven by the gap lists.
func tailoringHints(analysis gaps.Analysis) []string {
	var hints []string

	for _, tr := range analysis.Skills.Transferable {
		hints = append(hints, fmt.Sprintf(
			"You have %s experience; frame it explicitly as transferable to the required %s.", tr.Have, tr.Want))
	}
	if n := len(analysis.Skills.Matched); n > 0 {
		hints = append(hints, fmt.Sprintf(
			"Move the %d matched skill(s) such as %s into your top skills and earliest bullets.",
			n, strings.Join(firstN(analysis.Skills.Matched, 3), ", ")))
	}
	if len(analysis.Skills.NiceToHaveMissing) > 0 {
		hints = append(hints, fmt.Sprintf(
			"If you have any exposure to %s, mention it; it is listed as nice to have.",
			strings.Join(firstN(analysis.Skills.NiceToHaveMissing, 3), ", ")))
	}
	for _, typ := range firstN(analysis.Experience.MissingTypes, 2) {
		hints = append(hints, fmt.Sprintf(
			"Surface any %s experience, even from side projects; the role asks for it.", typ))
	}
	if analysis.Industry.MatchPercentage < 100 && len(analysis.Industry.MissingKeywords) > 0 {
		hints = append(hints, fmt.Sprintf(
			"Highlight domain exposure relevant to %s wherever it exists in your history.",
			strings.Join(firstN(analysis.Industry.MissingKeywords, 2), ", ")))
	}

	if len(hints) > 5 {
		hints = hints[:5]
	}
	return hints
}

const maxImprovements = 6

// improvements builds ranked actions from the gap lists: candidates
// from each category, deduplicated by id, sorted by estimated gain,
// capped, then numbered.
func improvements(analysis gaps.Analysis) []Improvement {
	candidates := make([]Improvement, 0, 16)

	for _, skill := range analysis.Skills.CriticalMissing {
		gain := 8
		if _, ok := transferableFor(analysis, skill); ok {
			// Adjacent experience makes the gap cheaper to close.
			gain = 5
		}
		candidates = append(candidates, Improvement{
			ID:            "skill-" + slugify(skill),
			Category:      "skills",
			Action:        fmt.Sprintf("Gain demonstrable %s experience, or surface existing exposure", skill),
			EstimatedGain: gain,
		})
	}
	for _, tool := range analysis.Tools.CriticalMissing {
		candidates = append(candidates, Improvement{
			ID:            "tool-" + slugify(tool),
			Category:      "tools",
			Action:        fmt.Sprintf("Add hands-on %s usage to a current project", tool),
			EstimatedGain: 6,
		})
	}
	for _, typ := range analysis.Experience.MissingTypes {
		candidates = append(candidates, Improvement{
			ID:            "experience-" + slugify(typ),
			Category:      "experience",
			Action:        fmt.Sprintf("Build evidence of %s work and describe it in a bullet", typ),
			EstimatedGain: 5,
		})
	}
	if analysis.Seniority.Alignment == gaps.AlignmentUnder {
		candidates = append(candidates, Improvement{
			ID:            "seniority-gap",
			Category:      "seniority",
			Action:        fmt.Sprintf("Close an estimated %.1f-year seniority gap by taking on scope at your current level", analysis.Seniority.YearGap),
			EstimatedGain: 7,
		})
	}

	deduped := dedupeImprovements(candidates)
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].EstimatedGain > deduped[j].EstimatedGain
	})
	if len(deduped) > maxImprovements {
		deduped = deduped[:maxImprovements]
	}
	for i := range deduped {
		deduped[i].Order = i + 1
	}
	return deduped
}

func transferableFor(analysis gaps.Analysis, skill string) (string, bool) {
	for _, tr := range analysis.Skills.Transferable {
		if tr.Want == skill {
			return tr.Have, true
		}
	}
	return "", false
}

func dedupeImprovements(items []Improvement) []Improvement {
	seen := make(map[string]bool, len(items))
	out := make([]Improvement, 0, len(items))
	for _, item := range items {
		if item.ID == "" || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func slugify(input string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "item"
	}
	return out
}
