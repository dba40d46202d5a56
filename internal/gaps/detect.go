package gaps

import (
	"sort"
	"strings"

	"resume-engine/internal/extract"
	"resume-engine/internal/normalize"
	"resume-engine/internal/resume"
)

// Summary weights. They sum to 1.0.
const (
	summaryWeightSkills     = 0.40
	summaryWeightTools      = 0.20
	summaryWeightExperience = 0.20
	summaryWeightSeniority  = 0.10
	summaryWeightIndustry   = 0.10
)

// Seniority contributes a flat figure to the overall match: full when
// aligned, reduced otherwise.
const (
	seniorityMatchAligned    = 100
	seniorityMatchMisaligned = 60
)

const lowIndustryMatch = 50

// Detect runs the five independent sub-detectors and the summary.
func Detect(r *resume.ParsedResume, entities extract.Entities, req JobRequirements) Analysis {
	a := Analysis{
		Skills:     detectSkillGap(entities, req),
		Tools:      detectToolGap(entities, req),
		Experience: detectExperienceGap(r, req),
		Seniority:  detectSeniorityGap(r, req),
		Industry:   detectIndustryGap(entities, req),
	}
	a.Summary = summarize(a)
	return a
}

func detectSkillGap(entities extract.Entities, req JobRequirements) SkillGap {
	have := canonicalSet(entities.Skills)
	matched, critical := splitMatches(have, req.RequiredSkills)
	_, niceToHave := splitMatches(have, req.PreferredSkills)

	var transfers []Transfer
	for _, want := range critical {
		if sub, ok := normalize.TransferSubstitute(entities.Skills, want); ok {
			transfers = append(transfers, Transfer{Have: sub, Want: want})
		}
	}

	return SkillGap{
		Matched:           matched,
		CriticalMissing:   critical,
		NiceToHaveMissing: niceToHave,
		Transferable:      transfers,
		MatchPercentage:   matchPercentage(len(matched), len(matched)+len(critical)),
	}
}

func detectToolGap(entities extract.Entities, req JobRequirements) ToolGap {
	have := canonicalSet(entities.Tools)
	// Tools named only in the skill list still count as present.
	for s := range canonicalSet(entities.Skills) {
		have[s] = true
	}
	matched, critical := splitMatches(have, req.RequiredTools)
	_, niceToHave := splitMatches(have, req.PreferredTools)

	return ToolGap{
		Matched:           matched,
		CriticalMissing:   critical,
		NiceToHaveMissing: niceToHave,
		MatchPercentage:   matchPercentage(len(matched), len(matched)+len(critical)),
	}
}

func detectIndustryGap(entities extract.Entities, req JobRequirements) IndustryGap {
	if len(req.DomainKeywords) == 0 {
		return IndustryGap{MatchPercentage: 100}
	}

	var matched, missing []string
	for _, kw := range req.DomainKeywords {
		if industryMatches(entities.Industries, kw) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return IndustryGap{
		MatchedKeywords: matched,
		MissingKeywords: missing,
		MatchPercentage: matchPercentage(len(matched), len(req.DomainKeywords)),
	}
}

// industryMatches uses substring containment in either direction so
// "fintech" matches an inferred "financial technology" style label and
// vice versa.
func industryMatches(industries []string, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	for _, ind := range industries {
		lower := strings.ToLower(ind)
		if strings.Contains(lower, kw) || strings.Contains(kw, lower) {
			return true
		}
	}
	return false
}

func summarize(a Analysis) Summary {
	critical := len(a.Skills.CriticalMissing) + len(a.Tools.CriticalMissing)
	if a.Seniority.Alignment == AlignmentUnder {
		critical++
	}
	if a.Industry.MatchPercentage < lowIndustryMatch {
		critical += len(a.Industry.MissingKeywords)
	}

	var affected []string
	if len(a.Skills.CriticalMissing) > 0 {
		affected = append(affected, "skills")
	}
	if len(a.Tools.CriticalMissing) > 0 {
		affected = append(affected, "tools")
	}
	if len(a.Experience.MissingTypes) > 0 {
		affected = append(affected, "experience")
	}
	if a.Seniority.Alignment == AlignmentUnder {
		affected = append(affected, "seniority")
	}
	if a.Industry.MatchPercentage < lowIndustryMatch {
		affected = append(affected, "industry")
	}

	seniorityMatch := seniorityMatchMisaligned
	if a.Seniority.Alignment == AlignmentAligned {
		seniorityMatch = seniorityMatchAligned
	}

	overall := summaryWeightSkills*float64(a.Skills.MatchPercentage) +
		summaryWeightTools*float64(a.Tools.MatchPercentage) +
		summaryWeightExperience*float64(a.Experience.CoverageScore) +
		summaryWeightSeniority*float64(seniorityMatch) +
		summaryWeightIndustry*float64(a.Industry.MatchPercentage)

	return Summary{
		CriticalGapCount:   critical,
		AffectedCategories: affected,
		OverallMatch:       clampPct(int(overall + 0.5)),
	}
}

// canonicalSet lower-cases canonical forms for order-insensitive lookup.
func canonicalSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(normalize.CanonicalSkill(item))] = true
	}
	return set
}

// splitMatches partitions requirements into present and missing. Both
// outputs are sorted canonical names.
func splitMatches(have map[string]bool, required []string) (matched, missing []string) {
	seen := map[string]bool{}
	for _, raw := range required {
		canonical := normalize.CanonicalSkill(raw)
		key := strings.ToLower(canonical)
		if seen[key] {
			continue
		}
		seen[key] = true
		if have[key] {
			matched = append(matched, canonical)
		} else {
			missing = append(missing, canonical)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

func matchPercentage(matched, required int) int {
	if required == 0 {
		return 100
	}
	return clampPct(matched * 100 / required)
}

func clampPct(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
