package scoring

import (
	"resume-engine/internal/extract"
	"resume-engine/internal/resume"
)

// Skill-capital sub-score ceilings: 30 presence + 40 diversity + 30 depth.
const (
	skillPresenceMax  = 30
	skillDiversityMax = 40
	skillDepthMax     = 30
)

// SkillCapital scores the breadth and depth of the candidate's technical
// inventory.
func SkillCapital(r *resume.ParsedResume, entities extract.Entities) DimensionScore {
	var issues []string

	presence := presenceScore(r, entities)
	diversity := diversityScore(entities)
	depth, depthIssues := depthScore(r, entities)
	issues = append(issues, depthIssues...)

	if len(r.Skills) == 0 {
		issues = append(issues, IssueNoSkillsListed)
	}

	covered := len(normalizeCovered(entities))
	if covered > 0 && covered*100 < normalizeCategoryTotal()*15 {
		issues = append(issues, IssueNarrowSkillSet)
	}

	return DimensionScore{
		Score: clampScore(presence + diversity + depth),
		Breakdown: map[string]int{
			"presence":  presence,
			"diversity": diversity,
			"depth":     depth,
		},
		Issues: issues,
	}
}

// presenceScore ladders on the count of distinct technical items, with a
// small bonus for an explicit skills section.
func presenceScore(r *resume.ParsedResume, entities extract.Entities) int {
	n := entities.TechnicalItemCount()
	var score int
	switch {
	case n >= 20:
		score = 30
	case n >= 15:
		score = 25
	case n >= 10:
		score = 19
	case n >= 5:
		score = 12
	case n >= 3:
		score = 8
	default:
		score = 5
	}
	if r.HasSection(resume.SectionSkills) {
		score += 2
	}
	return clampInt(score, 0, skillPresenceMax)
}

// diversityScore ladders on the fraction of skill categories covered,
// with a bonus for any soft-skill presence.
func diversityScore(entities extract.Entities) int {
	covered := len(normalizeCovered(entities))
	total := normalizeCategoryTotal()
	pct := covered * 100 / total

	var score int
	switch {
	case pct >= 50:
		score = 40
	case pct >= 40:
		score = 33
	case pct >= 30:
		score = 27
	case pct >= 25:
		score = 22
	case pct >= 15:
		score = 16
	default:
		score = 12
	}
	if hasSoftSkill(entities.Skills) {
		score += 3
	}
	return clampInt(score, 0, skillDiversityMax)
}

// depthScore combines certifications, projects, tenure, and the fraction
// of skills actually demonstrated inside experience bullets.
func depthScore(r *resume.ParsedResume, entities extract.Entities) (int, []string) {
	var issues []string

	certs := clampInt(len(r.Certifications)*3, 0, 8)
	projects := clampInt(len(r.Projects)*3, 0, 8)
	years := clampInt(int(r.TotalExperienceYears()), 0, 7)

	context := 0
	if len(entities.Skills) > 0 {
		mentioned, _ := extract.MentionedInBullets(r, entities.Skills)
		frac := float64(mentioned) / float64(len(entities.Skills))
		context = int(frac*7 + 0.5)
		if frac < 0.3 && len(entities.Skills) >= 5 {
			issues = append(issues, IssueSkillsNotDemonstrated)
		}
	}

	return clampInt(certs+projects+years+context, 0, skillDepthMax), issues
}
