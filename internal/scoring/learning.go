package scoring

import (
	"strconv"
	"strings"

	"resume-engine/internal/extract"
	"resume-engine/internal/normalize"
	"resume-engine/internal/resume"
)

// Learning & adaptivity works on a raw 0–85 scale: 30 recency +
// 30 progression + 25 learning signals, minus up to 15 stagnation
// penalty, normalized to 0–100.
const (
	learningRecencyMax     = 30
	learningProgressionMax = 30
	learningSignalsMax     = 25
	learningPenaltyMax     = 15
	learningRawMax         = 85
)

// LearningAdaptivity scores how current the candidate's stack is and how
// clearly their history shows growth.
func LearningAdaptivity(r *resume.ParsedResume, entities extract.Entities) DimensionScore {
	var issues []string

	recency := recencyScore(entities)
	progression := progressionScore(r)
	signals := learningSignalsScore(r)
	penalty := stagnationPenalty(r, entities)

	if penalty >= 10 {
		issues = append(issues, IssueStagnant)
	}
	if signals == 0 && r.TotalExperienceYears() >= 3 {
		issues = append(issues, IssueNoLearningSignals)
	}

	raw := clampInt(recency+progression+signals-penalty, 0, learningRawMax)
	score := (raw*100 + learningRawMax/2) / learningRawMax

	return DimensionScore{
		Score: clampScore(score),
		Breakdown: map[string]int{
			"recency":     recency,
			"progression": progression,
			"signals":     signals,
			"penalty":     -penalty,
		},
		Issues: issues,
	}
}

// recencyScore ladders on the number of modern technologies in the
// extracted skill and tool set.
func recencyScore(entities extract.Entities) int {
	modern := normalize.CountModern(technicalUnion(entities.Skills, entities.Tools))
	switch {
	case modern >= 8:
		return 30
	case modern >= 5:
		return 24
	case modern >= 3:
		return 18
	case modern >= 1:
		return 10
	default:
		return 0
	}
}

// progressionScore detects promotions between consecutive roles
// (experience is ordered most recent first), promotion language in
// bullets, and quantitative scope growth from oldest to newest role.
func progressionScore(r *resume.ParsedResume) int {
	score := 0

	// Promotions: a newer role ranking above the next-older one. Same
	// company weighs double.
	promotionPoints := 0
	for i := 0; i+1 < len(r.Experience); i++ {
		newer := r.Experience[i]
		older := r.Experience[i+1]
		newerRank := normalize.SeniorityOf(newer.Title)
		olderRank := normalize.SeniorityOf(older.Title)
		if newerRank == normalize.SeniorityUnknown || olderRank == normalize.SeniorityUnknown {
			continue
		}
		if newerRank > olderRank {
			if sameCompany(newer.Company, older.Company) {
				promotionPoints += 2
			} else {
				promotionPoints++
			}
		}
	}
	score += clampInt(promotionPoints*9, 0, 18)

	// Promotion language in bullets.
	allText := strings.Join(r.AllBullets(), "\n")
	score += clampInt(CountProgressionPhrases(allText)*3, 0, 6)

	// Scope expansion: team size or dollar figures growing between the
	// oldest and newest role.
	if len(r.Experience) >= 2 {
		newest := strings.Join(r.Experience[0].Bullets, "\n")
		oldest := strings.Join(r.Experience[len(r.Experience)-1].Bullets, "\n")
		if maxTeamSize(newest) > maxTeamSize(oldest) {
			score += 3
		}
		if maxDollarFigure(newest) > maxDollarFigure(oldest) {
			score += 3
		}
	}

	return clampInt(score, 0, learningProgressionMax)
}

func sameCompany(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// maxTeamSize returns the largest "team of N" figure in the text, or 0.
func maxTeamSize(text string) int {
	max := 0
	for _, m := range teamSizePattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return max
}

// maxDollarFigure returns the largest dollar amount in the text,
// normalized for k/m/b suffixes, or 0.
func maxDollarFigure(text string) float64 {
	max := 0.0
	for _, m := range dollarPattern.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		switch strings.ToLower(m[2]) {
		case "k":
			value *= 1e3
		case "m":
			value *= 1e6
		case "b":
			value *= 1e9
		}
		if value > max {
			max = value
		}
	}
	return max
}

// learningSignalsScore rewards certifications, courses, and learning
// language inside bullets.
func learningSignalsScore(r *resume.ParsedResume) int {
	certs := clampInt(len(r.Certifications)*4, 0, 12)
	courses := clampInt(len(r.Courses)*2, 0, 6)
	mentions := clampInt(CountLearningPhrases(strings.Join(r.AllBullets(), "\n"))*2, 0, 7)
	return clampInt(certs+courses+mentions, 0, learningSignalsMax)
}

// stagnationPenalty applies the documented penalties: legacy-only stack
// (−10), 7+ years in a single role (−5), 5+ years of experience with no
// certifications or courses (−3). Capped at −15 total.
func stagnationPenalty(r *resume.ParsedResume, entities extract.Entities) int {
	penalty := 0

	tech := technicalUnion(entities.Skills, entities.Tools)
	modern := normalize.CountModern(tech)
	hasLegacy := false
	for _, item := range tech {
		if normalize.IsLegacyTech(item) {
			hasLegacy = true
			break
		}
	}
	if hasLegacy && modern == 0 {
		penalty += 10
	}

	for _, exp := range r.Experience {
		if exp.DurationMonths >= 84 {
			penalty += 5
			break
		}
	}

	if r.TotalExperienceYears() >= 5 && len(r.Certifications) == 0 && len(r.Courses) == 0 {
		penalty += 3
	}

	return clampInt(penalty, 0, learningPenaltyMax)
}
