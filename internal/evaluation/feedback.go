package evaluation

import "resume-engine/internal/scoring"

// strengthMessages is keyed by dimension. A dimension scoring 75 or
// higher contributes its message as a strength.
var strengthMessages = map[scoring.Dimension]string{
	scoring.DimensionSkillCapital:       "Broad, well-demonstrated skill set across multiple technical categories.",
	scoring.DimensionExecutionImpact:    "Experience bullets show measurable results and clear ownership.",
	scoring.DimensionLearningAdaptivity: "Consistent growth trajectory with recent technologies and upskilling.",
	scoring.DimensionSignalQuality:      "Clean, well-structured document that is easy to scan.",
}

// criticalGapMessages translates weakness codes into reader-facing text.
var criticalGapMessages = map[string]string{
	scoring.IssueNoExperienceBullets:   "Work history has no bullet points describing what was actually done.",
	scoring.IssueNoMetrics:             "Almost no bullets quantify results; impact is invisible to a reader.",
	scoring.IssueWeakVerbs:             "Bullets lean on passive phrases instead of strong action verbs.",
	scoring.IssueNoSkillsListed:        "No identifiable technical skills anywhere in the document.",
	scoring.IssueSkillsNotDemonstrated: "Listed skills rarely appear in experience bullets, which reads as keyword stuffing.",
	scoring.IssueNarrowSkillSet:        "Skills cluster in a single category, limiting the roles this resume fits.",
	scoring.IssueStagnant:              "No visible progression or new technology adoption across roles.",
	scoring.IssueNoLearningSignals:     "No certifications, courses, or other evidence of ongoing learning.",
	scoring.IssuePoorFormatting:        "Formatting problems make the document hard to parse and hard to read.",
	scoring.IssueMissingSections:       "Standard sections such as experience, skills, or education are missing.",
	scoring.IssueGenericPhrasing:       "Generic phrasing such as \"responsible for\" dilutes every accomplishment.",
	scoring.IssueTooShort:              "The document is too short to evaluate meaningfully.",
}

// criticalGapOrder fixes which weaknesses surface first when more than
// three are present.
var criticalGapOrder = []string{
	scoring.IssueNoExperienceBullets,
	scoring.IssueNoSkillsListed,
	scoring.IssueTooShort,
	scoring.IssueMissingSections,
	scoring.IssueNoMetrics,
	scoring.IssueSkillsNotDemonstrated,
	scoring.IssuePoorFormatting,
	scoring.IssueWeakVerbs,
	scoring.IssueGenericPhrasing,
	scoring.IssueStagnant,
	scoring.IssueNoLearningSignals,
	scoring.IssueNarrowSkillSet,
}

type quickWinRule struct {
	trigger string
	win     QuickWin
}

// quickWinRules are ordered by expected payoff. The first four whose
// trigger weakness is present make the cut.
var quickWinRules = []quickWinRule{
	{scoring.IssueNoMetrics, QuickWin{
		Action:        "Add a number to your top three bullets, such as percentages, dollar amounts, or user counts",
		EstimatedGain: 8,
		Effort:        "low",
	}},
	{scoring.IssueWeakVerbs, QuickWin{
		Action:        "Rewrite passive bullets to start with a strong verb like built, led, or reduced",
		EstimatedGain: 5,
		Effort:        "low",
	}},
	{scoring.IssueGenericPhrasing, QuickWin{
		Action:        "Replace phrases like \"responsible for\" with what you specifically delivered",
		EstimatedGain: 4,
		Effort:        "low",
	}},
	{scoring.IssueSkillsNotDemonstrated, QuickWin{
		Action:        "Mention your listed skills inside experience bullets so they read as used, not claimed",
		EstimatedGain: 6,
		Effort:        "medium",
	}},
	{scoring.IssueMissingSections, QuickWin{
		Action:        "Add the missing standard sections, at minimum experience, skills, and education",
		EstimatedGain: 6,
		Effort:        "medium",
	}},
	{scoring.IssueNoLearningSignals, QuickWin{
		Action:        "List recent certifications or courses, or start one relevant to your target role",
		EstimatedGain: 4,
		Effort:        "medium",
	}},
	{scoring.IssuePoorFormatting, QuickWin{
		Action:        "Rebuild the document from a plain single-column template to fix parsing artifacts",
		EstimatedGain: 7,
		Effort:        "medium",
	}},
	{scoring.IssueTooShort, QuickWin{
		Action:        "Expand each role with two to four bullets describing concrete outcomes",
		EstimatedGain: 9,
		Effort:        "high",
	}},
}

// recommendationTable contributes longer-form advice per dimension when
// that dimension scores below 60.
var recommendationTable = map[scoring.Dimension][]string{
	scoring.DimensionSkillCapital: {
		"Broaden your skill section beyond one category; even one adjacent area such as cloud or testing widens your match rate.",
		"Back skills with evidence: a certification, a project, or a bullet that shows the skill in use.",
	},
	scoring.DimensionExecutionImpact: {
		"Reframe bullets around outcomes: what changed, by how much, and for whom.",
		"Lead every bullet with an action verb and keep it to one accomplishment per line.",
	},
	scoring.DimensionLearningAdaptivity: {
		"Show a trajectory: promotions, growing team sizes, or newer technologies adopted role over role.",
		"Add recent learning, such as a current certification or course, to counter a flat history.",
	},
	scoring.DimensionSignalQuality: {
		"Use conventional section headers and a consistent bullet style throughout.",
		"Keep the document between one and two pages of focused, scannable content.",
	},
}

const (
	maxStrengths       = 4
	maxCriticalGaps    = 3
	maxQuickWins       = 4
	maxRecommendations = 8
)

func buildFeedback(dims map[scoring.Dimension]scoring.DimensionScore, weaknesses, genericGaps []string) Feedback {
	has := func(code string) bool {
		for _, w := range weaknesses {
			if w == code {
				return true
			}
		}
		for _, g := range genericGaps {
			if g == code {
				return true
			}
		}
		return false
	}

	order := []scoring.Dimension{
		scoring.DimensionSkillCapital,
		scoring.DimensionExecutionImpact,
		scoring.DimensionLearningAdaptivity,
		scoring.DimensionSignalQuality,
	}

	var strengths []string
	for _, d := range order {
		if dims[d].Score >= 75 && len(strengths) < maxStrengths {
			strengths = append(strengths, strengthMessages[d])
		}
	}
	if len(strengths) == 0 {
		// Always give the reader something to keep: name the best dimension.
		best := order[0]
		for _, d := range order[1:] {
			if dims[d].Score > dims[best].Score {
				best = d
			}
		}
		strengths = append(strengths, "Relative strength: "+best.Label()+".")
	}

	var gaps []string
	for _, code := range criticalGapOrder {
		if has(code) && len(gaps) < maxCriticalGaps {
			gaps = append(gaps, criticalGapMessages[code])
		}
	}

	var wins []QuickWin
	for _, rule := range quickWinRules {
		if has(rule.trigger) && len(wins) < maxQuickWins {
			wins = append(wins, rule.win)
		}
	}

	var recs []string
	for _, d := range order {
		if dims[d].Score >= 60 {
			continue
		}
		for _, r := range recommendationTable[d] {
			if len(recs) < maxRecommendations {
				recs = append(recs, r)
			}
		}
	}

	return Feedback{
		Strengths:       strengths,
		CriticalGaps:    gaps,
		QuickWins:       wins,
		Recommendations: recs,
	}
}
