// Package scoring implements the four independent dimension scorers:
// skill capital, execution impact, learning & adaptivity, and signal
// quality. Every scorer is a pure function over the parsed resume and its
// extracted entities; scorers never observe each other's output.
package scoring

// Dimension names one of the four sub-scores.
type Dimension string

const (
	DimensionSkillCapital       Dimension = "skill_capital"
	DimensionExecutionImpact    Dimension = "execution_impact"
	DimensionLearningAdaptivity Dimension = "learning_adaptivity"
	DimensionSignalQuality      Dimension = "signal_quality"
)

// Label returns a human-readable name for feedback text.
func (d Dimension) Label() string {
	switch d {
	case DimensionSkillCapital:
		return "skill capital"
	case DimensionExecutionImpact:
		return "execution impact"
	case DimensionLearningAdaptivity:
		return "learning & adaptivity"
	case DimensionSignalQuality:
		return "signal quality"
	default:
		return string(d)
	}
}

// DimensionScore is one dimension's result: a 0–100 score, the named
// sub-metric contributions behind it, and any issue codes raised.
type DimensionScore struct {
	Score     int            `json:"score"`
	Breakdown map[string]int `json:"breakdown,omitempty"`
	Issues    []string       `json:"issues,omitempty"`
}

// Issue codes raised by the scorers. The generic evaluator folds these
// into weakness codes and flags.
const (
	IssueNoExperienceBullets   = "no_experience_bullets"
	IssueNoMetrics             = "no_metrics"
	IssueWeakVerbs             = "weak_verbs"
	IssueNoSkillsListed        = "no_skills_listed"
	IssueSkillsNotDemonstrated = "skills_not_demonstrated"
	IssueNarrowSkillSet        = "narrow_skill_set"
	IssueStagnant              = "stagnant"
	IssueNoLearningSignals     = "no_learning_signals"
	IssuePoorFormatting        = "poor_formatting"
	IssueMissingSections       = "missing_sections"
	IssueGenericPhrasing       = "generic_phrasing"
	IssueTooShort              = "too_short"
)

// BulletRef locates a bullet in its source experience entry.
type BulletRef struct {
	Company string `json:"company"`
	Title   string `json:"title"`
	Index   int    `json:"index"`
}

// WeakBullet is a bullet that failed the metric or verb check, kept for
// downstream feedback.
type WeakBullet struct {
	Text   string    `json:"text"`
	Issues []string  `json:"issues"`
	Source BulletRef `json:"source"`
}

// Per-bullet issue tags recorded on weak bullets.
const (
	BulletIssueNoMetric = "no_metric"
	BulletIssueWeakVerb = "weak_verb"
	BulletIssueRunOn    = "run_on"
)

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
