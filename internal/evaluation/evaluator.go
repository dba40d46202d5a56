package evaluation

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"resume-engine/internal/apperrors"
	"resume-engine/internal/extract"
	"resume-engine/internal/resume"
	"resume-engine/internal/scoring"
)

// Dimension weights. They sum to 1.0.
const (
	weightSkillCapital  = 0.30
	weightExecution     = 0.30
	weightLearning      = 0.20
	weightSignalQuality = 0.20
)

// Signal-quality modifier thresholds.
const (
	lowSignalThreshold  = 40
	highSignalThreshold = 80
	lowSignalModifier   = 0.90
	highSignalModifier  = 1.05
)

const maxWeakBullets = 5

// Evaluator runs the generic resume evaluation. The zero value is not
// usable; construct with New.
type Evaluator struct {
	now func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) { e.now = now }
}

// New returns a ready Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate scores one parsed resume. rawText is the original document
// text when available; it feeds formatting checks and may be empty.
func (e *Evaluator) Evaluate(r *resume.ParsedResume, rawText string) (*Result, error) {
	if r == nil {
		return nil, apperrors.New(apperrors.CodeMalformedInput)
	}
	started := e.now()

	entities := extract.Extract(r)

	skill := scoring.SkillCapital(r, entities)
	exec, weakBullets := scoring.ExecutionImpact(r)
	learn := scoring.LearningAdaptivity(r, entities)
	signal := scoring.SignalQuality(r, rawText)

	dims := map[scoring.Dimension]scoring.DimensionScore{
		scoring.DimensionSkillCapital:       skill,
		scoring.DimensionExecutionImpact:    exec,
		scoring.DimensionLearningAdaptivity: learn,
		scoring.DimensionSignalQuality:      signal,
	}

	weighted := weightSkillCapital*float64(skill.Score) +
		weightExecution*float64(exec.Score) +
		weightLearning*float64(learn.Score) +
		weightSignalQuality*float64(signal.Score)

	switch {
	case signal.Score < lowSignalThreshold:
		weighted *= lowSignalModifier
	case signal.Score > highSignalThreshold:
		weighted *= highSignalModifier
	}

	preCap := clamp(int(math.Round(weighted)))

	spam := isSpam(r, entities)
	score := applyCaps(preCap, r, dims, spam)

	weaknesses := collectWeaknesses(dims)
	genericGaps := detectGenericGaps(r, entities, dims)
	flags := deriveFlags(r, entities, dims, spam, weaknesses)

	if len(weakBullets) > maxWeakBullets {
		weakBullets = weakBullets[:maxWeakBullets]
	}

	feedback := buildFeedback(dims, weaknesses, genericGaps)

	res := &Result{
		Score:       score,
		Level:       LevelFor(score),
		Dimensions:  dims,
		Weaknesses:  weaknesses,
		Entities:    entities,
		GenericGaps: genericGaps,
		WeakBullets: weakBullets,
		Feedback:    feedback,
		Flags:       flags,
		Summary:     buildSummary(score, dims, feedback),
		Meta: ProcessingMeta{
			ElapsedMS:    e.now().Sub(started).Milliseconds(),
			Timestamp:    started,
			ParseQuality: r.Meta.Quality(),
		},
	}
	return res, nil
}

// applyCaps takes the minimum of the pre-cap score and every cap whose
// trigger fires. Caps are evaluated independently.
func applyCaps(preCap int, r *resume.ParsedResume, dims map[scoring.Dimension]scoring.DimensionScore, spam bool) int {
	score := preCap
	skill := dims[scoring.DimensionSkillCapital].Score
	exec := dims[scoring.DimensionExecutionImpact].Score
	learn := dims[scoring.DimensionLearningAdaptivity].Score

	if skill < 25 && score > 45 {
		score = 45
	}
	if exec < 20 && score > 50 {
		score = 50
	}
	if learn < 30 && preCap > 60 && score > 60 {
		score = 60
	}
	if r.Meta.Quality() == resume.ParseQualityLow && score > 40 {
		score = 40
	}
	if spam && score > 25 {
		score = 25
	}
	return score
}

// isSpam flags documents with almost no content: fewer than 3 distinct
// skills, no work history and no education.
func isSpam(r *resume.ParsedResume, entities extract.Entities) bool {
	return len(entities.Skills) < 3 && len(r.Experience) == 0 && len(r.Education) == 0
}

func collectWeaknesses(dims map[scoring.Dimension]scoring.DimensionScore) []string {
	seen := map[string]bool{}
	var out []string
	for _, d := range []scoring.Dimension{
		scoring.DimensionSkillCapital,
		scoring.DimensionExecutionImpact,
		scoring.DimensionLearningAdaptivity,
		scoring.DimensionSignalQuality,
	} {
		for _, issue := range dims[d].Issues {
			if !seen[issue] {
				seen[issue] = true
				out = append(out, issue)
			}
		}
	}
	sort.Strings(out)
	return out
}

// genericGapPhrases maps a gap code to the phrases that betray it in
// bullet text. Matching is case-insensitive substring.
var genericGapPhrases = map[string][]string{
	"generic_phrasing": {
		"responsible for", "worked on", "duties included", "tasked with",
		"assisted with", "helped with", "involved in", "participated in",
		"as needed", "various tasks", "day-to-day",
	},
	"vague_scope": {
		"many projects", "several teams", "numerous", "a variety of",
		"multiple stakeholders",
	},
}

// detectGenericGaps scans bullet text against the phrase dictionary and
// folds in structural gaps the scorers surfaced.
func detectGenericGaps(r *resume.ParsedResume, entities extract.Entities, dims map[scoring.Dimension]scoring.DimensionScore) []string {
	found := map[string]bool{}

	text := strings.ToLower(strings.Join(r.AllBullets(), "\n"))
	for code, phrases := range genericGapPhrases {
		for _, p := range phrases {
			if strings.Contains(text, p) {
				found[code] = true
				break
			}
		}
	}

	if entities.TechnicalItemCount() == 0 {
		found["missing_skills"] = true
	}
	if hasIssue(dims[scoring.DimensionExecutionImpact].Issues, scoring.IssueNoMetrics) {
		found["missing_metrics"] = true
	}
	if hasIssue(dims[scoring.DimensionExecutionImpact].Issues, scoring.IssueWeakVerbs) {
		found["weak_verbs"] = true
	}
	if hasIssue(dims[scoring.DimensionSignalQuality].Issues, scoring.IssuePoorFormatting) {
		found["poor_formatting"] = true
	}

	out := make([]string, 0, len(found))
	for code := range found {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func deriveFlags(r *resume.ParsedResume, entities extract.Entities, dims map[scoring.Dimension]scoring.DimensionScore, spam bool, weaknesses []string) Flags {
	has := func(issue string) bool {
		for _, w := range weaknesses {
			if w == issue {
				return true
			}
		}
		return false
	}
	return Flags{
		NoSkillsListed:      len(r.Skills) == 0 && entities.TechnicalItemCount() == 0,
		PossibleSpam:        spam,
		NoExperience:        len(r.Experience) == 0,
		GenericDescriptions: has(scoring.IssueGenericPhrasing),
		NoMetrics:           has(scoring.IssueNoMetrics),
		Stagnant:            has(scoring.IssueStagnant),
		ParsingFailed:       r.Meta.Quality() == resume.ParseQualityLow,
		TooShort:            has(scoring.IssueTooShort),
	}
}

func buildSummary(score int, dims map[scoring.Dimension]scoring.DimensionScore, fb Feedback) string {
	strongest, weakest := extremes(dims)
	first := fmt.Sprintf("Overall %d (%s): strongest in %s, weakest in %s.",
		score, LevelFor(score), strongest.Label(), weakest.Label())
	if len(fb.QuickWins) == 0 {
		return first
	}
	return first + " Top fix: " + lowerFirst(fb.QuickWins[0].Action)
}

// extremes picks the highest and lowest dimensions, breaking ties by the
// fixed dimension order so output is stable.
func extremes(dims map[scoring.Dimension]scoring.DimensionScore) (strongest, weakest scoring.Dimension) {
	order := []scoring.Dimension{
		scoring.DimensionSkillCapital,
		scoring.DimensionExecutionImpact,
		scoring.DimensionLearningAdaptivity,
		scoring.DimensionSignalQuality,
	}
	strongest, weakest = order[0], order[0]
	for _, d := range order[1:] {
		if dims[d].Score > dims[strongest].Score {
			strongest = d
		}
		if dims[d].Score < dims[weakest].Score {
			weakest = d
		}
	}
	return strongest, weakest
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func hasIssue(issues []string, want string) bool {
	for _, issue := range issues {
		if issue == want {
			return true
		}
	}
	return false
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
