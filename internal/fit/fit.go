package fit

import (
	"math"

	"resume-engine/internal/evaluation"
	"resume-engine/internal/gaps"
	"resume-engine/internal/resume"
	"resume-engine/internal/scoring"
)

// Fit weights. They sum to 1.0.
const (
	weightTechnical  = 0.40
	weightSeniority  = 0.20
	weightExperience = 0.20
	weightSignal     = 0.20
)

// Technical match blends skills and tools.
const (
	technicalSkillShare = 0.60
	technicalToolShare  = 0.40
)

// minQualityScore is the resume score below which the quality factor
// discounts the fit score and the low_signal flag is raised.
const minQualityScore = 60

// Seniority match values per alignment; underqualified decays by
// seniorityDecayPerYear for each missing year, floored at
// seniorityMatchFloor.
const (
	seniorityMatchAligned = 100
	seniorityMatchOver    = 80
	seniorityMatchFloor   = 40
	seniorityDecayPerYear = 15
)

const stretchYearGap = 2.0

// Evaluator computes fit scores.
type Evaluator struct {
	generic *evaluation.Evaluator
}

// New wraps a generic evaluator.
func New(generic *evaluation.Evaluator) *Evaluator {
	return &Evaluator{generic: generic}
}

// Evaluate runs the full fit pipeline. If the generic evaluation fails,
// gap and fit computation is skipped entirely.
func (e *Evaluator) Evaluate(r *resume.ParsedResume, rawText string, req gaps.JobRequirements) (*Score, error) {
	result, err := e.generic.Evaluate(r, rawText)
	if err != nil {
		return nil, err
	}
	analysis := gaps.Detect(r, result.Entities, req)
	return e.assemble(result, analysis, req), nil
}

// EvaluateWithResult computes fit from an already-computed generic
// result, used when the caller got the evaluation from cache.
func (e *Evaluator) EvaluateWithResult(r *resume.ParsedResume, result *evaluation.Result, req gaps.JobRequirements) *Score {
	analysis := gaps.Detect(r, result.Entities, req)
	return e.assemble(result, analysis, req)
}

func (e *Evaluator) assemble(result *evaluation.Result, analysis gaps.Analysis, req gaps.JobRequirements) *Score {
	dims := fitDimensions(result, analysis)

	raw := weightTechnical*float64(dims.Technical) +
		weightSeniority*float64(dims.Seniority) +
		weightExperience*float64(dims.Experience) +
		weightSignal*float64(dims.Signal)
	final := clampScore(int(math.Round(raw * qualityFactor(result.Score))))

	flags := deriveFlags(result, analysis)
	rec, reasoning := recommend(final, result.Score, analysis, flags)

	return &Score{
		Evaluation:     result,
		FitScore:       final,
		Dimensions:     dims,
		Gaps:           analysis,
		Flags:          flags,
		Recommendation: rec,
		Reasoning:      reasoning,
		TailoringHints: tailoringHints(analysis),
		Improvements:   improvements(analysis),
		Confidence:     confidence(req),
	}
}

func fitDimensions(result *evaluation.Result, analysis gaps.Analysis) Dimensions {
	technical := technicalSkillShare*float64(analysis.Skills.MatchPercentage) +
		technicalToolShare*float64(analysis.Tools.MatchPercentage)

	seniority := seniorityMatchAligned
	switch analysis.Seniority.Alignment {
	case gaps.AlignmentOver:
		seniority = seniorityMatchOver
	case gaps.AlignmentUnder:
		seniority = seniorityMatchAligned - int(math.Round(seniorityDecayPerYear*analysis.Seniority.YearGap))
		if seniority < seniorityMatchFloor {
			seniority = seniorityMatchFloor
		}
	}

	return Dimensions{
		Technical:  clampScore(int(math.Round(technical))),
		Seniority:  seniority,
		Experience: clampScore(analysis.Experience.CoverageScore),
		Signal:     result.Dimension(scoring.DimensionSignalQuality).Score,
	}
}

// qualityFactor discounts fit for weak resumes on a smooth ramp rather
// than a hard cliff.
func qualityFactor(resumeScore int) float64 {
	if resumeScore >= minQualityScore {
		return 1.0
	}
	return 0.85 + (float64(resumeScore)/minQualityScore)*0.15
}

func deriveFlags(result *evaluation.Result, analysis gaps.Analysis) Flags {
	missing := len(analysis.Experience.MissingTypes)
	matched := len(analysis.Experience.MatchedTypes)

	under := analysis.Seniority.Alignment == gaps.AlignmentUnder
	return Flags{
		Underqualified: under,
		Overqualified:  analysis.Seniority.Alignment == gaps.AlignmentOver,
		CareerSwitch:   analysis.Industry.MatchPercentage < 50 || missing > matched,
		LowSignal:      result.Score < minQualityScore,
		StretchRole:    under && analysis.Seniority.YearGap <= stretchYearGap,
	}
}

// confidence grades how much signal the requirements carried.
func confidence(req gaps.JobRequirements) Confidence {
	detail := 0
	if len(req.RequiredSkills) > 0 {
		detail++
	}
	if len(req.RequiredTools) > 0 {
		detail++
	}
	if req.Seniority != "" {
		detail++
	}
	if len(req.ExperienceTypes) > 0 {
		detail++
	}
	if len(req.DomainKeywords) > 0 {
		detail++
	}
	if req.MinYears > 0 {
		detail++
	}
	switch {
	case detail >= 4:
		return ConfidenceHigh
	case detail >= 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

