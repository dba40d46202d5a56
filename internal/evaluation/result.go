// Package evaluation combines the four dimension scores into the generic
// resume evaluation: overall score, level, weaknesses, flags, and
// structured feedback.
package evaluation

import (
	"time"

	"resume-engine/internal/extract"
	"resume-engine/internal/resume"
	"resume-engine/internal/scoring"
)

// Level is the band label for an overall score.
type Level string

const (
	LevelEarly       Level = "Early"
	LevelGrowing     Level = "Growing"
	LevelSolid       Level = "Solid"
	LevelStrong      Level = "Strong"
	LevelExceptional Level = "Exceptional"
)

// LevelFor maps a 0–100 score onto its band.
func LevelFor(score int) Level {
	switch {
	case score >= 90:
		return LevelExceptional
	case score >= 75:
		return LevelStrong
	case score >= 55:
		return LevelSolid
	case score >= 35:
		return LevelGrowing
	default:
		return LevelEarly
	}
}

// Flags are boolean findings derived from scoring and extraction.
type Flags struct {
	NoSkillsListed      bool `json:"noSkillsListed"`
	PossibleSpam        bool `json:"possibleSpam"`
	NoExperience        bool `json:"noExperience"`
	GenericDescriptions bool `json:"genericDescriptions"`
	NoMetrics           bool `json:"noMetrics"`
	Stagnant            bool `json:"stagnant"`
	ParsingFailed       bool `json:"parsingFailed"`
	TooShort            bool `json:"tooShort"`
}

// QuickWin is a ranked, low-effort improvement with an estimated gain.
type QuickWin struct {
	Action        string `json:"action"`
	EstimatedGain int    `json:"estimatedGain"`
	Effort        string `json:"effort"`
}

// Feedback is the human-readable portion of a result.
type Feedback struct {
	Strengths       []string   `json:"strengths"`
	CriticalGaps    []string   `json:"criticalGaps"`
	QuickWins       []QuickWin `json:"quickWins"`
	Recommendations []string   `json:"recommendations"`
}

// ProcessingMeta records timing and parse facts about the evaluation.
type ProcessingMeta struct {
	ElapsedMS    int64               `json:"elapsedMs"`
	Timestamp    time.Time           `json:"timestamp"`
	ParseQuality resume.ParseQuality `json:"parseQuality"`
}

// Result is the generic-evaluation output.
type Result struct {
	Score       int                                       `json:"score"`
	Level       Level                                     `json:"level"`
	Dimensions  map[scoring.Dimension]scoring.DimensionScore `json:"dimensions"`
	Weaknesses  []string                                  `json:"weaknesses"`
	Entities    extract.Entities                          `json:"entities"`
	GenericGaps []string                                  `json:"genericGaps"`
	WeakBullets []scoring.WeakBullet                      `json:"weakBullets"`
	Feedback    Feedback                                  `json:"feedback"`
	Flags       Flags                                     `json:"flags"`
	Summary     string                                    `json:"summary"`
	Meta        ProcessingMeta                            `json:"meta"`
}

// Dimension returns one dimension's score, zero-valued if absent.
func (r *Result) Dimension(d scoring.Dimension) scoring.DimensionScore {
	return r.Dimensions[d]
}
