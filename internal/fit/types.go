// Package fit scores a resume against a specific job: it runs the
// generic evaluation, detects gaps, and produces a fit score with an
// apply/optimize/not-ready recommendation.
package fit

import (
	"resume-engine/internal/evaluation"
	"resume-engine/internal/gaps"
)

// Dimensions are the four job-specific sub-scores, each 0..100.
type Dimensions struct {
	Technical  int `json:"technical"`
	Seniority  int `json:"seniority"`
	Experience int `json:"experience"`
	Signal     int `json:"signal"`
}

// Flags are independent booleans; several can be true at once.
type Flags struct {
	Underqualified bool `json:"underqualified"`
	Overqualified  bool `json:"overqualified"`
	CareerSwitch   bool `json:"careerSwitch"`
	LowSignal      bool `json:"lowSignal"`
	StretchRole    bool `json:"stretchRole"`
}

// Recommendation is the final verdict.
type Recommendation string

const (
	RecommendApply         Recommendation = "APPLY"
	RecommendOptimizeFirst Recommendation = "OPTIMIZE_FIRST"
	RecommendNotReady      Recommendation = "NOT_READY"
)

// Confidence reflects how detailed the job requirements were, not how
// good the resume is.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Improvement is one ranked, gap-derived action.
type Improvement struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	Action        string `json:"action"`
	EstimatedGain int    `json:"estimatedGain"`
	Order         int    `json:"order"`
}

// Score is the full fit-evaluation output. It embeds the generic
// evaluation result it was derived from.
type Score struct {
	Evaluation     *evaluation.Result `json:"evaluation"`
	FitScore       int                `json:"fitScore"`
	Dimensions     Dimensions         `json:"dimensions"`
	Gaps           gaps.Analysis      `json:"gaps"`
	Flags          Flags              `json:"flags"`
	Recommendation Recommendation     `json:"recommendation"`
	Reasoning      string             `json:"reasoning"`
	TailoringHints []string           `json:"tailoringHints"`
	Improvements   []Improvement      `json:"improvements"`
	Confidence     Confidence         `json:"confidence"`
}
