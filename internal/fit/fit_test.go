package fit

import (
	"math"
	"strings"
	"testing"
	"time"

	"resume-engine/internal/evaluation"
	"resume-engine/internal/gaps"
	"resume-engine/internal/resume"
)

func testEvaluator() *Evaluator {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return New(evaluation.New(evaluation.WithClock(func() time.Time { return at })))
}

func strongResume() *resume.ParsedResume {
	return &resume.ParsedResume{
		Contact: resume.Contact{Name: "Ada", Email: "ada@example.com", Phone: "555-0100", Location: "Berlin"},
		Skills: []string{"Go", "Python", "TypeScript", "React", "AWS", "Docker",
			"Kubernetes", "PostgreSQL", "Redis", "Terraform", "Leadership",
			"Communication", "Machine Learning", "SQL", "Linux", "GraphQL",
			"Kafka", "Grafana", "CI/CD", "Git"},
		Experience: []resume.Experience{
			{Title: "Senior Engineer", Company: "Acme", DurationMonths: 24, Bullets: []string{
				"Led a team of 6 engineers delivering the Go payments replatform",
				"Increased API throughput by 70% by redesigning the Redis caching layer",
				"Reduced AWS spend by $40k annually through Terraform right-sizing",
				"Launched the self-serve onboarding flow used by 50k customers",
			}},
			{Title: "Engineer", Company: "Acme", DurationMonths: 36, Bullets: []string{
				"Built the Kafka ingestion pipeline processing 2M events per day",
				"Improved PostgreSQL query latency by 40% across 12 dashboards",
				"Automated Kubernetes deployments, saving the team 10 hours per week",
				"Shipped the React admin console adopted by a team of 3 support staff",
			}},
		},
		Education:      []resume.Education{{Degree: "BSc Computer Science", Institution: "TU Berlin"}},
		Projects:       []resume.Project{{Name: "ML pipeline demo"}, {Name: "Infra cost tool"}},
		Certifications: []resume.Certification{{Name: "AWS Solutions Architect"}, {Name: "CKA"}},
		Courses:        []string{"Distributed Systems"},
		Meta: resume.DocumentMeta{
			WordCount:    450,
			ParseQuality: resume.ParseQualityHigh,
			Sections: []resume.SectionName{
				resume.SectionSummary, resume.SectionExperience,
				resume.SectionSkills, resume.SectionEducation,
			},
		},
	}
}

func TestQualityFactorLinearity(t *testing.T) {
	cases := []struct {
		resumeScore int
		rawFit      float64
		want        int
	}{
		{0, 80, 68},
		{30, 80, 74},
		{60, 80, 80},
		{90, 80, 80},
	}
	for _, tc := range cases {
		got := int(math.Round(tc.rawFit * qualityFactor(tc.resumeScore)))
		if got != tc.want {
			t.Errorf("resume %d: fit = %d, want %d", tc.resumeScore, got, tc.want)
		}
	}
}

func TestRecommendationBoundary(t *testing.T) {
	analysis := func(criticalGaps int) gaps.Analysis {
		return gaps.Analysis{
			Summary: gaps.Summary{CriticalGapCount: criticalGaps, OverallMatch: 70},
		}
	}

	rec, _ := recommend(75, 60, analysis(2), Flags{})
	if rec != RecommendApply {
		t.Errorf("fit 75 resume 60 gaps 2: %s, want APPLY", rec)
	}
	rec, _ = recommend(75, 60, analysis(3), Flags{})
	if rec != RecommendOptimizeFirst {
		t.Errorf("fit 75 resume 60 gaps 3: %s, want OPTIMIZE_FIRST", rec)
	}
}

func TestRecommendationNotReadyBranches(t *testing.T) {
	base := gaps.Analysis{Summary: gaps.Summary{OverallMatch: 70}}

	cases := []struct {
		name     string
		fit      int
		resume   int
		analysis gaps.Analysis
		flags    Flags
	}{
		{"too many gaps", 80, 80,
			gaps.Analysis{Summary: gaps.Summary{CriticalGapCount: 6, OverallMatch: 70}}, Flags{}},
		{"low fit", 49, 80, base, Flags{}},
		{"level and domain jump", 70, 80,
			gaps.Analysis{
				Seniority: gaps.SeniorityGap{Alignment: gaps.AlignmentUnder, RequiredLevel: gaps.TierSenior},
				Summary:   gaps.Summary{OverallMatch: 70},
			},
			Flags{Underqualified: true, CareerSwitch: true}},
		{"weak resume", 70, 39, base, Flags{}},
		{"thin overlap", 70, 80,
			gaps.Analysis{Summary: gaps.Summary{OverallMatch: 29}}, Flags{}},
	}
	for _, tc := range cases {
		rec, reason := recommend(tc.fit, tc.resume, tc.analysis, tc.flags)
		if rec != RecommendNotReady {
			t.Errorf("%s: %s, want NOT_READY", tc.name, rec)
		}
		if reason == "" {
			t.Errorf("%s: empty reasoning", tc.name)
		}
	}
}

func TestReasoningCitesNumbers(t *testing.T) {
	analysis := gaps.Analysis{
		Skills:  gaps.SkillGap{CriticalMissing: []string{"Rust"}},
		Summary: gaps.Summary{CriticalGapCount: 1, OverallMatch: 55},
	}
	_, reason := recommend(60, 70, analysis, Flags{})
	if !strings.Contains(reason, "60") {
		t.Errorf("reasoning should cite the fit score: %q", reason)
	}
	if !strings.Contains(reason, "Rust") {
		t.Errorf("reasoning should name the missing skill: %q", reason)
	}
}

func TestFitDimensionsSeniority(t *testing.T) {
	result := &evaluation.Result{}
	cases := []struct {
		name      string
		alignment gaps.Alignment
		yearGap   float64
		want      int
	}{
		{"aligned", gaps.AlignmentAligned, 0, 100},
		{"overqualified", gaps.AlignmentOver, 0, 80},
		{"under two years", gaps.AlignmentUnder, 2, 70},
		{"under far below floor", gaps.AlignmentUnder, 5, 40},
	}
	for _, tc := range cases {
		a := gaps.Analysis{Seniority: gaps.SeniorityGap{Alignment: tc.alignment, YearGap: tc.yearGap}}
		dims := fitDimensions(result, a)
		if dims.Seniority != tc.want {
			t.Errorf("%s: seniority = %d, want %d", tc.name, dims.Seniority, tc.want)
		}
	}
}

func TestFitDimensionsTechnicalBlend(t *testing.T) {
	a := gaps.Analysis{
		Skills: gaps.SkillGap{MatchPercentage: 100},
		Tools:  gaps.ToolGap{MatchPercentage: 50},
	}
	dims := fitDimensions(&evaluation.Result{}, a)
	// 0.6*100 + 0.4*50 = 80
	if dims.Technical != 80 {
		t.Errorf("technical = %d, want 80", dims.Technical)
	}
}

func TestDeriveFlags(t *testing.T) {
	result := &evaluation.Result{Score: 45}
	a := gaps.Analysis{
		Experience: gaps.ExperienceGap{
			MatchedTypes: []string{"leadership"},
			MissingTypes: []string{"data-analysis", "customer-facing"},
		},
		Seniority: gaps.SeniorityGap{Alignment: gaps.AlignmentUnder, YearGap: 1.5},
		Industry:  gaps.IndustryGap{MatchPercentage: 100},
	}
	flags := deriveFlags(result, a)
	if !flags.Underqualified || flags.Overqualified {
		t.Errorf("alignment flags wrong: %+v", flags)
	}
	if !flags.CareerSwitch {
		t.Error("missing types outnumber matched; expected career switch flag")
	}
	if !flags.LowSignal {
		t.Error("resume score 45 should raise low signal")
	}
	if !flags.StretchRole {
		t.Error("1.5 year gap should read as a stretch role")
	}
}

func TestEvaluateEndToEndApply(t *testing.T) {
	req := gaps.JobRequirements{
		RequiredSkills: []string{"Go", "AWS", "Kubernetes"},
		RequiredTools:  []string{"Docker", "Terraform"},
		Seniority:      gaps.TierSenior,
		MinYears:       4,
	}
	score, err := testEvaluator().Evaluate(strongResume(), "", req)
	if err != nil {
		t.Fatal(err)
	}
	if score.Recommendation != RecommendApply {
		t.Fatalf("recommendation = %s (fit %d, resume %d, gaps %d): %s",
			score.Recommendation, score.FitScore, score.Evaluation.Score,
			score.Gaps.Summary.CriticalGapCount, score.Reasoning)
	}
	if score.FitScore < 90 {
		t.Errorf("fit = %d, want >= 90 for a full match", score.FitScore)
	}
	if score.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %s, want high", score.Confidence)
	}
	if score.Flags != (Flags{}) {
		t.Errorf("unexpected flags: %+v", score.Flags)
	}
}

func TestImprovementsRankedAndCapped(t *testing.T) {
	a := gaps.Analysis{
		Skills: gaps.SkillGap{
			CriticalMissing: []string{"Rust", "Kafka", "AWS"},
		},
		Tools:      gaps.ToolGap{CriticalMissing: []string{"Jenkins", "Datadog"}},
		Experience: gaps.ExperienceGap{MissingTypes: []string{"leadership", "data-analysis"}},
		Seniority:  gaps.SeniorityGap{Alignment: gaps.AlignmentUnder, YearGap: 2.5},
	}
	items := improvements(a)
	if len(items) != maxImprovements {
		t.Fatalf("got %d improvements, want %d", len(items), maxImprovements)
	}
	for i := 1; i < len(items); i++ {
		if items[i].EstimatedGain > items[i-1].EstimatedGain {
			t.Fatalf("not sorted by gain at %d: %v", i, items)
		}
	}
	for i, item := range items {
		if item.Order != i+1 {
			t.Errorf("order[%d] = %d", i, item.Order)
		}
	}
}

func TestTransferableLowersGain(t *testing.T) {
	a := gaps.Analysis{
		Skills: gaps.SkillGap{
			CriticalMissing: []string{"AWS"},
			Transferable:    []gaps.Transfer{{Have: "Google Cloud", Want: "AWS"}},
		},
	}
	items := improvements(a)
	if len(items) != 1 || items[0].EstimatedGain != 5 {
		t.Fatalf("expected reduced gain for transferable skill, got %v", items)
	}
}
