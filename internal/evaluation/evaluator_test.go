package evaluation

import (
	"reflect"
	"testing"
	"time"

	"resume-engine/internal/resume"
	"resume-engine/internal/scoring"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
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

func weakResume() *resume.ParsedResume {
	return &resume.ParsedResume{
		Contact: resume.Contact{Name: "Pat"},
		Experience: []resume.Experience{
			{Title: "Clerk", Company: "Shop", Bullets: []string{"Responsible for various tasks"}},
		},
		Meta: resume.DocumentMeta{WordCount: 90},
	}
}

func TestLevelBands(t *testing.T) {
	cases := []struct {
		score int
		want  Level
	}{
		{0, LevelEarly},
		{34, LevelEarly},
		{35, LevelGrowing},
		{54, LevelGrowing},
		{55, LevelSolid},
		{74, LevelSolid},
		{75, LevelStrong},
		{89, LevelStrong},
		{90, LevelExceptional},
		{100, LevelExceptional},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.score); got != tc.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestApplyCaps(t *testing.T) {
	dims := func(skill, exec, learn int) map[scoring.Dimension]scoring.DimensionScore {
		return map[scoring.Dimension]scoring.DimensionScore{
			scoring.DimensionSkillCapital:       {Score: skill},
			scoring.DimensionExecutionImpact:    {Score: exec},
			scoring.DimensionLearningAdaptivity: {Score: learn},
			scoring.DimensionSignalQuality:      {Score: 70},
		}
	}
	highQuality := &resume.ParsedResume{Meta: resume.DocumentMeta{ParseQuality: resume.ParseQualityHigh}}
	lowQuality := &resume.ParsedResume{Meta: resume.DocumentMeta{ParseQuality: resume.ParseQualityLow}}

	cases := []struct {
		name              string
		preCap            int
		r                 *resume.ParsedResume
		skill, exec, learn int
		spam              bool
		want              int
	}{
		{"no caps", 80, highQuality, 60, 60, 60, false, 80},
		{"low skill capital", 70, highQuality, 24, 60, 60, false, 45},
		{"low execution", 70, highQuality, 60, 19, 60, false, 50},
		{"low learning high precap", 70, highQuality, 60, 60, 29, false, 60},
		{"low learning low precap", 55, highQuality, 60, 60, 29, false, 55},
		{"parse failure", 70, lowQuality, 60, 60, 60, false, 40},
		{"spam", 70, highQuality, 60, 60, 60, true, 25},
		{"multiple caps take min", 70, lowQuality, 24, 19, 60, true, 25},
		{"score below cap unchanged", 30, highQuality, 24, 60, 60, false, 30},
	}
	for _, tc := range cases {
		got := applyCaps(tc.preCap, tc.r, dims(tc.skill, tc.exec, tc.learn), tc.spam)
		if got != tc.want {
			t.Errorf("%s: applyCaps = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestEvaluateStrongResume(t *testing.T) {
	e := New(WithClock(fixedClock()))
	res, err := e.Evaluate(strongResume(), "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Score < 85 || res.Score > 100 {
		t.Fatalf("strong resume scored %d, want 85..100 (dims %v)", res.Score, res.Dimensions)
	}
	if res.Level != LevelStrong && res.Level != LevelExceptional {
		t.Errorf("level = %s", res.Level)
	}
	if len(res.Feedback.Strengths) < 2 {
		t.Errorf("expected at least 2 strengths, got %v", res.Feedback.Strengths)
	}
	if res.Flags != (Flags{}) {
		t.Errorf("expected no flags, got %+v", res.Flags)
	}
	if res.Summary == "" {
		t.Error("empty summary")
	}
}

func TestEvaluateWeakResume(t *testing.T) {
	e := New(WithClock(fixedClock()))
	res, err := e.Evaluate(weakResume(), "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Score >= 50 {
		t.Fatalf("weak resume scored %d (dims %v)", res.Score, res.Dimensions)
	}
	if !res.Flags.NoSkillsListed {
		t.Error("expected NoSkillsListed flag")
	}
	if !res.Flags.TooShort {
		t.Error("expected TooShort flag")
	}
	if len(res.Feedback.CriticalGaps) == 0 || len(res.Feedback.CriticalGaps) > 3 {
		t.Errorf("critical gaps = %v", res.Feedback.CriticalGaps)
	}
	if len(res.Feedback.QuickWins) > 4 {
		t.Errorf("too many quick wins: %v", res.Feedback.QuickWins)
	}
	if len(res.Feedback.Strengths) == 0 {
		t.Error("feedback must always include at least one strength")
	}
}

func TestEvaluateSeparation(t *testing.T) {
	e := New(WithClock(fixedClock()))
	strong, err := e.Evaluate(strongResume(), "")
	if err != nil {
		t.Fatal(err)
	}
	weak, err := e.Evaluate(weakResume(), "")
	if err != nil {
		t.Fatal(err)
	}
	if strong.Score-weak.Score < 30 {
		t.Fatalf("separation %d - %d = %d, want at least 30",
			strong.Score, weak.Score, strong.Score-weak.Score)
	}
}

func TestEvaluateDeterminism(t *testing.T) {
	e := New(WithClock(fixedClock()))
	first, err := e.Evaluate(strongResume(), "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Evaluate(strongResume(), "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same input produced different results")
	}
}

func TestEvaluateSpamCap(t *testing.T) {
	r := &resume.ParsedResume{
		Contact: resume.Contact{Name: "A"},
		Skills:  []string{"Go"},
	}

	e := New(WithClock(fixedClock()))
	res, err := e.Evaluate(r, "")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Flags.PossibleSpam {
		t.Fatal("expected PossibleSpam flag")
	}
	if res.Score > 25 {
		t.Fatalf("score %d exceeds spam cap", res.Score)
	}
}

func TestEvaluateNilResume(t *testing.T) {
	e := New()
	if _, err := e.Evaluate(nil, ""); err == nil {
		t.Fatal("expected error for nil resume")
	}
}
