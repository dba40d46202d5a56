package scoring

import (
	"reflect"
	"testing"

	"resume-engine/internal/resume"
)

func TestExecutionImpactEmptyResume(t *testing.T) {
	score, weak := ExecutionImpact(&resume.ParsedResume{})
	if score.Score != 0 {
		t.Fatalf("score = %d, want 0", score.Score)
	}
	if len(score.Issues) != 1 || score.Issues[0] != IssueNoExperienceBullets {
		t.Fatalf("issues = %v, want [%s]", score.Issues, IssueNoExperienceBullets)
	}
	if weak != nil {
		t.Fatalf("expected no weak bullets, got %v", weak)
	}
}

func TestExecutionImpactMonotonicityUnderAddedMetricBullet(t *testing.T) {
	base := &resume.ParsedResume{
		Experience: []resume.Experience{
			{
				Title:   "Engineer",
				Company: "Acme",
				Bullets: []string{
					"Built the internal reporting dashboard used by the sales organization",
					"Worked on miscellaneous maintenance tasks",
				},
			},
		},
	}
	augmented := &resume.ParsedResume{
		Experience: []resume.Experience{
			{
				Title:   "Engineer",
				Company: "Acme",
				Bullets: append(append([]string{}, base.Experience[0].Bullets...),
					"Increased checkout conversion by 12% across 3 markets"),
			},
		},
	}

	baseScore, _ := ExecutionImpact(base)
	augScore, _ := ExecutionImpact(augmented)
	if augScore.Score < baseScore.Score {
		t.Fatalf("adding a quantified bullet decreased score: %d -> %d", baseScore.Score, augScore.Score)
	}
}

func TestHasMetric(t *testing.T) {
	cases := []struct {
		bullet string
		want   bool
	}{
		{"Increased revenue by 40%", true},
		{"Cut infrastructure spend by $30k per month", true},
		{"Served 2M users across 12 countries", true},
		{"Managed a team of 8 engineers", true},
		{"Reduced deployment time by half", true},
		{"Made the service 3x faster", true},
		{"Saved the team 10 hours per week", true},
		{"Built a new onboarding flow", false},
		{"Responsible for database maintenance", false},
	}
	for _, tc := range cases {
		if got := HasMetric(tc.bullet); got != tc.want {
			t.Errorf("HasMetric(%q) = %v, want %v", tc.bullet, got, tc.want)
		}
	}
}

func TestLeadingVerbStrength(t *testing.T) {
	cases := []struct {
		bullet string
		want   VerbStrength
	}{
		{"Led migration of the billing platform", VerbStrong},
		{"- Shipped the mobile app rewrite", VerbStrong},
		{"Helped with customer onboarding", VerbWeak},
		{"Responsible for weekly reporting", VerbWeak},
		{"Database schema maintenance and backups", VerbNeutral},
		{"", VerbNeutral},
	}
	for _, tc := range cases {
		if got := LeadingVerbStrength(tc.bullet); got != tc.want {
			t.Errorf("LeadingVerbStrength(%q) = %v, want %v", tc.bullet, got, tc.want)
		}
	}
}

func TestWeakBulletCapture(t *testing.T) {
	r := &resume.ParsedResume{
		Experience: []resume.Experience{
			{
				Title:   "Analyst",
				Company: "Acme",
				Bullets: []string{
					"Increased report accuracy by 15%",
					"Helped with various administrative tasks",
				},
			},
		},
	}
	_, weak := ExecutionImpact(r)
	if len(weak) != 1 {
		t.Fatalf("expected 1 weak bullet, got %d", len(weak))
	}
	got := weak[0]
	if got.Source.Company != "Acme" || got.Source.Title != "Analyst" || got.Source.Index != 1 {
		t.Errorf("wrong source: %+v", got.Source)
	}
	wantIssues := []string{BulletIssueNoMetric, BulletIssueWeakVerb}
	if !reflect.DeepEqual(got.Issues, wantIssues) {
		t.Errorf("issues = %v, want %v", got.Issues, wantIssues)
	}
}

func TestExecutionImpactRaisesNoMetrics(t *testing.T) {
	r := &resume.ParsedResume{
		Experience: []resume.Experience{
			{Title: "Engineer", Company: "Acme", Bullets: []string{
				"Built internal tools",
				"Maintained the deployment scripts",
				"Wrote documentation for the platform",
			}},
		},
	}
	score, _ := ExecutionImpact(r)
	if !hasIssue(score.Issues, IssueNoMetrics) {
		t.Fatalf("expected %s issue, got %v", IssueNoMetrics, score.Issues)
	}
}

func TestExecutionImpactStrongResume(t *testing.T) {
	r := &resume.ParsedResume{
		Experience: []resume.Experience{
			{Title: "Senior Engineer", Company: "Acme", Bullets: []string{
				"Led a team of 6 engineers delivering the payments replatform",
				"Increased API throughput by 70% by redesigning the caching layer",
				"Reduced cloud spend by $40k annually, resulting in budget for two new hires",
				"Launched the self-serve onboarding flow used by 50k customers",
			}},
		},
	}
	score, weak := ExecutionImpact(r)
	if score.Score < 85 {
		t.Fatalf("expected high execution impact, got %d (breakdown %v)", score.Score, score.Breakdown)
	}
	if len(weak) != 0 {
		t.Fatalf("expected no weak bullets, got %v", weak)
	}
}

func TestExecutionImpactBounded(t *testing.T) {
	fixtures := []*resume.ParsedResume{
		{},
		{Experience: []resume.Experience{{Bullets: []string{"x"}}}},
		{Experience: []resume.Experience{{Bullets: []string{
			"Increased revenue by 500% managing a team of 100, resulting in $10M savings",
		}}}},
	}
	for i, r := range fixtures {
		score, _ := ExecutionImpact(r)
		if score.Score < 0 || score.Score > 100 {
			t.Errorf("fixture %d: score %d out of bounds", i, score.Score)
		}
	}
}

func hasIssue(issues []string, want string) bool {
	for _, issue := range issues {
		if issue == want {
			return true
		}
	}
	return false
}
