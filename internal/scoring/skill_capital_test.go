package scoring

import (
	"testing"

	"resume-engine/internal/extract"
	"resume-engine/internal/resume"
)

func TestSkillCapitalBroadProfile(t *testing.T) {
	r := &resume.ParsedResume{
		Skills: []string{"Python", "Go", "TypeScript", "React", "AWS", "Docker",
			"Kubernetes", "PostgreSQL", "Redis", "Terraform", "Leadership",
			"Communication", "Machine Learning", "SQL", "Linux", "GraphQL",
			"Kafka", "Grafana", "CI/CD", "Git"},
		Experience: []resume.Experience{
			{Title: "Engineer", Company: "Acme", DurationMonths: 60, Bullets: []string{
				"Built services in Go and Python on AWS with Kubernetes and Terraform",
				"Led PostgreSQL and Redis performance work, mentored via regular communication",
			}},
		},
		Projects:       []resume.Project{{Name: "ML demo"}, {Name: "Infra tool"}},
		Certifications: []resume.Certification{{Name: "AWS Solutions Architect"}},
	}
	entities := extract.Extract(r)
	score := SkillCapital(r, entities)

	if score.Score < 70 {
		t.Fatalf("broad profile scored %d (breakdown %v)", score.Score, score.Breakdown)
	}
	if score.Breakdown["presence"] != skillPresenceMax {
		t.Errorf("presence = %d, want %d (20+ items with skills section)", score.Breakdown["presence"], skillPresenceMax)
	}
	if hasIssue(score.Issues, IssueNoSkillsListed) {
		t.Errorf("unexpected no_skills_listed issue")
	}
}

func TestSkillCapitalSparseProfile(t *testing.T) {
	r := &resume.ParsedResume{
		Experience: []resume.Experience{{Title: "Clerk", Company: "Shop", Bullets: []string{"Stocked shelves daily"}}},
	}
	entities := extract.Extract(r)
	score := SkillCapital(r, entities)

	if score.Score >= 25 {
		t.Fatalf("sparse profile scored %d, expected below the skill-capital cap trigger", score.Score)
	}
	if !hasIssue(score.Issues, IssueNoSkillsListed) {
		t.Errorf("expected no_skills_listed, got %v", score.Issues)
	}
}

func TestSkillCapitalFlagsUndemonstratedSkills(t *testing.T) {
	r := &resume.ParsedResume{
		Skills: []string{"Python", "Go", "React", "AWS", "Docker", "Kubernetes"},
		Experience: []resume.Experience{
			{Title: "Engineer", Company: "Acme", Bullets: []string{
				"Organized the weekly planning meeting",
				"Maintained vendor relationships",
			}},
		},
	}
	score := SkillCapital(r, extract.Extract(r))
	if !hasIssue(score.Issues, IssueSkillsNotDemonstrated) {
		t.Fatalf("expected %s, got %v", IssueSkillsNotDemonstrated, score.Issues)
	}
}

func TestSkillCapitalBounded(t *testing.T) {
	fixtures := []*resume.ParsedResume{
		{},
		{Skills: []string{"Python"}},
	}
	for i, r := range fixtures {
		score := SkillCapital(r, extract.Extract(r))
		if score.Score < 0 || score.Score > 100 {
			t.Errorf("fixture %d: score %d out of bounds", i, score.Score)
		}
	}
}
