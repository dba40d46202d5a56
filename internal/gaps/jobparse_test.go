package gaps

import (
	"testing"
)

const sampleJD = `Senior Backend Engineer

We are a payments company looking for an engineer with 5+ years of experience.

Requirements:
- Strong Go and PostgreSQL experience
- Docker in production
- Experience leading a team of engineers

Nice to have:
- Kubernetes
- Terraform
`

func TestParseJobDescription(t *testing.T) {
	req, err := ParseJobDescription(sampleJD)
	if err != nil {
		t.Fatal(err)
	}
	if req.Title != "Senior Backend Engineer" {
		t.Errorf("title = %q", req.Title)
	}
	if req.Seniority != TierSenior {
		t.Errorf("seniority = %q, want %q", req.Seniority, TierSenior)
	}
	if req.MinYears != 5 {
		t.Errorf("min years = %d, want 5", req.MinYears)
	}
	if !containsString(req.RequiredSkills, "Go") || !containsString(req.RequiredSkills, "PostgreSQL") {
		t.Errorf("required skills = %v", req.RequiredSkills)
	}
	if containsString(req.RequiredSkills, "Kubernetes") {
		t.Errorf("Kubernetes should be preferred, required = %v", req.RequiredSkills)
	}
	if !containsString(req.PreferredSkills, "Kubernetes") || !containsString(req.PreferredSkills, "Terraform") {
		t.Errorf("preferred skills = %v", req.PreferredSkills)
	}
	if !containsString(req.ExperienceTypes, ExperienceLeadership) {
		t.Errorf("experience types = %v", req.ExperienceTypes)
	}
}

func TestParseJobDescriptionYearRange(t *testing.T) {
	req, err := ParseJobDescription("Engineer role, 3-5 years of Python experience required")
	if err != nil {
		t.Fatal(err)
	}
	if req.MinYears != 3 || req.MaxYears != 5 {
		t.Errorf("years = %d-%d, want 3-5", req.MinYears, req.MaxYears)
	}
}

func TestParseJobDescriptionEmpty(t *testing.T) {
	if _, err := ParseJobDescription("   \n  "); err == nil {
		t.Fatal("expected error for blank input")
	}
}

func TestParseJobDescriptionNoSeniorityCue(t *testing.T) {
	req, err := ParseJobDescription("Backend Engineer working with Go and Redis, 2+ years")
	if err != nil {
		t.Fatal(err)
	}
	if req.Seniority != "" {
		t.Errorf("seniority = %q, want empty for uncued title", req.Seniority)
	}
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
