package normalize

import (
	"reflect"
	"testing"
)

func TestCanonicalSkill(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"k8s", "Kubernetes"},
		{"K8S", "Kubernetes"},
		{"golang", "Go"},
		{"reactjs", "React"},
		{"postgres", "PostgreSQL"},
		{"Js", "JavaScript"},
		{"ml", "Machine Learning"},
		{" python ", "Python"},
		{"Underwater Basket Weaving", "Underwater Basket Weaving"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CanonicalSkill(tc.in); got != tc.want {
			t.Errorf("CanonicalSkill(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDetectSkillsWholeWord(t *testing.T) {
	skills := DetectSkills("Built pipelines in Go and deployed on k8s clusters")
	if !contains(skills, "Go") || !contains(skills, "Kubernetes") {
		t.Fatalf("expected Go and Kubernetes, got %v", skills)
	}

	// "Go" inside "Google" or "going" must not match.
	skills = DetectSkills("Ongoing work with Google ads and logos")
	if contains(skills, "Go") {
		t.Fatalf("substring matched as whole word: %v", skills)
	}
}

func TestDetectSkillsSpecialCharacters(t *testing.T) {
	skills := DetectSkills("Maintained C++ services and .NET tooling")
	if !contains(skills, "C++") {
		t.Fatalf("expected C++, got %v", skills)
	}
	if !contains(skills, "ASP.NET") {
		t.Fatalf("expected ASP.NET from .net, got %v", skills)
	}
}

func TestDetectSkillsDeterministic(t *testing.T) {
	text := "Python, React, AWS, Docker, PostgreSQL, leadership and communication"
	first := DetectSkills(text)
	second := DetectSkills(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("detection not deterministic: %v vs %v", first, second)
	}
	if !sortedAsc(first) {
		t.Fatalf("results not sorted: %v", first)
	}
}

func TestDetectTools(t *testing.T) {
	tools := DetectTools("Dashboards in grafana, alerts via pagerduty, configs in terraform")
	for _, want := range []string{"Grafana", "PagerDuty", "Terraform"} {
		if !contains(tools, want) {
			t.Errorf("expected %s in %v", want, tools)
		}
	}
}

func TestSkillsFromCertification(t *testing.T) {
	skills := SkillsFromCertification("Certified Kubernetes Administrator (CKA)")
	for _, want := range []string{"Kubernetes", "Docker", "Container Orchestration"} {
		if !contains(skills, want) {
			t.Errorf("expected %s implied, got %v", want, skills)
		}
	}
	if got := SkillsFromCertification("First Aid Certificate"); len(got) != 0 {
		t.Errorf("expected no implications, got %v", got)
	}
}

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sr. Software Engineer", "Senior Software Engineer"},
		{"sr swe", "Senior Software Engineer"},
		{"PM", "Product Manager"},
		{"VP, Engineering", "Vice President, Engineering"},
		{"Software Engineer II", "Software Engineer II"},
		{"  Staff   Engineer  ", "Staff Engineer"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeTitle(tc.in); got != tc.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSeniorityOf(t *testing.T) {
	cases := []struct {
		title string
		want  SeniorityLevel
	}{
		{"Software Engineering Intern", SeniorityIntern},
		{"Junior Developer", SeniorityJunior},
		{"Software Engineer", SeniorityMid},
		{"Senior Software Engineer", SenioritySenior},
		{"Staff Engineer", SeniorityStaff},
		{"Tech Lead", SeniorityLead},
		{"Principal Engineer", SeniorityLead},
		{"Engineering Manager", SeniorityManager},
		{"Senior Engineering Manager", SeniorityManager},
		{"Director of Engineering", SeniorityDirector},
		{"VP of Product", SeniorityExecutive},
		{"Chief Technology Officer", SeniorityExecutive},
		{"", SeniorityUnknown},
	}
	for _, tc := range cases {
		if got := SeniorityOf(tc.title); got != tc.want {
			t.Errorf("SeniorityOf(%q) = %v, want %v", tc.title, got, tc.want)
		}
	}
}

func TestIndustryForCompany(t *testing.T) {
	cases := []struct {
		company string
		want    string
		ok      bool
	}{
		{"Google", "Technology", true},
		{"google inc", "Technology", true},
		{"Goldman Sachs", "Finance", true},
		{"Pfizer, Inc.", "Healthcare", true},
		{"Totally Unknown Startup", "", false},
	}
	for _, tc := range cases {
		got, ok := IndustryForCompany(tc.company)
		if got != tc.want || ok != tc.ok {
			t.Errorf("IndustryForCompany(%q) = (%q, %v), want (%q, %v)", tc.company, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDetectIndustriesRequiresTwoHits(t *testing.T) {
	// One keyword only: no inference.
	if got := DetectIndustries("Worked on patient outreach"); len(got) != 0 {
		t.Fatalf("single keyword must not infer an industry, got %v", got)
	}
	// Two distinct keywords: inferred.
	got := DetectIndustries("Improved patient scheduling across hospital departments")
	if !contains(got, "Healthcare") {
		t.Fatalf("expected Healthcare, got %v", got)
	}
}

func TestTransferable(t *testing.T) {
	cases := []struct {
		have, want string
		ok         bool
	}{
		{"AWS", "Google Cloud", true},
		{"Google Cloud", "AWS", true},
		{"React", "Vue", true},
		{"React", "PostgreSQL", false},
		{"Python", "Kubernetes", false},
	}
	for _, tc := range cases {
		if got := Transferable(tc.have, tc.want); got != tc.ok {
			t.Errorf("Transferable(%q, %q) = %v, want %v", tc.have, tc.want, got, tc.ok)
		}
	}
}

func TestTransferSubstitute(t *testing.T) {
	sub, ok := TransferSubstitute([]string{"Python", "Azure"}, "AWS")
	if !ok || sub != "Azure" {
		t.Fatalf("expected Azure substitute for AWS, got (%q, %v)", sub, ok)
	}
	if _, ok := TransferSubstitute([]string{"Python"}, "AWS"); ok {
		t.Fatalf("expected no substitute")
	}
}

func TestCategoriesCovered(t *testing.T) {
	covered := CategoriesCovered([]string{"Python", "React", "AWS", "Leadership"})
	for _, want := range []SkillCategory{CategoryLanguages, CategoryFrontend, CategoryCloud, CategorySoftSkills} {
		if !covered[want] {
			t.Errorf("expected category %s covered", want)
		}
	}
	if covered[CategoryDatabases] {
		t.Errorf("databases should not be covered")
	}
	if !IsSoftSkill("Leadership") || IsSoftSkill("Python") {
		t.Errorf("soft-skill classification wrong")
	}
}

func TestSkillsBelongToAtMostOneCategory(t *testing.T) {
	seen := make(map[string]SkillCategory)
	for category, skills := range skillCategories {
		for _, skill := range skills {
			if prev, ok := seen[skill]; ok {
				t.Errorf("skill %q in both %s and %s", skill, prev, category)
			}
			seen[skill] = category
		}
	}
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

func sortedAsc(items []string) bool {
	for i := 1; i < len(items); i++ {
		if items[i-1] > items[i] {
			return false
		}
	}
	return true
}
