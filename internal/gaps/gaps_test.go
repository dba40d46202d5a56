package gaps

import (
	"reflect"
	"testing"

	"resume-engine/internal/extract"
	"resume-engine/internal/resume"
)

func candidateResume() *resume.ParsedResume {
	return &resume.ParsedResume{
		Skills: []string{"Go", "GCP", "PostgreSQL", "Docker"},
		Experience: []resume.Experience{
			{Title: "Senior Engineer", Company: "Stripe", DurationMonths: 36, Bullets: []string{
				"Led a team of 4 building the payments reconciliation service",
				"Analyzed settlement data and built dashboards for finance stakeholders",
			}},
			{Title: "Engineer", Company: "Acme", DurationMonths: 36, Bullets: []string{
				"Built Go services on GCP with PostgreSQL and Docker",
			}},
		},
	}
}

func TestDetectSkillGapWithTransferable(t *testing.T) {
	r := candidateResume()
	req := JobRequirements{
		RequiredSkills:  []string{"Go", "AWS", "Kafka"},
		PreferredSkills: []string{"Terraform"},
	}
	a := Detect(r, extract.Extract(r), req)

	if !reflect.DeepEqual(a.Skills.Matched, []string{"Go"}) {
		t.Errorf("matched = %v", a.Skills.Matched)
	}
	if !reflect.DeepEqual(a.Skills.CriticalMissing, []string{"AWS", "Apache Kafka"}) {
		t.Errorf("critical missing = %v", a.Skills.CriticalMissing)
	}
	if !reflect.DeepEqual(a.Skills.NiceToHaveMissing, []string{"Terraform"}) {
		t.Errorf("nice to have = %v", a.Skills.NiceToHaveMissing)
	}
	if a.Skills.MatchPercentage != 33 {
		t.Errorf("match = %d, want 33", a.Skills.MatchPercentage)
	}

	// GCP experience should surface as a substitute for missing AWS.
	found := false
	for _, tr := range a.Skills.Transferable {
		if tr.Want == "AWS" && tr.Have == "Google Cloud" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected GCP -> AWS transfer, got %v", a.Skills.Transferable)
	}
}

func TestDetectToolGapCountsSkillListEntries(t *testing.T) {
	r := candidateResume()
	req := JobRequirements{RequiredTools: []string{"Docker", "Jenkins"}}
	a := Detect(r, extract.Extract(r), req)

	if !reflect.DeepEqual(a.Tools.Matched, []string{"Docker"}) {
		t.Errorf("matched = %v", a.Tools.Matched)
	}
	if a.Tools.MatchPercentage != 50 {
		t.Errorf("match = %d, want 50", a.Tools.MatchPercentage)
	}
}

func TestDetectWithNoRequirementsIsFullMatch(t *testing.T) {
	r := candidateResume()
	a := Detect(r, extract.Extract(r), JobRequirements{})

	if a.Skills.MatchPercentage != 100 || a.Tools.MatchPercentage != 100 ||
		a.Experience.CoverageScore != 100 || a.Industry.MatchPercentage != 100 {
		t.Fatalf("empty requirements should match fully: %+v", a)
	}
	if a.Summary.CriticalGapCount != 0 {
		t.Errorf("critical gaps = %d", a.Summary.CriticalGapCount)
	}
	if a.Summary.OverallMatch != 100 {
		t.Errorf("overall = %d", a.Summary.OverallMatch)
	}
}

func TestDetectExperienceTypes(t *testing.T) {
	types := DetectExperienceTypes(
		"Led a team of 5. Partnered with product stakeholders. Analyzed funnel dashboards.")
	want := []string{ExperienceLeadership, ExperienceCrossFunctional, ExperienceDataAnalysis}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
}

func TestDetectExperienceGapCoverage(t *testing.T) {
	r := candidateResume()
	req := JobRequirements{ExperienceTypes: []string{
		ExperienceLeadership, ExperienceDataAnalysis, ExperienceCustomerFacing, ExperienceProjectMgmt,
	}}
	a := Detect(r, extract.Extract(r), req)

	if a.Experience.CoverageScore != 50 {
		t.Errorf("coverage = %d, want 50 (%v matched, %v missing)",
			a.Experience.CoverageScore, a.Experience.MatchedTypes, a.Experience.MissingTypes)
	}
}

func TestSeniorityAlignment(t *testing.T) {
	senior := candidateResume()
	entry := &resume.ParsedResume{
		Experience: []resume.Experience{{Title: "Junior Developer", DurationMonths: 12}},
	}

	cases := []struct {
		name     string
		r        *resume.ParsedResume
		required string
		want     Alignment
		yearGap  float64
	}{
		{"aligned", senior, TierSenior, AlignmentAligned, 0},
		{"overqualified", senior, TierMid, AlignmentOver, 0},
		{"under by one rank", entry, TierMid, AlignmentUnder, 2.5},
		{"under by two ranks", entry, TierSenior, AlignmentUnder, 5},
		{"no expectation", senior, "", AlignmentAligned, 0},
	}
	for _, tc := range cases {
		gap := detectSeniorityGap(tc.r, JobRequirements{Seniority: tc.required})
		if gap.Alignment != tc.want {
			t.Errorf("%s: alignment = %s, want %s", tc.name, gap.Alignment, tc.want)
		}
		if gap.YearGap != tc.yearGap {
			t.Errorf("%s: year gap = %.1f, want %.1f", tc.name, gap.YearGap, tc.yearGap)
		}
	}
}

func TestSeniorityMinYearsDowngrade(t *testing.T) {
	// Senior title but only 3 years against an 8-year minimum.
	r := &resume.ParsedResume{
		Experience: []resume.Experience{{Title: "Senior Engineer", DurationMonths: 36}},
	}
	gap := detectSeniorityGap(r, JobRequirements{Seniority: TierSenior, MinYears: 8})
	if gap.Alignment != AlignmentUnder {
		t.Fatalf("alignment = %s, want %s", gap.Alignment, AlignmentUnder)
	}
	if gap.YearGap != 5 {
		t.Errorf("year gap = %.1f, want 5", gap.YearGap)
	}
}

func TestIndustryMatchingBothDirections(t *testing.T) {
	industries := []string{"fintech", "e-commerce"}
	cases := []struct {
		keyword string
		want    bool
	}{
		{"fintech", true},
		{"Fintech", true},
		{"payments fintech startup", true},
		{"commerce", true},
		{"healthcare", false},
	}
	for _, tc := range cases {
		if got := industryMatches(industries, tc.keyword); got != tc.want {
			t.Errorf("industryMatches(%q) = %v, want %v", tc.keyword, got, tc.want)
		}
	}
}

func TestSummaryWeighting(t *testing.T) {
	a := Analysis{
		Skills:     SkillGap{MatchPercentage: 50, CriticalMissing: []string{"AWS"}},
		Tools:      ToolGap{MatchPercentage: 100},
		Experience: ExperienceGap{CoverageScore: 100},
		Seniority:  SeniorityGap{Alignment: AlignmentAligned},
		Industry:   IndustryGap{MatchPercentage: 100},
	}
	s := summarize(a)
	// 0.4*50 + 0.2*100 + 0.2*100 + 0.1*100 + 0.1*100 = 80
	if s.OverallMatch != 80 {
		t.Errorf("overall = %d, want 80", s.OverallMatch)
	}
	if s.CriticalGapCount != 1 {
		t.Errorf("critical = %d, want 1", s.CriticalGapCount)
	}
	if !reflect.DeepEqual(s.AffectedCategories, []string{"skills"}) {
		t.Errorf("affected = %v", s.AffectedCategories)
	}
}

func TestSummaryCountsUnderqualifiedAndIndustry(t *testing.T) {
	a := Analysis{
		Skills:     SkillGap{MatchPercentage: 100},
		Tools:      ToolGap{MatchPercentage: 100},
		Experience: ExperienceGap{CoverageScore: 100},
		Seniority:  SeniorityGap{Alignment: AlignmentUnder, YearGap: 2.5},
		Industry: IndustryGap{
			MatchPercentage: 0,
			MissingKeywords: []string{"healthcare", "hipaa"},
		},
	}
	s := summarize(a)
	if s.CriticalGapCount != 3 {
		t.Errorf("critical = %d, want 3 (seniority + 2 industry keywords)", s.CriticalGapCount)
	}
	// 0.4*100 + 0.2*100 + 0.2*100 + 0.1*60 + 0.1*0 = 86
	if s.OverallMatch != 86 {
		t.Errorf("overall = %d, want 86", s.OverallMatch)
	}
}

func TestDetectDeterminism(t *testing.T) {
	r := candidateResume()
	req := JobRequirements{
		RequiredSkills: []string{"Go", "AWS", "Kafka"},
		RequiredTools:  []string{"Docker", "Jenkins"},
		Seniority:      TierSenior,
		DomainKeywords: []string{"fintech"},
	}
	first := Detect(r, extract.Extract(r), req)
	second := Detect(r, extract.Extract(r), req)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same input produced different analyses")
	}
}
