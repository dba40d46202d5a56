package resume

import "testing"

func TestTotalExperience(t *testing.T) {
	r := ParsedResume{
		Experience: []Experience{
			{Title: "Engineer", DurationMonths: 24},
			{Title: "Junior Engineer", DurationMonths: 18},
			{Title: "Intern", DurationMonths: -3},
		},
	}
	if got := r.TotalExperienceMonths(); got != 42 {
		t.Fatalf("TotalExperienceMonths = %d, want 42 (negative durations ignored)", got)
	}
	if got := r.TotalExperienceYears(); got != 3.5 {
		t.Fatalf("TotalExperienceYears = %v, want 3.5", got)
	}
}

func TestContactFieldCount(t *testing.T) {
	c := Contact{Name: "Ada", Email: "ada@example.com", Phone: "  "}
	if got := c.FieldCount(); got != 2 {
		t.Fatalf("FieldCount = %d, want 2", got)
	}
}

func TestQualityDefault(t *testing.T) {
	cases := []struct {
		in   ParseQuality
		want ParseQuality
	}{
		{ParseQualityHigh, ParseQualityHigh},
		{ParseQualityLow, ParseQualityLow},
		{"", ParseQualityMedium},
		{"weird", ParseQualityMedium},
	}
	for _, tc := range cases {
		if got := (DocumentMeta{ParseQuality: tc.in}).Quality(); got != tc.want {
			t.Errorf("Quality(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHasSection(t *testing.T) {
	withMeta := ParsedResume{
		Skills: []string{"Go"},
		Meta:   DocumentMeta{Sections: []SectionName{SectionExperience}},
	}
	if !withMeta.HasSection(SectionExperience) {
		t.Fatalf("expected experience section from metadata")
	}
	if withMeta.HasSection(SectionSkills) {
		t.Fatalf("section metadata present, content fallback must not apply")
	}

	noMeta := ParsedResume{Skills: []string{"Go"}}
	if !noMeta.HasSection(SectionSkills) {
		t.Fatalf("expected skills section from content fallback")
	}
	if noMeta.HasSection(SectionEducation) {
		t.Fatalf("did not expect education section")
	}
}

func TestIsEmpty(t *testing.T) {
	var r ParsedResume
	if !r.IsEmpty() {
		t.Fatalf("zero resume should be empty")
	}
	r.Skills = []string{"Go"}
	if r.IsEmpty() {
		t.Fatalf("resume with skills should not be empty")
	}
}
