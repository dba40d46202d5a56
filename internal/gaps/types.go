// Package gaps compares a parsed resume against job requirements and
// produces a five-part gap analysis: skills, tools, experience types,
// seniority, and industry.
package gaps

// JobRequirements is the structured form of a job description. It may
// be supplied pre-parsed by the caller or derived from free text via
// ParseJobDescription.
type JobRequirements struct {
	Title           string   `json:"title,omitempty"`
	RequiredSkills  []string `json:"requiredSkills"`
	PreferredSkills []string `json:"preferredSkills,omitempty"`
	RequiredTools   []string `json:"requiredTools"`
	PreferredTools  []string `json:"preferredTools,omitempty"`
	// Seniority is a collapsed tier: entry, mid, senior, or lead.
	// Empty means unspecified.
	Seniority       string   `json:"seniority,omitempty"`
	ExperienceTypes []string `json:"experienceTypes,omitempty"`
	DomainKeywords  []string `json:"domainKeywords,omitempty"`
	MinYears        int      `json:"minYears,omitempty"`
	MaxYears        int      `json:"maxYears,omitempty"`
}

// IsEmpty reports whether no requirement field carries content.
func (j JobRequirements) IsEmpty() bool {
	return len(j.RequiredSkills) == 0 && len(j.PreferredSkills) == 0 &&
		len(j.RequiredTools) == 0 && len(j.PreferredTools) == 0 &&
		j.Seniority == "" && len(j.ExperienceTypes) == 0 &&
		len(j.DomainKeywords) == 0 && j.MinYears == 0
}

// Transfer records that a skill the candidate has could substitute for
// a missing required skill.
type Transfer struct {
	Have string `json:"have"`
	Want string `json:"want"`
}

// SkillGap covers required and preferred skills.
type SkillGap struct {
	Matched           []string   `json:"matched"`
	CriticalMissing   []string   `json:"criticalMissing"`
	NiceToHaveMissing []string   `json:"niceToHaveMissing"`
	Transferable      []Transfer `json:"transferable"`
	MatchPercentage   int        `json:"matchPercentage"`
}

// ToolGap covers required and preferred tools.
type ToolGap struct {
	Matched           []string `json:"matched"`
	CriticalMissing   []string `json:"criticalMissing"`
	NiceToHaveMissing []string `json:"niceToHaveMissing"`
	MatchPercentage   int      `json:"matchPercentage"`
}

// ExperienceGap compares required experience types against those the
// resume's bullets demonstrate.
type ExperienceGap struct {
	MatchedTypes  []string `json:"matchedTypes"`
	MissingTypes  []string `json:"missingTypes"`
	CoverageScore int      `json:"coverageScore"`
}

// Alignment describes seniority rank relative to the role.
type Alignment string

const (
	AlignmentUnder   Alignment = "underqualified"
	AlignmentAligned Alignment = "aligned"
	AlignmentOver    Alignment = "overqualified"
)

// SeniorityGap compares the candidate's collapsed seniority tier to the
// role's expected tier.
type SeniorityGap struct {
	Alignment      Alignment `json:"alignment"`
	CandidateLevel string    `json:"candidateLevel"`
	RequiredLevel  string    `json:"requiredLevel,omitempty"`
	// YearGap estimates missing years of experience when underqualified.
	YearGap float64 `json:"yearGap"`
}

// IndustryGap matches the role's domain keywords against inferred
// industries.
type IndustryGap struct {
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	MatchPercentage int      `json:"matchPercentage"`
}

// Summary aggregates the five sub-gaps.
type Summary struct {
	CriticalGapCount   int      `json:"criticalGapCount"`
	AffectedCategories []string `json:"affectedCategories"`
	// OverallMatch is the weighted match percentage across all parts.
	OverallMatch int `json:"overallMatch"`
}

// Analysis is the full gap-detection output.
type Analysis struct {
	Skills     SkillGap      `json:"skills"`
	Tools      ToolGap       `json:"tools"`
	Experience ExperienceGap `json:"experience"`
	Seniority  SeniorityGap  `json:"seniority"`
	Industry   IndustryGap   `json:"industry"`
	Summary    Summary       `json:"summary"`
}
