package gaps

import (
	"sort"
	"strings"

	"resume-engine/internal/resume"
)

// Experience type names.
const (
	ExperienceLeadership      = "leadership"
	ExperienceCrossFunctional = "cross-functional"
	ExperienceCustomerFacing  = "customer-facing"
	ExperienceArchitecture    = "technical-architecture"
	ExperienceDataAnalysis    = "data-analysis"
	ExperienceProjectMgmt     = "project-management"
)

// experienceTypeKeywords maps each experience type to the phrases that
// evidence it in bullet text. Matching is case-insensitive substring.
var experienceTypeKeywords = map[string][]string{
	ExperienceLeadership: {
		"led ", "leading ", "managed ", "managing ", "mentored", "coached",
		"supervised", "team of", "direct reports", "hired",
	},
	ExperienceCrossFunctional: {
		"cross-functional", "cross functional", "collaborated with",
		"partnered with", "stakeholders", "across teams", "with design",
		"with product", "with marketing", "with sales",
	},
	ExperienceCustomerFacing: {
		"customer", "client", "end user", "end-user", "account",
		"user interviews", "support tickets", "onboarded",
	},
	ExperienceArchitecture: {
		"architected", "architecture", "system design", "designed the",
		"redesigned", "scalab", "distributed system", "microservice",
		"high availability", "platform",
	},
	ExperienceDataAnalysis: {
		"analyzed", "analysis", "analytics", "dashboard", "a/b test",
		"experiment", "data-driven", "sql quer", "reporting",
	},
	ExperienceProjectMgmt: {
		"roadmap", "coordinated", "scoped", "milestones", "sprint",
		"on time", "on schedule", "prioritized", "project plan",
		"delivered the",
	},
}

// experienceTypeOrder fixes iteration order so results are stable.
var experienceTypeOrder = []string{
	ExperienceLeadership,
	ExperienceCrossFunctional,
	ExperienceCustomerFacing,
	ExperienceArchitecture,
	ExperienceDataAnalysis,
	ExperienceProjectMgmt,
}

// DetectExperienceTypes returns the experience types evidenced in the
// given text, in ladder order.
func DetectExperienceTypes(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, typ := range experienceTypeOrder {
		for _, kw := range experienceTypeKeywords[typ] {
			if strings.Contains(lower, kw) {
				out = append(out, typ)
				break
			}
		}
	}
	return out
}

func detectExperienceGap(r *resume.ParsedResume, req JobRequirements) ExperienceGap {
	if len(req.ExperienceTypes) == 0 {
		return ExperienceGap{CoverageScore: 100}
	}

	present := map[string]bool{}
	for _, typ := range DetectExperienceTypes(strings.Join(r.AllBullets(), "\n")) {
		present[typ] = true
	}

	var matched, missing []string
	seen := map[string]bool{}
	for _, raw := range req.ExperienceTypes {
		typ := strings.ToLower(strings.TrimSpace(raw))
		if typ == "" || seen[typ] {
			continue
		}
		seen[typ] = true
		if present[typ] {
			matched = append(matched, typ)
		} else {
			missing = append(missing, typ)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return ExperienceGap{
		MatchedTypes:  matched,
		MissingTypes:  missing,
		CoverageScore: matchPercentage(len(matched), len(matched)+len(missing)),
	}
}
