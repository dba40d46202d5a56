package gaps

import (
	"strings"

	"resume-engine/internal/normalize"
	"resume-engine/internal/resume"
)

// Collapsed seniority tiers and their ranks.
const (
	TierEntry  = "entry"
	TierMid    = "mid"
	TierSenior = "senior"
	TierLead   = "lead"
)

// yearsPerRank estimates how many years of experience one collapsed
// rank step represents.
const yearsPerRank = 2.5

var tierRanks = map[string]int{
	TierEntry:  1,
	TierMid:    2,
	TierSenior: 3,
	TierLead:   4,
}

// collapseTier folds the nine-level title ladder into four hiring tiers.
func collapseTier(level normalize.SeniorityLevel) string {
	switch level {
	case normalize.SeniorityIntern, normalize.SeniorityJunior:
		return TierEntry
	case normalize.SeniorityMid:
		return TierMid
	case normalize.SenioritySenior, normalize.SeniorityStaff:
		return TierSenior
	case normalize.SeniorityLead, normalize.SeniorityManager,
		normalize.SeniorityDirector, normalize.SeniorityExecutive:
		return TierLead
	default:
		return ""
	}
}

// tierFromYears is the fallback when no title carries a seniority cue.
func tierFromYears(years float64) string {
	switch {
	case years >= 9:
		return TierLead
	case years >= 5:
		return TierSenior
	case years >= 2:
		return TierMid
	default:
		return TierEntry
	}
}

// CandidateTier estimates the candidate's collapsed tier from the most
// recent title, falling back to total years of experience.
func CandidateTier(r *resume.ParsedResume) string {
	if len(r.Experience) > 0 {
		if tier := collapseTier(normalize.SeniorityOf(r.Experience[0].Title)); tier != "" {
			return tier
		}
	}
	return tierFromYears(r.TotalExperienceYears())
}

func detectSeniorityGap(r *resume.ParsedResume, req JobRequirements) SeniorityGap {
	candidate := CandidateTier(r)
	required := strings.ToLower(strings.TrimSpace(req.Seniority))

	gap := SeniorityGap{
		Alignment:      AlignmentAligned,
		CandidateLevel: candidate,
		RequiredLevel:  required,
	}

	reqRank, known := tierRanks[required]
	if !known {
		// No usable expectation; treat as aligned.
		gap.RequiredLevel = ""
		return gap
	}

	candRank := tierRanks[candidate]
	switch {
	case candRank < reqRank:
		gap.Alignment = AlignmentUnder
		gap.YearGap = yearsPerRank * float64(reqRank-candRank)
	case candRank > reqRank:
		gap.Alignment = AlignmentOver
	}

	// An aligned title with too few actual years is still a gap.
	if gap.Alignment == AlignmentAligned && req.MinYears > 0 {
		if years := r.TotalExperienceYears(); years < float64(req.MinYears) {
			gap.Alignment = AlignmentUnder
			gap.YearGap = float64(req.MinYears) - years
		}
	}
	return gap
}
