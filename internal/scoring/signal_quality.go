package scoring

import (
	"strings"
	"unicode"

	"resume-engine/internal/resume"
)

// Signal-quality sub-score ceilings: 30 structure + 30 writing +
// 25 formatting + 15 completeness.
const (
	signalStructureMax    = 30
	signalWritingMax      = 30
	signalFormattingMax   = 25
	signalCompletenessMax = 15
)

// Optimal bullet length band, in words.
const (
	bulletWordsMin  = 8
	bulletWordsMax  = 24
	runOnBulletWords = 40
)

// Optimal document length band, in words.
const (
	docWordsMin = 300
	docWordsMax = 900
)

// conventionalOrder is the expected relative order of labeled sections.
var conventionalOrder = map[resume.SectionName]int{
	resume.SectionSummary:        0,
	resume.SectionExperience:     1,
	resume.SectionSkills:         2,
	resume.SectionEducation:      3,
	resume.SectionProjects:       4,
	resume.SectionCertifications: 5,
}

// SignalQuality scores how cleanly the resume reads to both ATS software
// and humans. rawText is the resume's raw extracted text; empty means
// unavailable and skips the artifact checks.
func SignalQuality(r *resume.ParsedResume, rawText string) DimensionScore {
	var issues []string

	structure, structureIssues := structureScore(r)
	issues = append(issues, structureIssues...)

	writing, writingIssues := writingScore(r)
	issues = append(issues, writingIssues...)

	formatting, formattingIssues := formattingScore(r, rawText)
	issues = append(issues, formattingIssues...)

	completeness := completenessScore(r)

	return DimensionScore{
		Score: clampScore(structure + writing + formatting + completeness),
		Breakdown: map[string]int{
			"structure":    structure,
			"writing":      writing,
			"formatting":   formatting,
			"completeness": completeness,
		},
		Issues: issues,
	}
}

// structureScore rewards the three essential sections, conventional
// ordering, and clearly labeled headers.
func structureScore(r *resume.ParsedResume) (int, []string) {
	var issues []string
	score := 0

	essentials := []resume.SectionName{
		resume.SectionExperience,
		resume.SectionSkills,
		resume.SectionEducation,
	}
	present := 0
	for _, section := range essentials {
		if r.HasSection(section) {
			present++
			score += 6
		}
	}
	if present < len(essentials) {
		issues = append(issues, IssueMissingSections)
	}

	// Conventional relative order of labeled sections. Without section
	// metadata this is unknowable; give half credit.
	if len(r.Meta.Sections) >= 2 {
		if sectionsInOrder(r.Meta.Sections) {
			score += 6
		}
	} else {
		score += 3
	}

	// Clearly labeled headers: three or more recognized sections.
	if len(r.Meta.Sections) >= 3 {
		score += 6
	} else if len(r.Meta.Sections) == 0 && present == len(essentials) {
		score += 3
	}

	return clampInt(score, 0, signalStructureMax), issues
}

func sectionsInOrder(sections []resume.SectionName) bool {
	last := -1
	for _, s := range sections {
		rank, ok := conventionalOrder[s]
		if !ok {
			continue
		}
		if rank < last {
			return false
		}
		last = rank
	}
	return true
}

// writingScore scores bullet length distribution and subtracts penalties
// for inconsistency, filler, buzzwords, and run-on bullets.
func writingScore(r *resume.ParsedResume) (int, []string) {
	var issues []string
	bullets := r.AllBullets()
	if len(bullets) == 0 {
		return 3, issues
	}

	inBand := 0
	runOns := 0
	capitalized := 0
	endsWithPeriod := 0
	pastTense := 0
	verbLeads := 0
	for _, bullet := range bullets {
		words := len(strings.Fields(bullet))
		if words >= bulletWordsMin && words <= bulletWordsMax {
			inBand++
		}
		if words > runOnBulletWords {
			runOns++
		}
		trimmed := strings.TrimLeft(bullet, "-•*·— \t")
		if trimmed != "" && unicode.IsUpper(rune(trimmed[0])) {
			capitalized++
		}
		if strings.HasSuffix(strings.TrimSpace(bullet), ".") {
			endsWithPeriod++
		}
		if word := leadingWord(bullet); word != "" {
			verbLeads++
			if strings.HasSuffix(word, "ed") {
				pastTense++
			}
		}
	}

	bandRatio := float64(inBand) / float64(len(bullets))
	score := ladder5(bandRatio, [5]int{18, 14, 10, 6, 3}, [4]float64{0.80, 0.60, 0.40, 0.20})
	score += 12 // consistency budget, spent below

	if inconsistent(capitalized, len(bullets)) {
		score -= 3
	}
	if inconsistent(endsWithPeriod, len(bullets)) {
		score -= 3
	}
	if verbLeads >= 4 && inconsistent(pastTense, verbLeads) {
		score -= 3
	}

	text := strings.Join(bullets, "\n")
	filler := CountFillerPhrases(text)
	if filler > 0 {
		score -= clampInt(filler*2, 0, 6)
		issues = append(issues, IssueGenericPhrasing)
	}
	if CountBuzzwords(text) >= 3 {
		score -= 3
	}
	if runOns > 0 {
		score -= clampInt(runOns*2, 0, 4)
	}

	return clampInt(score, 0, signalWritingMax), issues
}

// inconsistent reports a mixed style: between 10% and 90% of items share
// the trait. Small samples are never judged inconsistent.
func inconsistent(count, total int) bool {
	if total < 3 {
		return false
	}
	return count*10 > total && count*10 < total*9
}

// formattingScore starts from the full 25 and subtracts detected
// artifacts and parse problems.
func formattingScore(r *resume.ParsedResume, rawText string) (int, []string) {
	var issues []string
	score := signalFormattingMax

	if rawText != "" {
		if strings.Count(rawText, "\t") >= 5 {
			score -= 4
		}
		if nonASCIIRatio(rawText) > 0.02 {
			score -= 4
		}
		if strings.ContainsAny(rawText, "│┌┐└┘├┤┬┴┼═║╔╗╚╝") {
			score -= 4
		}
	}

	switch r.Meta.Quality() {
	case resume.ParseQualityLow:
		score -= 8
	case resume.ParseQualityMedium:
		score -= 3
	}

	if r.Meta.HasTables {
		score -= 4
	}

	if r.Meta.WordCount > 0 {
		if r.Meta.WordCount < docWordsMin || r.Meta.WordCount > docWordsMax {
			score -= 4
		}
		if r.Meta.WordCount < 150 {
			issues = append(issues, IssueTooShort)
		}
	}

	score = clampInt(score, 0, signalFormattingMax)
	if score < 13 {
		issues = append(issues, IssuePoorFormatting)
	}
	return score, issues
}

func nonASCIIRatio(text string) float64 {
	if text == "" {
		return 0
	}
	nonASCII := 0
	total := 0
	for _, r := range text {
		total++
		if r > unicode.MaxASCII {
			nonASCII++
		}
	}
	return float64(nonASCII) / float64(total)
}

// completenessScore rewards contact detail, experience richness,
// education detail, and a skills section.
func completenessScore(r *resume.ParsedResume) int {
	score := clampInt(r.Contact.FieldCount(), 0, 5)

	if n := len(r.Experience); n > 0 {
		rich := 0
		for _, exp := range r.Experience {
			if len(exp.Bullets) >= 2 && exp.Title != "" && exp.Company != "" {
				rich++
			}
		}
		score += rich * 5 / n
	}

	switch {
	case hasDetailedEducation(r):
		score += 3
	case len(r.Education) > 0:
		score += 2
	}

	if r.HasSection(resume.SectionSkills) {
		score += 2
	}

	return clampInt(score, 0, signalCompletenessMax)
}

func hasDetailedEducation(r *resume.ParsedResume) bool {
	for _, edu := range r.Education {
		if edu.Degree != "" && edu.Institution != "" {
			return true
		}
	}
	return false
}
