package scoring

import (
	"regexp"
	"strings"
)

// metricPatterns decide whether a bullet carries a quantified result.
// A bullet "has a metric" if any pattern matches.
var metricPatterns = []*regexp.Regexp{
	// Percentages: "25%", "3.5 %", "25 percent"
	regexp.MustCompile(`\d+(\.\d+)?\s?(%|percent)`),
	// Currency: "$1.2M", "€500k", "£3,000", "USD 40000"
	regexp.MustCompile(`[$€£¥]\s?\d`),
	regexp.MustCompile(`(?i)\b(usd|eur|gbp)\s?\d`),
	// Counts with units: "2M users", "40 engineers", "500+ customers"
	regexp.MustCompile(`(?i)\d[\d,.]*\s?(k|m|b|\+)?\s?(users|customers|clients|subscribers|visitors|downloads|requests|transactions|records|accounts|orders|stores|teams|engineers|developers|people|employees|reports|markets|countries|regions|endpoints|services|releases|deployments)\b`),
	// Team sizing: "team of 8", "team of twelve"
	regexp.MustCompile(`(?i)\bteam of \d+`),
	// Comparative phrasing: "increased revenue by 40", "cut latency by half"
	regexp.MustCompile(`(?i)\b(increased|decreased|reduced|improved|grew|cut|boosted|raised|lowered|accelerated|shortened|doubled|tripled)\b[^.]{0,40}\bby\s+(\d|half|a third|two-thirds)`),
	// Multipliers and time savings: "3x faster", "saved 10 hours"
	regexp.MustCompile(`(?i)\b\d+(\.\d+)?x\b`),
	regexp.MustCompile(`(?i)\bsav(ed|ing)\s[^.]{0,20}\d+\s?(hours|days|weeks|minutes)`),
}

// HasMetric reports whether a bullet matches any metric pattern.
func HasMetric(bullet string) bool {
	for _, p := range metricPatterns {
		if p.MatchString(bullet) {
			return true
		}
	}
	return false
}

// strongVerbs are action verbs signalling ownership and results when they
// lead a bullet.
var strongVerbs = map[string]bool{
	"achieved": true, "accelerated": true, "architected": true,
	"automated": true, "built": true, "boosted": true, "championed": true,
	"created": true, "cut": true, "delivered": true, "designed": true,
	"developed": true, "directed": true, "doubled": true, "drove": true,
	"eliminated": true, "engineered": true, "established": true,
	"executed": true, "expanded": true, "founded": true, "generated": true,
	"grew": true, "implemented": true, "improved": true, "increased": true,
	"initiated": true, "launched": true, "led": true, "managed": true,
	"mentored": true, "migrated": true, "modernized": true,
	"negotiated": true, "optimized": true, "orchestrated": true,
	"overhauled": true, "owned": true, "pioneered": true, "produced": true,
	"redesigned": true, "reduced": true, "refactored": true,
	"re-architected": true, "scaled": true, "secured": true, "shipped": true,
	"simplified": true, "spearheaded": true, "streamlined": true,
	"transformed": true, "tripled": true, "won": true,
}

// weakVerbs and weak leading phrases signal passive, duty-style bullets.
var weakVerbs = map[string]bool{
	"helped": true, "worked": true, "assisted": true, "participated": true,
	"supported": true, "involved": true, "contributed": true,
	"responsible": true, "tasked": true, "handled": true, "used": true,
	"utilized": true, "attended": true, "followed": true, "learned": true,
	"was": true, "were": true, "did": true, "made": true,
}

// VerbStrength classifies the leading verb of a bullet.
type VerbStrength int

const (
	VerbNeutral VerbStrength = iota
	VerbStrong
	VerbWeak
)

// LeadingVerbStrength classifies a bullet by its first word, skipping a
// leading dash or bullet glyph.
func LeadingVerbStrength(bullet string) VerbStrength {
	word := leadingWord(bullet)
	if word == "" {
		return VerbNeutral
	}
	if strongVerbs[word] {
		return VerbStrong
	}
	if weakVerbs[word] {
		return VerbWeak
	}
	return VerbNeutral
}

func leadingWord(bullet string) string {
	trimmed := strings.TrimLeft(bullet, "-•*·— \t")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Trim(fields[0], ".,;:"))
}

// scopePatterns signal leadership, scale, ownership, or broader impact.
var scopePatterns = []*regexp.Regexp{
	// Leadership
	regexp.MustCompile(`(?i)\b(led|managed|mentored|directed|coordinated|oversaw|supervised|coached|headed)\b`),
	// Scale
	regexp.MustCompile(`(?i)\b(million|billion|enterprise|company-wide|org-wide|global|at scale|high-traffic|large-scale|distributed|cross-team|cross-functional|organization-wide)\b`),
	// Ownership
	regexp.MustCompile(`(?i)\b(owned|spearheaded|drove|launched|initiated|founded|established|architected|end-to-end)\b`),
	// Impact
	regexp.MustCompile(`(?i)\b(resulting in|leading to|enabling|saving|generating|delivering|unlocking|which reduced|which increased)\b`),
}

// ScopeHits counts how many scope pattern groups a bullet matches.
func ScopeHits(bullet string) int {
	hits := 0
	for _, p := range scopePatterns {
		if p.MatchString(bullet) {
			hits++
		}
	}
	return hits
}

// fillerPhrases are generic duty phrases that weaken writing quality.
var fillerPhrases = []string{
	"responsible for", "worked on", "helped with", "assisted with",
	"involved in", "participated in", "duties included", "tasked with",
	"in charge of", "various tasks", "as needed", "day-to-day",
}

// buzzwords are self-descriptions with no evidentiary value.
var buzzwords = []string{
	"team player", "hard-working", "hardworking", "detail-oriented",
	"go-getter", "self-starter", "think outside the box", "synergy",
	"results-driven", "dynamic", "passionate", "motivated individual",
	"proven track record", "go-to person",
}

// CountFillerPhrases counts filler phrase occurrences in the text.
func CountFillerPhrases(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, phrase := range fillerPhrases {
		count += strings.Count(lower, phrase)
	}
	return count
}

// CountBuzzwords counts buzzword occurrences in the text.
func CountBuzzwords(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, phrase := range buzzwords {
		count += strings.Count(lower, phrase)
	}
	return count
}

// progressionPhrases signal an in-role promotion or growth narrative.
var progressionPhrases = []string{
	"promoted to", "promoted from", "grew from", "advanced to",
	"progressed to", "expanded my role", "took over", "stepped up to",
	"moved up to",
}

// CountProgressionPhrases counts promotion-language occurrences.
func CountProgressionPhrases(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, phrase := range progressionPhrases {
		count += strings.Count(lower, phrase)
	}
	return count
}

// learningPhrases signal deliberate upskilling in bullet text.
var learningPhrases = []string{
	"certified", "certification", "completed course", "coursework",
	"trained in", "learned", "studied", "self-taught", "upskilled",
	"bootcamp", "workshop", "attended training",
}

// CountLearningPhrases counts learning-language occurrences.
func CountLearningPhrases(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, phrase := range learningPhrases {
		count += strings.Count(lower, phrase)
	}
	return count
}

// teamSizePattern extracts "team of N" sizes for scope-expansion checks.
var teamSizePattern = regexp.MustCompile(`(?i)\bteam of (\d+)`)

// dollarPattern extracts dollar figures like "$1.5M" or "$300k".
var dollarPattern = regexp.MustCompile(`[$]\s?(\d+(?:[.,]\d+)?)\s?([kmb])?`)
