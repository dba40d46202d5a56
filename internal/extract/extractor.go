// Package extract derives canonical entities from a parsed resume. The
// extractor is deterministic and side-effect free; entities are recomputed
// on every evaluation and never persisted.
package extract

import (
	"sort"
	"strings"

	"resume-engine/internal/normalize"
	"resume-engine/internal/resume"
)

// sampleBulletLimit caps the representative bullet sample carried on the
// extracted entities.
const sampleBulletLimit = 8

// Entities is the canonical view of a resume used by scoring and gap
// detection.
type Entities struct {
	Skills         []string `json:"skills"`
	Tools          []string `json:"tools"`
	Titles         []string `json:"titles"`
	Companies      []string `json:"companies"`
	Industries     []string `json:"industries"`
	SampleBullets  []string `json:"sampleBullets"`
	Certifications []string `json:"certifications"`
}

// TechnicalItemCount is the size of the union of skills and tools.
func (e Entities) TechnicalItemCount() int {
	seen := make(map[string]bool, len(e.Skills)+len(e.Tools))
	for _, s := range e.Skills {
		seen[s] = true
	}
	for _, t := range e.Tools {
		seen[t] = true
	}
	return len(seen)
}

// Extract builds Entities from a parsed resume.
func Extract(r *resume.ParsedResume) Entities {
	combined := combinedText(r)

	return Entities{
		Skills:         extractSkills(r, combined),
		Tools:          extractTools(r, combined),
		Titles:         extractTitles(r),
		Companies:      extractCompanies(r),
		Industries:     extractIndustries(r, combined),
		SampleBullets:  sampleBullets(r),
		Certifications: certificationNames(r),
	}
}

// combinedText joins every bullet and project description into one blob
// for keyword detection.
func combinedText(r *resume.ParsedResume) string {
	var b strings.Builder
	for _, exp := range r.Experience {
		for _, bullet := range exp.Bullets {
			b.WriteString(bullet)
			b.WriteString("\n")
		}
	}
	for _, proj := range r.Projects {
		b.WriteString(proj.Name)
		b.WriteString("\n")
		b.WriteString(proj.Description)
		b.WriteString("\n")
		for _, tech := range proj.Technologies {
			b.WriteString(tech)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// extractSkills unions the explicit skill list, skills detected in bullet
// and project text, and skills implied by certifications. Everything is
// canonicalized before dedup; results are alphabetical.
func extractSkills(r *resume.ParsedResume, combined string) []string {
	seen := make(map[string]bool)
	add := func(skill string) {
		if skill != "" && !seen[skill] {
			seen[skill] = true
		}
	}

	for _, raw := range r.Skills {
		add(normalize.CanonicalSkill(raw))
	}
	for _, detected := range normalize.DetectSkills(combined) {
		add(detected)
	}
	for _, cert := range r.Certifications {
		for _, implied := range normalize.SkillsFromCertification(cert.Name) {
			add(implied)
		}
	}

	out := make([]string, 0, len(seen))
	for skill := range seen {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// extractTools detects tools in the explicit skill list and the combined
// text via the tool variant table.
func extractTools(r *resume.ParsedResume, combined string) []string {
	seen := make(map[string]bool)
	for _, raw := range r.Skills {
		if canonical, ok := normalize.CanonicalTool(raw); ok {
			seen[canonical] = true
		}
	}
	for _, detected := range normalize.DetectTools(combined) {
		seen[detected] = true
	}
	out := make([]string, 0, len(seen))
	for tool := range seen {
		out = append(out, tool)
	}
	sort.Strings(out)
	return out
}

// extractTitles normalizes and dedupes experience titles, order preserved.
func extractTitles(r *resume.ParsedResume) []string {
	seen := make(map[string]bool)
	var out []string
	for _, exp := range r.Experience {
		title := normalize.NormalizeTitle(exp.Title)
		if title == "" {
			continue
		}
		key := strings.ToLower(title)
		if !seen[key] {
			seen[key] = true
			out = append(out, title)
		}
	}
	return out
}

// extractCompanies takes company names verbatim, order preserved, deduped.
func extractCompanies(r *resume.ParsedResume) []string {
	seen := make(map[string]bool)
	var out []string
	for _, exp := range r.Experience {
		company := strings.TrimSpace(exp.Company)
		if company == "" {
			continue
		}
		key := strings.ToLower(company)
		if !seen[key] {
			seen[key] = true
			out = append(out, company)
		}
	}
	return out
}

// extractIndustries unions known company→industry lookups with keyword
// density detection over the combined text. Sorted for determinism.
func extractIndustries(r *resume.ParsedResume, combined string) []string {
	seen := make(map[string]bool)
	for _, exp := range r.Experience {
		if industry, ok := normalize.IndustryForCompany(exp.Company); ok {
			seen[industry] = true
		}
	}
	for _, industry := range normalize.DetectIndustries(combined) {
		seen[industry] = true
	}
	out := make([]string, 0, len(seen))
	for industry := range seen {
		out = append(out, industry)
	}
	sort.Strings(out)
	return out
}

// sampleBullets picks a representative sample: the first bullet of each
// role, then second bullets, until the cap is reached.
func sampleBullets(r *resume.ParsedResume) []string {
	var out []string
	for round := 0; len(out) < sampleBulletLimit; round++ {
		added := false
		for _, exp := range r.Experience {
			if round < len(exp.Bullets) {
				out = append(out, exp.Bullets[round])
				added = true
				if len(out) == sampleBulletLimit {
					break
				}
			}
		}
		if !added {
			break
		}
	}
	return out
}

func certificationNames(r *resume.ParsedResume) []string {
	var out []string
	for _, cert := range r.Certifications {
		if name := strings.TrimSpace(cert.Name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// MentionedInBullets reports how many of the given canonical skills appear
// somewhere in the resume's experience bullets. Used by the skill-capital
// depth sub-score to find skills never demonstrated in context.
func MentionedInBullets(r *resume.ParsedResume, skills []string) (mentioned int, missing []string) {
	text := strings.Join(r.AllBullets(), "\n")
	for _, skill := range skills {
		if normalize.MentionsSkill(text, skill) {
			mentioned++
		} else {
			missing = append(missing, skill)
		}
	}
	return mentioned, missing
}
