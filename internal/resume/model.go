// Package resume holds the structured resume model consumed by the
// evaluation engine. A ParsedResume is produced upstream by a
// text-extraction collaborator and is treated as read-only here.
package resume

import (
	"strings"
)

// ParseQuality reports how cleanly the source document was extracted.
type ParseQuality string

const (
	ParseQualityHigh   ParseQuality = "high"
	ParseQualityMedium ParseQuality = "medium"
	ParseQualityLow    ParseQuality = "low"
)

// Contact is the personal information block.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// FieldCount reports how many contact fields are filled in.
func (c Contact) FieldCount() int {
	count := 0
	for _, v := range []string{c.Name, c.Email, c.Phone, c.Location, c.LinkedIn, c.Website} {
		if strings.TrimSpace(v) != "" {
			count++
		}
	}
	return count
}

// Experience is one work-history entry, most recent first.
type Experience struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	DurationMonths int      `json:"durationMonths"`
	Bullets        []string `json:"bullets"`
	IsCurrent      bool     `json:"isCurrent"`
}

// Education is one education entry.
type Education struct {
	Degree         string `json:"degree,omitempty"`
	Field          string `json:"field,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
}

// Project is an optional project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Certification is an optional certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// SectionName identifies a labeled section detected in the source document,
// in the order it appeared.
type SectionName string

const (
	SectionSummary        SectionName = "summary"
	SectionExperience     SectionName = "experience"
	SectionSkills         SectionName = "skills"
	SectionEducation      SectionName = "education"
	SectionProjects       SectionName = "projects"
	SectionCertifications SectionName = "certifications"
)

// DocumentMeta carries parse-level facts about the source document.
// Zero values mean "unknown": a zero WordCount is treated as unmeasured,
// and an empty ParseQuality defaults to medium.
type DocumentMeta struct {
	WordCount    int           `json:"wordCount,omitempty"`
	PageCount    int           `json:"pageCount,omitempty"`
	HasTables    bool          `json:"hasTables,omitempty"`
	HasImages    bool          `json:"hasImages,omitempty"`
	ParseQuality ParseQuality  `json:"parseQuality,omitempty"`
	Sections     []SectionName `json:"sections,omitempty"`
}

// Quality returns the parse quality with the documented default applied.
func (m DocumentMeta) Quality() ParseQuality {
	switch m.ParseQuality {
	case ParseQualityHigh, ParseQualityMedium, ParseQualityLow:
		return m.ParseQuality
	default:
		return ParseQualityMedium
	}
}

// ParsedResume is the engine's input. Immutable once produced; the engine
// never mutates it.
type ParsedResume struct {
	Contact        Contact         `json:"contact"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Courses        []string        `json:"courses,omitempty"`
	Meta           DocumentMeta    `json:"meta"`
}

// TotalExperienceMonths sums the duration of every experience entry.
func (r *ParsedResume) TotalExperienceMonths() int {
	total := 0
	for _, exp := range r.Experience {
		if exp.DurationMonths > 0 {
			total += exp.DurationMonths
		}
	}
	return total
}

// TotalExperienceYears is TotalExperienceMonths expressed in years.
func (r *ParsedResume) TotalExperienceYears() float64 {
	return float64(r.TotalExperienceMonths()) / 12.0
}

// BulletCount counts bullets across all experience entries.
func (r *ParsedResume) BulletCount() int {
	count := 0
	for _, exp := range r.Experience {
		count += len(exp.Bullets)
	}
	return count
}

// AllBullets returns every experience bullet in document order.
func (r *ParsedResume) AllBullets() []string {
	out := make([]string, 0, r.BulletCount())
	for _, exp := range r.Experience {
		out = append(out, exp.Bullets...)
	}
	return out
}

// HasSection reports whether the named section was detected in the source.
// Falls back to content presence when section metadata is absent.
func (r *ParsedResume) HasSection(name SectionName) bool {
	for _, s := range r.Meta.Sections {
		if s == name {
			return true
		}
	}
	if len(r.Meta.Sections) > 0 {
		return false
	}
	switch name {
	case SectionExperience:
		return len(r.Experience) > 0
	case SectionSkills:
		return len(r.Skills) > 0
	case SectionEducation:
		return len(r.Education) > 0
	case SectionProjects:
		return len(r.Projects) > 0
	case SectionCertifications:
		return len(r.Certifications) > 0
	default:
		return false
	}
}

// IsEmpty reports whether the resume carries no usable content at all.
func (r *ParsedResume) IsEmpty() bool {
	return len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Skills) == 0 &&
		len(r.Projects) == 0 &&
		len(r.Certifications) == 0
}
