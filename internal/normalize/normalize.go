// Package normalize holds the static lookup tables and canonicalization
// rules shared by entity extraction, scoring, and gap detection. All
// tables are immutable after package load; nothing here retains state
// between calls.
package normalize

import (
	"sort"
	"strings"
)

// buildVariantIndex inverts a canonical→variants table into a lowercase
// variant→canonical index. Canonical names index themselves.
func buildVariantIndex(table map[string][]string) map[string]string {
	out := make(map[string]string, len(table)*3)
	for canonical, variants := range table {
		out[strings.ToLower(canonical)] = canonical
		for _, v := range variants {
			out[strings.ToLower(v)] = canonical
		}
	}
	return out
}

// sortedCanonicals returns the canonical names of a table sorted
// alphabetically. Detection iterates this slice so results are
// deterministic regardless of map order.
func sortedCanonicals(table map[string][]string) []string {
	out := make([]string, 0, len(table))
	for canonical := range table {
		out = append(out, canonical)
	}
	sort.Strings(out)
	return out
}

var (
	skillCanonicals = sortedCanonicals(skillSynonyms)
	toolCanonicals  = sortedCanonicals(toolVariants)
)

func sortStrings(items []string) {
	sort.Strings(items)
}

// isWordChar reports whether a byte continues a word for boundary checks.
// '+' and '#' count as word characters so that "C" never matches inside
// "C++" or "C#".
func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '+' || b == '#'
}

// containsWholePhrase reports whether needle appears in haystack bounded
// by non-word characters on both sides. Both inputs must already be
// lowercase.
func containsWholePhrase(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)
		beforeOK := idx == 0 || !isWordChar(haystack[idx-1])
		afterOK := end == len(haystack) || !isWordChar(haystack[end])
		// Only apply the side of the boundary check that borders a word
		// character in the needle itself, so "c++" or ".net" still match.
		if !isWordChar(needle[0]) {
			beforeOK = true
		}
		if !isWordChar(needle[len(needle)-1]) {
			afterOK = true
		}
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
		if start >= len(haystack) {
			return false
		}
	}
}

// CanonicalSkill maps a raw skill string to its canonical name. Unknown
// skills pass through trimmed, so user-listed skills are never dropped.
func CanonicalSkill(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := skillIndex[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// KnownSkill reports whether the raw string maps to a canonical skill.
func KnownSkill(raw string) bool {
	_, ok := skillIndex[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// DetectSkills finds every canonical skill whose variant appears as a
// whole word/phrase in the text. Results are alphabetical and unique.
func DetectSkills(text string) []string {
	return detect(text, skillCanonicals, skillSynonyms)
}

// CanonicalTool maps a raw tool string to its canonical name, if known.
func CanonicalTool(raw string) (string, bool) {
	canonical, ok := toolIndex[strings.ToLower(strings.TrimSpace(raw))]
	return canonical, ok
}

// DetectTools finds every canonical tool mentioned in the text.
func DetectTools(text string) []string {
	return detect(text, toolCanonicals, toolVariants)
}

func detect(text string, canonicals []string, table map[string][]string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, canonical := range canonicals {
		if phraseListMatches(lower, canonical, table[canonical]) {
			out = append(out, canonical)
		}
	}
	return out
}

func phraseListMatches(lower, canonical string, variants []string) bool {
	if containsWholePhrase(lower, strings.ToLower(canonical)) {
		return true
	}
	for _, v := range variants {
		if containsWholePhrase(lower, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// MentionsSkill reports whether the text mentions the canonical skill
// under any of its variants. Unknown skills fall back to a whole-phrase
// match on the name itself.
func MentionsSkill(text, canonical string) bool {
	lower := strings.ToLower(text)
	return phraseListMatches(lower, canonical, skillSynonyms[canonical])
}

// SkillsFromCertification returns the canonical skills a certification
// name implies, e.g. a Kubernetes certification implies Kubernetes,
// Docker, and Container Orchestration. Results are alphabetical.
func SkillsFromCertification(name string) []string {
	lower := strings.ToLower(name)
	seen := make(map[string]bool)
	var out []string
	keys := make([]string, 0, len(certificationImplications))
	for k := range certificationImplications {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !strings.Contains(lower, key) {
			continue
		}
		for _, skill := range certificationImplications[key] {
			if !seen[skill] {
				seen[skill] = true
				out = append(out, skill)
			}
		}
	}
	sort.Strings(out)
	return out
}

// NormalizeTitle expands abbreviations in a job title word by word and
// normalizes spacing. "Sr. Eng, Platform" becomes
// "Senior Engineer, Platform".
func NormalizeTitle(title string) string {
	fields := strings.Fields(strings.TrimSpace(title))
	if len(fields) == 0 {
		return ""
	}
	out := make([]string, 0, len(fields))
	for _, word := range fields {
		trailing := ""
		core := word
		if n := len(core); n > 0 && (core[n-1] == ',' || core[n-1] == ';' || core[n-1] == ':') {
			trailing = string(core[n-1])
			core = core[:n-1]
		}
		if expansion, ok := titleAbbreviations[strings.ToLower(core)]; ok {
			out = append(out, expansion+trailing)
			continue
		}
		out = append(out, core+trailing)
	}
	return strings.Join(out, " ")
}

// SeniorityOf infers the ladder rung of a job title from keyword hits,
// highest rung first.
func SeniorityOf(title string) SeniorityLevel {
	lower := strings.ToLower(strings.TrimSpace(title))
	if lower == "" {
		return SeniorityUnknown
	}
	padded := " " + lower + " "
	for _, rung := range seniorityKeywords {
		for _, kw := range rung.Keywords {
			if strings.HasSuffix(kw, " ") || strings.HasSuffix(kw, ".") {
				if strings.Contains(padded, " "+kw) {
					return rung.Level
				}
				continue
			}
			if containsWholePhrase(lower, kw) {
				return rung.Level
			}
		}
	}
	return SeniorityMid
}
