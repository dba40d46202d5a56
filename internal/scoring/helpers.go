package scoring

import (
	"resume-engine/internal/extract"
	"resume-engine/internal/normalize"
)

func normalizeCovered(entities extract.Entities) map[normalize.SkillCategory]bool {
	return normalize.CategoriesCovered(entities.Skills)
}

func normalizeCategoryTotal() int {
	return normalize.CategoryCount()
}

func hasSoftSkill(skills []string) bool {
	for _, s := range skills {
		if normalize.IsSoftSkill(s) {
			return true
		}
	}
	return false
}

// technicalUnion merges skills and tools into one deduplicated slice,
// preserving the sorted order of each input.
func technicalUnion(skills, tools []string) []string {
	seen := make(map[string]bool, len(skills)+len(tools))
	out := make([]string, 0, len(skills)+len(tools))
	for _, s := range skills {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, t := range tools {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
