package nlp

import (
	"strings"
)

var aliases = map[string][]string{
	"postgres":   {"postgresql"},
	"postgresql": {"postgres"},
	"k8s":        {"kubernetes"},
	"kubernetes": {"k8s"},
	"golang":     {"go"},
	"go":         {"golang"},
	"js":         {"javascript"},
	"javascript": {"js"},
	"ts":         {"typescript"},
	"typescript": {"ts"},
	"rest":       {"rest api"},
	"rest api":   {"rest"},
	"ci cd":      {"cicd"},
	"cicd":       {"ci cd"},
	"react js":   {"react"},
	"react":      {"react js"},
	"node":       {"node js", "nodejs"},
	"node js":    {"node", "nodejs"},
	"excel":      {"microsoft excel", "ms excel"},
	"seo":        {"search engine optimization"},
}

// Vocabulary is the set of skills DetectSkills looks for in free text.
var Vocabulary = []string{
	"go", "python", "java", "javascript", "typescript", "php", "c#", "c++", "ruby", "kotlin", "swift",
	"react", "vue", "angular", "node js", "laravel", "django", "spring",
	"postgresql", "mysql", "mongodb", "redis", "sql",
	"docker", "kubernetes", "aws", "azure", "gcp", "ci cd", "linux", "git",
	"rest api", "graphql", "figma", "photoshop", "seo", "excel",
	"customer service", "technical support", "virtual assistant", "data entry",
	"bookkeeping", "quickbooks", "project management", "sales", "copywriting", "social media",
}

// SkillVariants returns the normalized skill followed by its known aliases.
func SkillVariants(skill string) []string {
	base := Normalize(skill)
	if base == "" {
		return nil
	}
	out := []string{base}
	seen := map[string]struct{}{base: {}}
	for _, a := range aliases[base] {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// NormalizeSkills trims, lowercases and deduplicates a skill list, keeping the
// first spelling of each skill.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := Normalize(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// MatchSkills checks every required skill against the candidate's declared
// skills and free text (resume). Score is the matched share in [0,1]; an empty
// requirement list scores 0.
func MatchSkills(required, have []string, text string) (matched, missing []string, score float64) {
	haystack := Normalize(strings.Join(have, " ; ") + " " + text)
	declared := make(map[string]struct{}, len(have))
	for _, h := range have {
		declared[Normalize(h)] = struct{}{}
	}

	var total int
	for _, req := range NormalizeSkills(required) {
		total++
		if hasSkill(req, declared, haystack) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	if total == 0 {
		return matched, missing, 0
	}
	return matched, missing, float64(len(matched)) / float64(total)
}

func hasSkill(skill string, declared map[string]struct{}, haystack string) bool {
	for _, v := range SkillVariants(skill) {
		if _, ok := declared[v]; ok {
			return true
		}
		if ContainsPhrase(haystack, v) {
			return true
		}
	}
	return false
}

// DetectSkills returns the vocabulary skills mentioned in text, in vocabulary order.
func DetectSkills(text string) []string {
	normalized := Normalize(text)
	var out []string
	for _, skill := range Vocabulary {
		if hasSkill(skill, nil, normalized) {
			out = append(out, skill)
		}
	}
	return out
}
