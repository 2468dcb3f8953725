// Package ranking scores candidate content against a free-text query using
// lexical term overlap. It stands in for a vector-similarity search: cheap,
// deterministic and sufficient for a single-owner portfolio corpus.
package ranking

import (
	"sort"
	"strings"

	"github.com/soruj/portfolio-assistant/internal/content"
	"github.com/soruj/portfolio-assistant/internal/types"
)

// Per-category caps on how many candidates survive ranking.
const (
	MaxDocuments       = 6
	MaxProjects        = 8
	MaxSkillCategories = 5
)

// featuredBonus is the flat score bonus for projects flagged featured.
const featuredBonus = 1

// Ranked holds the top candidates per category, sorted by descending score.
type Ranked struct {
	Documents []types.Document
	Projects  []types.Project
	Skills    []types.SkillCategory
}

// Rank scores every candidate in the bundle against the query and returns the
// bounded top-K per category. A query with no matchable tokens still returns
// the leading candidates in original order, so prompt assembly degrades to
// generic context instead of an empty one.
func Rank(query string, b content.Bundle) Ranked {
	tokens := Tokenize(query)

	return Ranked{
		Documents: topK(b.Documents, tokens, MaxDocuments,
			func(d types.Document) string { return d.Content },
			nil),
		Projects: topK(b.Projects, tokens, MaxProjects,
			func(p types.Project) string {
				return p.Title + " " + p.Description + " " + strings.Join(p.TechStack, " ")
			},
			func(p types.Project) int {
				if p.Featured {
					return featuredBonus
				}
				return 0
			}),
		Skills: topK(b.Skills, tokens, MaxSkillCategories,
			func(c types.SkillCategory) string {
				return c.Title + " " + strings.Join(c.Skills, " ")
			},
			nil),
	}
}

// Tokenize lower-cases the query and splits it on runs of non-alphanumeric
// characters, discarding empty tokens.
func Tokenize(query string) []string {
	return strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !isAlphanumeric(r)
	})
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Score counts how many query tokens appear as substrings of the candidate
// text, case-insensitively.
func Score(tokens []string, text string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, token := range tokens {
		if strings.Contains(lower, token) {
			score++
		}
	}
	return score
}

// topK scores items, sorts them by descending score with ties keeping their
// original relative order, and truncates to k.
func topK[T any](items []T, tokens []string, k int, textOf func(T) string, bonus func(T) int) []T {
	scored := make([]types.ScoredItem[T], 0, len(items))
	for _, item := range items {
		score := Score(tokens, textOf(item))
		if bonus != nil {
			score += bonus(item)
		}
		scored = append(scored, types.ScoredItem[T]{Item: item, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	result := make([]T, len(scored))
	for i, s := range scored {
		result[i] = s.Item
	}
	return result
}
