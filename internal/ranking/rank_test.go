package ranking

import (
	"fmt"
	"testing"

	"github.com/soruj/portfolio-assistant/internal/content"
	"github.com/soruj/portfolio-assistant/internal/types"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple words",
			input:    "What does Soruj know about React?",
			expected: []string{"what", "does", "soruj", "know", "about", "react"},
		},
		{
			name:     "punctuation runs",
			input:    "node.js, websockets!!",
			expected: []string{"node", "js", "websockets"},
		},
		{
			name:     "punctuation only",
			input:    "?!... ---",
			expected: []string{},
		},
		{
			name:     "empty query",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Tokenize(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestScore(t *testing.T) {
	tokens := []string{"react", "postgres", "missing"}
	score := Score(tokens, "Built a React dashboard on PostgreSQL")
	if score != 2 {
		t.Errorf("Score() = %d, want 2", score)
	}
}

func TestRank_CategoryCaps(t *testing.T) {
	var b content.Bundle
	for i := 0; i < 20; i++ {
		b.Documents = append(b.Documents, types.Document{Content: fmt.Sprintf("doc %d react", i), Source: "test"})
		b.Projects = append(b.Projects, types.Project{Title: fmt.Sprintf("Project %d", i), Description: "react app"})
		b.Skills = append(b.Skills, types.SkillCategory{Title: fmt.Sprintf("Category %d", i), Skills: []string{"React"}})
	}

	ranked := Rank("react", b)

	if len(ranked.Documents) != MaxDocuments {
		t.Errorf("got %d documents, want %d", len(ranked.Documents), MaxDocuments)
	}
	if len(ranked.Projects) != MaxProjects {
		t.Errorf("got %d projects, want %d", len(ranked.Projects), MaxProjects)
	}
	if len(ranked.Skills) != MaxSkillCategories {
		t.Errorf("got %d skill categories, want %d", len(ranked.Skills), MaxSkillCategories)
	}
}

func TestRank_StableOrderOnTies(t *testing.T) {
	b := content.Bundle{
		Documents: []types.Document{
			{Content: "alpha text", Source: "first"},
			{Content: "beta text", Source: "second"},
			{Content: "gamma text", Source: "third"},
		},
	}

	// Every document scores 1 on "text": original order must survive.
	ranked := Rank("text", b)
	want := []string{"first", "second", "third"}
	for i, doc := range ranked.Documents {
		if doc.Source != want[i] {
			t.Errorf("position %d = %q, want %q", i, doc.Source, want[i])
		}
	}
}

func TestRank_FeaturedBonusBreaksTie(t *testing.T) {
	b := content.Bundle{
		Projects: []types.Project{
			{Title: "Plain", Description: "react app"},
			{Title: "Starred", Description: "react app", Featured: true},
		},
	}

	ranked := Rank("react", b)
	if ranked.Projects[0].Title != "Starred" {
		t.Errorf("featured project should rank first, got %q", ranked.Projects[0].Title)
	}
}

func TestRank_ZeroTokenQueryKeepsOriginalOrder(t *testing.T) {
	b := content.Bundle{
		Projects: []types.Project{
			{Title: "One"},
			{Title: "Two"},
			{Title: "Three"},
		},
	}

	ranked := Rank("?!", b)
	if len(ranked.Projects) != 3 {
		t.Fatalf("got %d projects, want 3", len(ranked.Projects))
	}
	// Featured bonus aside, all scores are zero: original order is preserved
	// and ranking must not error or return nothing.
	want := []string{"One", "Two", "Three"}
	for i, p := range ranked.Projects {
		if p.Title != want[i] {
			t.Errorf("position %d = %q, want %q", i, p.Title, want[i])
		}
	}
}

func TestRank_EmptyBundle(t *testing.T) {
	ranked := Rank("anything", content.Bundle{})
	if len(ranked.Documents) != 0 || len(ranked.Projects) != 0 || len(ranked.Skills) != 0 {
		t.Errorf("empty bundle should rank to empty categories, got %+v", ranked)
	}
}
