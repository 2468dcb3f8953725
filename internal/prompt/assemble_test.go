package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soruj/portfolio-assistant/internal/ranking"
	"github.com/soruj/portfolio-assistant/internal/types"
)

func testProfile() types.Profile {
	return types.Profile{
		Name:     "Soruj Mahmud",
		Headline: "Full-Stack Web Developer",
		Bio:      "Builds web apps.",
		Email:    "soruj@example.com",
	}
}

func testRanked() ranking.Ranked {
	return ranking.Ranked{
		Documents: []types.Document{{Content: "Soruj ships fast.", Source: "about"}},
		Projects:  []types.Project{{Title: "Portfolio CMS", Description: "Admin CMS", TechStack: []string{"Next.js"}, Featured: true}},
		Skills:    []types.SkillCategory{{Title: "Frontend", Skills: []string{"React", "TypeScript"}}},
	}
}

func TestChatMessages_Ordering(t *testing.T) {
	history := []types.ConversationTurn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}

	messages := ChatMessages(testProfile(), testRanked(), history, "what does he know?")
	require.Len(t, messages, 5)

	assert.Equal(t, types.RoleSystem, messages[0].Role)
	assert.Equal(t, types.RoleSystem, messages[1].Role)
	assert.Equal(t, types.RoleUser, messages[2].Role)
	assert.Equal(t, "hi", messages[2].Content)
	assert.Equal(t, types.RoleAssistant, messages[3].Role)
	assert.Equal(t, types.RoleUser, messages[4].Role)
	assert.Equal(t, "what does he know?", messages[4].Content)
}

func TestChatMessages_HistoryBoundedToMostRecent(t *testing.T) {
	var history []types.ConversationTurn
	for i := 0; i < 20; i++ {
		history = append(history, types.ConversationTurn{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}

	messages := ChatMessages(testProfile(), testRanked(), history, "q")

	// 2 system + 8 history + 1 current query
	require.Len(t, messages, 2+MaxHistoryTurns+1)

	// Oldest of the retained turns comes first.
	assert.Equal(t, "turn 12", messages[2].Content)
	assert.Equal(t, "turn 19", messages[2+MaxHistoryTurns-1].Content)
}

func TestChatMessages_ContextContainsRankedContent(t *testing.T) {
	messages := ChatMessages(testProfile(), testRanked(), nil, "q")
	context := messages[1].Content

	assert.Contains(t, context, "Portfolio CMS")
	assert.Contains(t, context, "Frontend: React, TypeScript")
	assert.Contains(t, context, "[about] Soruj ships fast.")
	assert.Contains(t, context, "soruj@example.com")
}

func TestChatMessages_LiteralBracesInContentSurvive(t *testing.T) {
	ranked := testRanked()
	ranked.Documents = []types.Document{{
		Content: `Config sample: {"port": 8080} and {placeholder}`,
		Source:  "notes",
	}}

	messages := ChatMessages(testProfile(), ranked, nil, "q")
	assert.Contains(t, messages[1].Content, `{"port": 8080} and {placeholder}`)
}

func TestChatMessages_EmptyContextStillRenders(t *testing.T) {
	messages := ChatMessages(types.Profile{}, ranking.Ranked{}, nil, "anything")
	require.Len(t, messages, 3)

	context := messages[1].Content
	assert.Contains(t, context, "Skills: (none on record)")
	assert.Contains(t, context, "Projects: (none on record)")
	assert.Equal(t, "anything", messages[2].Content)
}

func TestChatMessages_LongDocumentTruncatedInContext(t *testing.T) {
	ranked := testRanked()
	ranked.Documents = []types.Document{{
		Content: strings.Repeat("a", 4000),
		Source:  "big",
	}}

	messages := ChatMessages(testProfile(), ranked, nil, "q")
	assert.Contains(t, messages[1].Content, strings.Repeat("a", maxDocumentChars))
	assert.NotContains(t, messages[1].Content, strings.Repeat("a", maxDocumentChars+1))
}

func TestResumeMessages(t *testing.T) {
	messages := ResumeMessages(testProfile(), testRanked())
	require.Len(t, messages, 3)

	assert.Equal(t, types.RoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, `"professionalSummary"`)
	assert.Equal(t, types.RoleUser, messages[2].Role)
}
