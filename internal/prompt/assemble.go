package prompt

import (
	"strings"

	"github.com/soruj/portfolio-assistant/internal/ranking"
	"github.com/soruj/portfolio-assistant/internal/types"
)

const (
	// MaxHistoryTurns bounds how many prior conversation turns are included.
	MaxHistoryTurns = 8
	// maxDocumentChars bounds each document's contribution to the context.
	// The full document is still used for scoring, only the prompt is cut.
	maxDocumentChars = 1500
)

// ChatMessages builds the ordered message list for the conversational path:
// system instructions, system context, up to MaxHistoryTurns history turns
// oldest first, then the current query as the final user message.
func ChatMessages(profile types.Profile, ranked ranking.Ranked, history []types.ConversationTurn, query string) []types.PromptMessage {
	name := profile.Name
	if name == "" {
		name = "the portfolio owner"
	}

	messages := []types.PromptMessage{
		{Role: types.RoleSystem, Content: Render(Get("chat_instructions"), map[string]string{
			"name": Escape(name),
		})},
		{Role: types.RoleSystem, Content: contextMessage("chat_context", name, profile, ranked)},
	}

	messages = append(messages, historyMessages(history)...)
	messages = append(messages, types.PromptMessage{Role: types.RoleUser, Content: query})
	return messages
}

// ResumeMessages builds the message list for the structured résumé path.
func ResumeMessages(profile types.Profile, ranked ranking.Ranked) []types.PromptMessage {
	name := profile.Name
	if name == "" {
		name = "the portfolio owner"
	}

	return []types.PromptMessage{
		{Role: types.RoleSystem, Content: Render(Get("resume_instructions"), map[string]string{
			"name": Escape(name),
		})},
		{Role: types.RoleSystem, Content: contextMessage("resume_context", name, profile, ranked)},
		{Role: types.RoleUser, Content: "Generate the resume content now."},
	}
}

// GuidanceMessage is the plain-text reply used when no cloud credential is
// configured. It is a terminal answer, not an error.
func GuidanceMessage() string {
	return Get("chat_guidance")
}

// ApologyMessage is the generic chat reply for provider failures.
func ApologyMessage() string {
	return Get("chat_apology")
}

func contextMessage(templateKey, name string, profile types.Profile, ranked ranking.Ranked) string {
	return Render(Get(templateKey), map[string]string{
		"name":      Escape(name),
		"profile":   Escape(profileBlock(profile)),
		"skills":    Escape(skillsBlock(ranked.Skills)),
		"projects":  Escape(projectsBlock(ranked.Projects)),
		"documents": Escape(documentsBlock(ranked.Documents)),
	})
}

// historyMessages keeps the most recent MaxHistoryTurns turns, oldest first,
// coercing any unexpected role to user.
func historyMessages(history []types.ConversationTurn) []types.PromptMessage {
	if len(history) > MaxHistoryTurns {
		history = history[len(history)-MaxHistoryTurns:]
	}
	messages := make([]types.PromptMessage, 0, len(history))
	for _, turn := range history {
		role := types.RoleUser
		if turn.Role == types.RoleAssistant {
			role = types.RoleAssistant
		}
		messages = append(messages, types.PromptMessage{Role: role, Content: turn.Content})
	}
	return messages
}

func profileBlock(p types.Profile) string {
	var b strings.Builder
	b.WriteString("About:\n")
	if p.Name != "" {
		b.WriteString("Name: " + p.Name + "\n")
	}
	if p.Headline != "" {
		b.WriteString("Headline: " + p.Headline + "\n")
	}
	if p.Bio != "" {
		b.WriteString("Bio: " + p.Bio + "\n")
	}
	if p.Email != "" {
		b.WriteString("Contact: " + p.Email + "\n")
	}
	if p.Location != "" {
		b.WriteString("Location: " + p.Location + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func skillsBlock(skills []types.SkillCategory) string {
	if len(skills) == 0 {
		return "Skills: (none on record)"
	}
	var b strings.Builder
	b.WriteString("Skills:\n")
	for _, c := range skills {
		b.WriteString("- " + c.Title + ": " + strings.Join(c.Skills, ", ") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func projectsBlock(projects []types.Project) string {
	if len(projects) == 0 {
		return "Projects: (none on record)"
	}
	var b strings.Builder
	b.WriteString("Projects:\n")
	for _, p := range projects {
		b.WriteString("- " + p.Title)
		if p.Featured {
			b.WriteString(" (featured)")
		}
		b.WriteString(": " + p.Description)
		if len(p.TechStack) > 0 {
			b.WriteString(" [" + strings.Join(p.TechStack, ", ") + "]")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func documentsBlock(docs []types.Document) string {
	if len(docs) == 0 {
		return "Notes: (none on record)"
	}
	var b strings.Builder
	b.WriteString("Notes:\n")
	for _, d := range docs {
		text := d.Content
		if len(text) > maxDocumentChars {
			text = text[:maxDocumentChars]
		}
		b.WriteString("[" + d.Source + "] " + text + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
