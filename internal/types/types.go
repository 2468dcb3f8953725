// Package types defines the shared data model for the portfolio assistant engine.
package types

// Document is one unit of retrievable knowledge: a file, a serialized record,
// or a static dataset entry. Immutable once constructed.
type Document struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// ScoredItem wraps a candidate with its integer relevance score.
type ScoredItem[T any] struct {
	Item  T
	Score int
}

// ConversationTurn is one prior message in a chat conversation, supplied by the
// caller as read-only history.
type ConversationTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// PromptMessage is one role-tagged entry in an assembled prompt.
type PromptMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// Prompt message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Project is a portfolio project record from the static dataset or the database.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Featured    bool     `json:"featured"`
}

// SkillCategory groups related skills under a category title.
type SkillCategory struct {
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

// Profile holds the portfolio owner's contact and bio information.
type Profile struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// SuggestedProject is one project recommendation inside a ResumePayload.
type SuggestedProject struct {
	Title     string   `json:"title"`
	Impact    string   `json:"impact"`
	TechStack []string `json:"techStack"`
}

// ResumePayload is the strict structured result of résumé generation. It is
// produced only via the structured output parser and is never partially valid.
type ResumePayload struct {
	ProfessionalSummary string             `json:"professionalSummary"`
	KeyHighlights       []string           `json:"keyHighlights"`
	SuggestedProjects   []SuggestedProject `json:"suggestedProjects"`
	OptimizedSkills     []string           `json:"optimizedSkills"`
}
