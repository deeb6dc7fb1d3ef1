// Package types provides type definitions for structured data used throughout the content-optimizer system.
package types

// GenerationRequest represents one content generation job: a primary keyword
// plus the optimization targets the generated article should hit.
type GenerationRequest struct {
	Keyword   string        `json:"keyword" validate:"required,min=1"`
	Title     string        `json:"title,omitempty"`
	Audience  string        `json:"audience,omitempty"`
	Tone      string        `json:"tone,omitempty"`
	Targets   *ExactTargets `json:"targets,omitempty"`
	UserID    string        `json:"user_id,omitempty"`
	ProjectID string        `json:"project_id,omitempty"`
}

// GeneratedContent represents the output of one content generation job,
// with measured post-processing metrics alongside the raw article text.
type GeneratedContent struct {
	Keyword                string  `json:"keyword"`
	Title                  string  `json:"title"`
	Content                string  `json:"content"`
	MetaDescription        string  `json:"meta_description,omitempty"`
	WordCount              int     `json:"word_count"`
	AchievedKeywordDensity float64 `json:"achieved_keyword_density"`
	AchievedHeadingCount   int     `json:"achieved_heading_count"`
	QualityScore           float64 `json:"quality_score"` // 0-100 vs targets
}
