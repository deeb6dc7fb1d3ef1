// Package generate produces keyword-optimized article drafts with an LLM
// and measures how closely each draft hit its benchmark-derived targets.
package generate

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/marisa/content-optimizer/internal/analyze"
	"github.com/marisa/content-optimizer/internal/llm"
	"github.com/marisa/content-optimizer/internal/types"
)

// Generator turns generation requests into measured article drafts.
type Generator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewGenerator creates a Generator backed by the given LLM client. Drafts
// use the advanced tier since they must satisfy precise numeric targets.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{
		client: client,
		tier:   llm.TierAdvanced,
	}
}

// draftResponse is the expected JSON shape of an article draft.
type draftResponse struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	MetaDescription string `json:"meta_description"`
}

// Generate produces one article draft for a request. The returned content
// carries measured word count, keyword density, and heading count so callers
// can judge target adherence without re-analyzing the text.
func (g *Generator) Generate(ctx context.Context, req types.GenerationRequest) (*types.GeneratedContent, error) {
	if strings.TrimSpace(req.Keyword) == "" {
		return nil, &Error{Keyword: req.Keyword, Message: "keyword is required"}
	}

	prompt := llm.BuildExtractionPrompt(llm.ArticleDraftSchema(), buildBrief(req))

	jsonResp, err := g.client.GenerateJSON(ctx, prompt, g.tier)
	if err != nil {
		return nil, &Error{Keyword: req.Keyword, Message: "LLM generation failed", Cause: err}
	}

	var draft draftResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(jsonResp)), &draft); err != nil {
		return nil, &Error{Keyword: req.Keyword, Message: "failed to parse draft response", Cause: err}
	}
	if strings.TrimSpace(draft.Content) == "" {
		return nil, &Error{Keyword: req.Keyword, Message: "draft has no content"}
	}

	content := &types.GeneratedContent{
		Keyword:                req.Keyword,
		Title:                  draft.Title,
		Content:                draft.Content,
		MetaDescription:        draft.MetaDescription,
		WordCount:              analyze.CountWords(draft.Content),
		AchievedKeywordDensity: analyze.KeywordDensity(draft.Content, req.Keyword),
		AchievedHeadingCount:   analyze.OptimizedMarkdownHeadingCount(draft.Content, req.Keyword),
	}
	content.QualityScore = qualityScore(content, req.Targets)

	return content, nil
}
