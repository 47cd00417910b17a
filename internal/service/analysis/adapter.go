// Package analysis turns a batch of fetched posts into a structured
// AnalysisResult via the AI completion service.
//
// Analyze never fails: any provider or parsing problem yields the safe
// default result instead of an error, so one AI hiccup can never fail
// the search that triggered it.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/topiclens/topiclens-backend/internal/config"
	"github.com/topiclens/topiclens-backend/internal/domain"
)

const (
	maxFrequentWords       = 10
	maxInfluentialAccounts = 5
)

// completer defines the completion interface needed by the adapter.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Adapter builds prompts, calls the AI service, and repairs its replies.
type Adapter struct {
	log            *slog.Logger
	ai             completer
	maxPromptItems int
}

// NewAdapter creates an analysis adapter.
func NewAdapter(logger *slog.Logger, ai completer, cfg config.SearchConfig) *Adapter {
	return &Adapter{
		log:            logger.With("service", "analysis"),
		ai:             ai,
		maxPromptItems: cfg.MaxPromptItems,
	}
}

// Analyze summarizes the given items. The prompt covers at most the
// first maxPromptItems items in fetch order; later items are ignored
// rather than ranked. The returned result always satisfies the bounds:
// valid sentiment, toxicity in [0,1], ≤10 words, ≤5 accounts.
func (a *Adapter) Analyze(ctx context.Context, items []domain.ContentItem) domain.AnalysisResult {
	if len(items) == 0 {
		return domain.SafeAnalysisResult()
	}

	prompt := a.buildPrompt(items)

	reply, err := a.ai.Complete(ctx, prompt)
	if err != nil {
		a.log.WarnContext(ctx, "analysis fell back to safe default",
			slog.String("error", err.Error()))
		return domain.SafeAnalysisResult()
	}

	result, err := parseReply(reply)
	if err != nil {
		a.log.WarnContext(ctx, "analysis reply unparseable, using safe default",
			slog.String("error", err.Error()))
		return domain.SafeAnalysisResult()
	}

	return result
}

// buildPrompt renders the analysis request for the first n items.
func (a *Adapter) buildPrompt(items []domain.ContentItem) string {
	n := len(items)
	if n > a.maxPromptItems {
		n = a.maxPromptItems
	}

	var sb strings.Builder
	for _, item := range items[:n] {
		fmt.Fprintf(&sb, "Title: %s\nText: %s\n", item.Title, item.Body)
		fmt.Fprintf(&sb, "Author: %s, Score: %d, Comments: %d\n---\n",
			item.Author, item.Score, item.CommentCount)
	}

	return fmt.Sprintf(`Analyze the following Reddit posts and provide insights in JSON format.
Posts to analyze:
%s

Please provide analysis in the following JSON format:
{
    "overall_sentiment": "positive/negative/neutral",
    "toxicity_level": 0.0-1.0,
    "frequent_words": ["word1", "word2", "word3", ...],
    "influential_accounts": ["user1", "user2", "user3", ...]
}

Focus on:
1. Overall sentiment of the discussion
2. Toxicity level as a decimal between 0 and 1
3. Most frequently used meaningful words (exclude common words)
4. Top 5 most influential accounts based on engagement

Return ONLY the JSON response without any additional text.
`, sb.String())
}

// rawReply mirrors the reply schema with optional fields, so missing
// keys are distinguishable from zero values.
type rawReply struct {
	Sentiment           *string  `json:"overall_sentiment"`
	Toxicity            *float64 `json:"toxicity_level"`
	FrequentWords       []string `json:"frequent_words"`
	InfluentialAccounts []string `json:"influential_accounts"`
}

// parseReply extracts the JSON object from the reply text and repairs
// it into a bounded AnalysisResult. Only an absent or undecodable JSON
// object is an error; individual bad fields are substituted or clamped.
func parseReply(reply string) (domain.AnalysisResult, error) {
	jsonStr, err := extractJSON(reply)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	var raw rawReply
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("decode reply: %w", err)
	}

	result := domain.SafeAnalysisResult()

	if raw.Sentiment != nil {
		s := domain.Sentiment(strings.ToLower(strings.TrimSpace(*raw.Sentiment)))
		if s.IsValid() {
			result.Sentiment = s
		}
	}

	if raw.Toxicity != nil {
		result.Toxicity = clamp01(*raw.Toxicity)
	}

	if raw.FrequentWords != nil {
		result.FrequentWords = truncate(raw.FrequentWords, maxFrequentWords)
	}

	if raw.InfluentialAccounts != nil {
		result.InfluentialAccounts = truncate(raw.InfluentialAccounts, maxInfluentialAccounts)
	}

	return result, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in reply")
	}
	return s[start : end+1], nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func truncate(values []string, max int) []string {
	if len(values) > max {
		return values[:max]
	}
	return values
}
