package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeletedAuthor is the sentinel author name used when the upstream post
// has no resolvable author (deleted or anonymous accounts).
const DeletedAuthor = "[deleted]"

// Sentiment is the overall mood of a discussion as judged by the AI model.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// IsValid reports whether s is one of the three known sentiment values.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// ContentItem is one post fetched from the content source.
type ContentItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Body         string    `json:"text"`
	URL          string    `json:"url"`
	Score        int       `json:"score"`
	CommentCount int       `json:"num_comments"`
	CreatedAt    time.Time `json:"created_at"`
	Subreddit    string    `json:"subreddit"`
	Author       string    `json:"author"`
	Permalink    string    `json:"permalink"`
}

// FetchResult is the tagged per-item outcome of a content fetch.
// Exactly one of Item or Err is meaningful: Err marks a recoverable
// per-item failure the pipeline may drop, while connection-level
// failures abort the fetch as a whole instead of producing results.
type FetchResult struct {
	Item ContentItem
	Err  error
}

// AnalysisResult is the structured summary produced by the analysis
// adapter. The bounds (toxicity in [0,1], at most 10 frequent words,
// at most 5 influential accounts) are enforced by the adapter before
// the result leaves it.
type AnalysisResult struct {
	Sentiment           Sentiment `json:"overall_sentiment"`
	Toxicity            float64   `json:"toxicity_level"`
	FrequentWords       []string  `json:"frequent_words"`
	InfluentialAccounts []string  `json:"influential_accounts"`
}

// SafeAnalysisResult returns the fail-open default used whenever the AI
// service cannot produce a usable reply.
func SafeAnalysisResult() AnalysisResult {
	return AnalysisResult{
		Sentiment:           SentimentNeutral,
		Toxicity:            0.0,
		FrequentWords:       []string{},
		InfluentialAccounts: []string{},
	}
}

// SearchResults bundles the fetched items with their analysis. It is
// both the search response payload and the JSON document persisted in
// a history record.
type SearchResults struct {
	Items    []ContentItem  `json:"items"`
	Analysis AnalysisResult `json:"analysis"`
}

// SearchHistoryRecord links a user, a topic, and the results of one
// completed search. Records are immutable once written.
type SearchHistoryRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Topic     string
	Results   SearchResults
	CreatedAt time.Time
}
