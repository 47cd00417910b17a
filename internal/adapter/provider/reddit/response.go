package reddit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/topiclens/topiclens-backend/internal/domain"
)

// listingResponse mirrors the Reddit search listing shape:
// {"data": {"children": [{"data": {...post...}}, ...]}}.
// Children are kept as raw JSON so one malformed post cannot poison
// the decode of the whole listing.
type listingResponse struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Data json.RawMessage `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (l *listingResponse) unmarshal(body []byte) error {
	return json.Unmarshal(body, l)
}

// apiPost is the subset of post fields the service consumes.
type apiPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	URL         string  `json:"url"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author"`
	Permalink   string  `json:"permalink"`
}

// mapPost converts one raw child into a ContentItem.
// Posts without an id or title are treated as malformed.
func mapPost(raw json.RawMessage) (domain.ContentItem, error) {
	var p apiPost
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.ContentItem{}, fmt.Errorf("decode post: %w", err)
	}

	if p.ID == "" {
		return domain.ContentItem{}, fmt.Errorf("post has no id")
	}
	if p.Title == "" {
		return domain.ContentItem{}, fmt.Errorf("post %s has no title", p.ID)
	}

	author := p.Author
	if author == "" {
		author = domain.DeletedAuthor
	}

	sec, frac := int64(p.CreatedUTC), p.CreatedUTC-float64(int64(p.CreatedUTC))

	return domain.ContentItem{
		ID:           p.ID,
		Title:        p.Title,
		Body:         p.Selftext,
		URL:          p.URL,
		Score:        p.Score,
		CommentCount: p.NumComments,
		CreatedAt:    time.Unix(sec, int64(frac*1e9)).UTC(),
		Subreddit:    p.Subreddit,
		Author:       author,
		Permalink:    "https://reddit.com" + p.Permalink,
	}, nil
}
