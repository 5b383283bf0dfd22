// internal/model/article.go
package model

import "time"

type ArticleCategory string

const (
	CategoryResume    ArticleCategory = "RESUME"
	CategoryInterview ArticleCategory = "INTERVIEW"
	CategoryCareer    ArticleCategory = "CAREER"
	CategoryGeneral   ArticleCategory = "GENERAL"
)

// Article is static editorial content for the resource center. Articles are
// seeded at startup and read-only to every role.
type Article struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Category    ArticleCategory `json:"category"`
	Summary     string          `json:"summary"`
	Content     string          `json:"content"`
	ImageURL    string          `json:"image_url,omitempty"`
	PublishedAt time.Time       `json:"published_at"`
}
