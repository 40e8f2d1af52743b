package dto

import (
	"time"

	"quickblog/models"
)

// BlogDTO is the transport shape of a blog post.
// ID is the hex string of the Mongo ObjectID.
type BlogDTO struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle"`
	Content      string            `json:"content"`
	Author       string            `json:"author"`
	AuthorID     string            `json:"author_id"`
	CoverImage   string            `json:"cover_image,omitempty"`
	Tags         []string          `json:"tags"`
	PodcastURL   string            `json:"podcast_url,omitempty"`
	Translations map[string]string `json:"translated,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewBlogDTO constructs BlogDTO from models.Blog
func NewBlogDTO(b models.Blog) BlogDTO {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogDTO{
		ID:           b.ID.Hex(),
		Title:        b.Title,
		Subtitle:     b.Subtitle,
		Content:      b.Content,
		Author:       b.Author,
		AuthorID:     b.AuthorID,
		CoverImage:   b.CoverImage,
		Tags:         tags,
		PodcastURL:   b.PodcastURL,
		Translations: b.Translations,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Pagination is a generic page envelope for list endpoints.
type Pagination[T any] struct {
	Data     []T   `json:"data"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}
