package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a published blog post authored through the API.
// Collection: blogs
//
// AuthorID is the verified token subject captured at creation and is the
// sole authorization key for mutation; Author is display text the author
// may edit freely.
type Blog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
	Title      string             `bson:"title" json:"title"`
	Subtitle   string             `bson:"subtitle" json:"subtitle"`
	Content    string             `bson:"content" json:"content"`
	Author     string             `bson:"author" json:"author"`
	AuthorID   string             `bson:"author_id" json:"author_id"`
	CoverImage string             `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Tags       []string           `bson:"tags" json:"tags"`
	PodcastURL string             `bson:"podcast_url,omitempty" json:"podcast_url,omitempty"`

	// Translations caches translated content per target language code so
	// repeated requests do not re-translate the same post.
	Translations map[string]string `bson:"translated,omitempty" json:"translated,omitempty"`

	// AudioVariants keeps per-language audio URLs, keyed like Translations.
	AudioVariants map[string]string `bson:"audio,omitempty" json:"audio,omitempty"`
}
