package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quickblog/models"
)

func TestNewBlogDTO(t *testing.T) {
	id := primitive.NewObjectID()
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	b := models.Blog{
		ID:         id,
		CreatedAt:  created,
		UpdatedAt:  created,
		Title:      "t",
		Subtitle:   "s",
		Content:    "<p>c</p>",
		Author:     "Alice",
		AuthorID:   "sub-1",
		CoverImage: "https://cdn/x.png",
		Tags:       []string{"go", "web"},
		PodcastURL: "https://s3/pod.mp3",
		Translations: map[string]string{
			"hi": "नमस्ते",
		},
	}

	d := NewBlogDTO(b)
	assert.Equal(t, id.Hex(), d.ID)
	assert.Equal(t, "sub-1", d.AuthorID)
	assert.Equal(t, []string{"go", "web"}, d.Tags)
	assert.Equal(t, "नमस्ते", d.Translations["hi"])
}

func TestNewBlogDTO_NilTagsSerializeAsEmptyArray(t *testing.T) {
	d := NewBlogDTO(models.Blog{ID: primitive.NewObjectID()})

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tags":[]`)
}
