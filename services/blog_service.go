package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"quickblog/apperr"
	"quickblog/config"
	"quickblog/dto"
	"quickblog/logger"
	"quickblog/models"
	"quickblog/parser"
	"quickblog/repositories"
	"quickblog/speech"
	"quickblog/storage"
	"quickblog/translate"
)

// BlogStore is the persistence surface the service needs. Satisfied by
// *repositories.BlogRepository; faked in tests.
type BlogStore interface {
	Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	List(ctx context.Context, opt repositories.ListBlogsOptions) ([]models.Blog, int64, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	SetPodcastURL(ctx context.Context, id primitive.ObjectID, url string) error
	SetTranslation(ctx context.Context, id primitive.ObjectID, lang, text string) error
}

// BlogService orchestrates the blog content lifecycle: validation, cover
// image ingestion, persistence, ownership checks, and derived assets.
type BlogService struct {
	store      BlogStore
	uploader   storage.Uploader
	speech     speech.Synthesizer
	translator translate.Translator
	trCfg      config.TranslateConfig
}

func NewBlogService(store BlogStore, uploader storage.Uploader, synth speech.Synthesizer, translator translate.Translator, trCfg config.TranslateConfig) *BlogService {
	return &BlogService{
		store:      store,
		uploader:   uploader,
		speech:     synth,
		translator: translator,
		trCfg:      trCfg,
	}
}

type CreateBlogInput struct {
	Title    string
	Subtitle string
	Content  string
	Author   string
	Tags     []string
	File     *storage.Upload
}

// Create persists a new blog post owned by the verified subject. The author
// id always comes from the token, never from the request body.
func (s *BlogService) Create(ctx context.Context, in CreateBlogInput, subject string) (*dto.BlogDTO, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Subtitle) == "" ||
		strings.TrimSpace(in.Content) == "" ||
		strings.TrimSpace(in.Author) == "" {
		return nil, apperr.BadRequest("title, subtitle, content and author are required")
	}

	coverImage := ""
	if in.File != nil {
		url, err := s.uploader.Upload(ctx, *in.File)
		if err != nil {
			return nil, apperr.Upstream("failed to store cover image", err)
		}
		coverImage = url
	}

	b := &models.Blog{
		Title:      strings.TrimSpace(in.Title),
		Subtitle:   strings.TrimSpace(in.Subtitle),
		Content:    parser.SanitizeContent(in.Content),
		Author:     strings.TrimSpace(in.Author),
		AuthorID:   subject,
		CoverImage: coverImage,
		Tags:       NormalizeTags(in.Tags),
	}
	if _, err := s.store.Insert(ctx, b); err != nil {
		return nil, apperr.Upstream("failed to create blog", err)
	}

	d := dto.NewBlogDTO(*b)
	return &d, nil
}

// GetByID loads one post. Malformed ids are reported as not found so
// clients handle bad links and missing posts uniformly.
func (s *BlogService) GetByID(ctx context.Context, hexID string) (*dto.BlogDTO, error) {
	b, err := s.load(ctx, hexID)
	if err != nil {
		return nil, err
	}
	d := dto.NewBlogDTO(*b)
	return &d, nil
}

type ListBlogsInput struct {
	Page     int
	PageSize int
	Tag      string
}

// List returns published posts, newest first.
func (s *BlogService) List(ctx context.Context, in ListBlogsInput) (dto.Pagination[dto.BlogDTO], error) {
	return s.list(ctx, repositories.ListBlogsOptions{
		Page:     in.Page,
		PageSize: in.PageSize,
		Tag:      in.Tag,
	})
}

// ListMine returns the caller's posts, newest first.
func (s *BlogService) ListMine(ctx context.Context, in ListBlogsInput, subject string) (dto.Pagination[dto.BlogDTO], error) {
	return s.list(ctx, repositories.ListBlogsOptions{
		Page:     in.Page,
		PageSize: in.PageSize,
		Tag:      in.Tag,
		AuthorID: subject,
	})
}

func (s *BlogService) list(ctx context.Context, opt repositories.ListBlogsOptions) (dto.Pagination[dto.BlogDTO], error) {
	items, total, err := s.store.List(ctx, opt)
	if err != nil {
		return dto.Pagination[dto.BlogDTO]{}, apperr.Upstream("failed to list blogs", err)
	}
	out := make([]dto.BlogDTO, 0, len(items))
	for _, b := range items {
		out = append(out, dto.NewBlogDTO(b))
	}
	page, pageSize := opt.Page, opt.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return dto.Pagination[dto.BlogDTO]{Data: out, Page: page, PageSize: pageSize, Total: total}, nil
}

type UpdateBlogInput struct {
	Title    string
	Subtitle string
	Content  string
	Author   string
	// Tags nil means untouched; empty slice clears.
	Tags []string
	File *storage.Upload
}

// Update merges the supplied fields into an existing post. Authorization is
// checked against the stored author id, never anything client-supplied, and
// the existing cover image survives unless a new upload succeeds.
func (s *BlogService) Update(ctx context.Context, hexID string, in UpdateBlogInput, subject string) (*dto.BlogDTO, error) {
	existing, err := s.load(ctx, hexID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != subject {
		return nil, apperr.Forbidden("not authorized to edit this blog")
	}

	fields := bson.M{}
	if v := strings.TrimSpace(in.Title); v != "" {
		fields["title"] = v
	}
	if v := strings.TrimSpace(in.Subtitle); v != "" {
		fields["subtitle"] = v
	}
	if strings.TrimSpace(in.Content) != "" {
		fields["content"] = parser.SanitizeContent(in.Content)
	}
	if v := strings.TrimSpace(in.Author); v != "" {
		fields["author"] = v
	}
	if in.Tags != nil {
		fields["tags"] = NormalizeTags(in.Tags)
	}
	if in.File != nil {
		url, err := s.uploader.Upload(ctx, *in.File)
		if err != nil {
			// keep the existing cover image on a failed upload
			return nil, apperr.Upstream("failed to store cover image", err)
		}
		fields["cover_image"] = url
	}

	updated, err := s.store.UpdateFields(ctx, existing.ID, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("blog not found")
		}
		return nil, apperr.Upstream("failed to update blog", err)
	}
	d := dto.NewBlogDTO(*updated)
	return &d, nil
}

// Delete removes a post after confirming the caller owns it.
func (s *BlogService) Delete(ctx context.Context, hexID string, subject string) error {
	existing, err := s.load(ctx, hexID)
	if err != nil {
		return err
	}
	if existing.AuthorID != subject {
		return apperr.Forbidden("not authorized to delete this blog")
	}

	deleted, err := s.store.Delete(ctx, existing.ID)
	if err != nil {
		return apperr.Upstream("failed to delete blog", err)
	}
	if !deleted {
		return apperr.NotFound("blog not found")
	}
	return nil
}

// GeneratePodcast synthesizes spoken audio for a post. A URL persisted by an
// earlier call is served as ready; a fresh synthesis task returns pending,
// since the provider completes it asynchronously and the URL is not yet
// confirmed to resolve.
func (s *BlogService) GeneratePodcast(ctx context.Context, hexID string) (*dto.PodcastDTO, error) {
	b, err := s.load(ctx, hexID)
	if err != nil {
		return nil, err
	}
	if b.PodcastURL != "" {
		return &dto.PodcastDTO{PodcastURL: b.PodcastURL, Status: "ready"}, nil
	}

	plain, err := parser.PlainText(b.Content)
	if err != nil {
		return nil, apperr.Upstream("failed to extract text from content", err)
	}
	if plain == "" {
		return nil, apperr.BadRequest("post content has no readable text")
	}

	url, err := s.speech.Synthesize(ctx, plain, b.ID.Hex())
	if err != nil {
		return nil, apperr.Upstream("failed to generate podcast", err)
	}
	if err := s.store.SetPodcastURL(ctx, b.ID, url); err != nil {
		return nil, apperr.Upstream("failed to save podcast url", err)
	}

	return &dto.PodcastDTO{PodcastURL: url, Status: "pending"}, nil
}

// TranslatePost translates a post's content into the target language,
// caching the result on the document so repeated requests skip the
// provider.
func (s *BlogService) TranslatePost(ctx context.Context, hexID, targetLang string) (*dto.TranslateDTO, error) {
	if targetLang == "" {
		return nil, apperr.BadRequest("targetLanguage is required")
	}
	b, err := s.load(ctx, hexID)
	if err != nil {
		return nil, err
	}
	if cached, ok := b.Translations[targetLang]; ok && cached != "" {
		return &dto.TranslateDTO{TranslatedText: cached}, nil
	}

	translated, err := s.translator.Translate(ctx, b.Content, s.sourceFor(targetLang), targetLang)
	if err != nil {
		return nil, apperr.Upstream("translation failed", err)
	}
	if err := s.store.SetTranslation(ctx, b.ID, targetLang, translated); err != nil {
		// cache write failure is not worth failing the request over
		logger.Log.Warnf("failed to cache translation for %s/%s: %v", hexID, targetLang, err)
	}
	return &dto.TranslateDTO{TranslatedText: translated}, nil
}

// TranslateText translates free-standing text without touching persistence.
func (s *BlogService) TranslateText(ctx context.Context, text, targetLang string) (*dto.TranslateDTO, error) {
	if strings.TrimSpace(text) == "" || targetLang == "" {
		return nil, apperr.BadRequest("text and targetLanguage are required")
	}
	translated, err := s.translator.Translate(ctx, text, s.sourceFor(targetLang), targetLang)
	if err != nil {
		return nil, apperr.Upstream("translation failed", err)
	}
	return &dto.TranslateDTO{TranslatedText: translated}, nil
}

// sourceFor pairs the configured language couple: translating into the
// default target reads from the default source and vice versa.
func (s *BlogService) sourceFor(targetLang string) string {
	if targetLang == s.trCfg.DefaultTarget {
		return s.trCfg.DefaultSource
	}
	return s.trCfg.DefaultTarget
}

// load resolves a hex id to a document, mapping malformed ids and missing
// documents both to NotFound.
func (s *BlogService) load(ctx context.Context, hexID string) (*models.Blog, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, apperr.NotFound("blog not found")
	}
	b, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("blog not found")
		}
		return nil, apperr.Upstream("failed to load blog", err)
	}
	return b, nil
}

// NormalizeTags flattens tag input into an ordered slice of trimmed,
// non-empty strings. Entries may arrive as discrete values or as
// comma-delimited strings depending on the client; both collapse to one
// representation here so nothing downstream branches on shape. Order and
// duplicates are preserved.
func NormalizeTags(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if t := strings.TrimSpace(part); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}
