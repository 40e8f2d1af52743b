package repositories

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quickblog/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// Insert inserts a new blog document and returns its generated id.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error) {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	b.ID = id
	return id, nil
}

// FindByID returns a blog by its ObjectID.
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

type ListBlogsOptions struct {
	Page     int
	PageSize int
	AuthorID string
	Tag      string
}

// List returns blogs with filters and pagination, newest first.
func (r *BlogRepository) List(ctx context.Context, opt ListBlogsOptions) ([]models.Blog, int64, error) {
	filter := bson.M{}
	if opt.AuthorID != "" {
		filter["author_id"] = opt.AuthorID
	}
	if opt.Tag != "" {
		// case-insensitive exact match
		filter["tags"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(opt.Tag) + "$", Options: "i"}
	}

	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.PageSize <= 0 || opt.PageSize > 100 {
		opt.PageSize = 20
	}
	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []models.Blog
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateFields merges the given fields into the document and bumps updated_at.
func (r *BlogRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Blog, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var b models.Blog
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes a blog document and reports whether one existed.
func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// SetPodcastURL records the synthesized audio URL on the document.
func (r *BlogRepository) SetPodcastURL(ctx context.Context, id primitive.ObjectID, url string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"podcast_url": url, "updated_at": time.Now()},
	})
	return err
}

// SetTranslation caches a translated rendering of the content keyed by the
// target language code.
func (r *BlogRepository) SetTranslation(ctx context.Context, id primitive.ObjectID, lang, text string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"translated." + lang: text, "updated_at": time.Now()},
	})
	return err
}
