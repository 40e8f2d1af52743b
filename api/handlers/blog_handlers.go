package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickblog/api/middleware"
	"quickblog/apperr"
	"quickblog/services"
	"quickblog/storage"
)

// ListBlogsHandler godoc
// @Summary      List blog posts
// @Description  List published posts with pagination, newest first
// @Tags         posts
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (<=100)"
// @Param        tag        query  string  false  "Filter by tag (case-insensitive)"
// @Produce      json
// @Success      200  {object}  dto.Pagination[dto.BlogDTO]
// @Router       /posts [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListBlogsInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
		in.Tag = c.Query("tag")

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// ListMyBlogsHandler godoc
// @Summary      List my blog posts
// @Description  List posts owned by the authenticated caller, newest first
// @Tags         posts
// @Security     BearerAuth
// @Param        page       query  int  false  "Page number (1-based)"
// @Param        page_size  query  int  false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  dto.Pagination[dto.BlogDTO]
// @Router       /posts/mine [get]
func ListMyBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			respondError(c, apperr.Unauthenticated("missing credentials", nil))
			return
		}

		var in services.ListBlogsInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

		page, err := svc.ListMine(c.Request.Context(), in, claims.Subject)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetBlogHandler godoc
// @Summary      Get blog post by id
// @Tags         posts
// @Param        id  path  string  true  "Post id (ObjectID hex)"
// @Produce      json
// @Success      200  {object}  dto.BlogDTO
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// CreateBlogHandler godoc
// @Summary      Create a blog post
// @Description  Multipart form: title, subtitle, content, author, tags, optional coverImage file
// @Tags         posts
// @Security     BearerAuth
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.BlogDTO
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			respondError(c, apperr.Unauthenticated("missing credentials", nil))
			return
		}

		in := services.CreateBlogInput{
			Title:    c.PostForm("title"),
			Subtitle: c.PostForm("subtitle"),
			Content:  c.PostForm("content"),
			Author:   c.PostForm("author"),
		}
		if tags, ok := formTags(c); ok {
			in.Tags = tags
		}

		file, closeFile := uploadFromForm(c, "coverImage")
		if closeFile != nil {
			defer closeFile()
		}
		in.File = file

		d, err := svc.Create(c.Request.Context(), in, claims.Subject)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}

// UpdateBlogHandler godoc
// @Summary      Update a blog post
// @Description  Owner-only partial update; a new coverImage file replaces the stored one
// @Tags         posts
// @Security     BearerAuth
// @Accept       mpfd
// @Param        id  path  string  true  "Post id (ObjectID hex)"
// @Produce      json
// @Success      200  {object}  dto.BlogDTO
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func UpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			respondError(c, apperr.Unauthenticated("missing credentials", nil))
			return
		}

		in := services.UpdateBlogInput{
			Title:    c.PostForm("title"),
			Subtitle: c.PostForm("subtitle"),
			Content:  c.PostForm("content"),
			Author:   c.PostForm("author"),
		}
		if tags, ok := formTags(c); ok {
			in.Tags = tags
		}

		file, closeFile := uploadFromForm(c, "coverImage")
		if closeFile != nil {
			defer closeFile()
		}
		in.File = file

		d, err := svc.Update(c.Request.Context(), c.Param("id"), in, claims.Subject)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete a blog post
// @Description  Owner-only
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id (ObjectID hex)"
// @Produce      json
// @Success      200  {object}  dto.MessageDTO
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			respondError(c, apperr.Unauthenticated("missing credentials", nil))
			return
		}

		if err := svc.Delete(c.Request.Context(), c.Param("id"), claims.Subject); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "blog deleted successfully"})
	}
}

// formTags reads tag values from either the repeated "tags" form key or the
// bracketed "tags[]" variant some clients send. The second return reports
// whether the field was present at all, so updates can distinguish
// "untouched" from "cleared".
func formTags(c *gin.Context) ([]string, bool) {
	if tags, ok := c.GetPostFormArray("tags"); ok {
		return tags, true
	}
	if tags, ok := c.GetPostFormArray("tags[]"); ok {
		return tags, true
	}
	return nil, false
}

// uploadFromForm builds a storage.Upload from an optional multipart file
// field. Absence is not an error.
func uploadFromForm(c *gin.Context, field string) (*storage.Upload, func()) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil
	}
	up := &storage.Upload{
		Field:       field,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}
	return up, func() { f.Close() }
}
