package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickblog/apperr"
	"quickblog/dto"
	"quickblog/enhance"
	"quickblog/services"
)

// GeneratePodcastHandler godoc
// @Summary      Generate podcast audio for a post
// @Description  Strips markup to plain text and starts a speech synthesis task. The returned URL is pending until the provider finishes; an already generated URL is served as ready.
// @Tags         derived
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id (ObjectID hex)"
// @Produce      json
// @Success      200  {object}  dto.PodcastDTO
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/podcast [post]
func GeneratePodcastHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.GeneratePodcast(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// TranslatePostHandler godoc
// @Summary      Translate a post's content
// @Description  Translates the stored content into the target language; results are cached per (post, language)
// @Tags         derived
// @Param        id  path  string  true  "Post id (ObjectID hex)"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.TranslateDTO
// @Router       /posts/{id}/translate [post]
func TranslatePostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TranslateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.BadRequest("invalid request body"))
			return
		}

		out, err := svc.TranslatePost(c.Request.Context(), c.Param("id"), req.TargetLanguage)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// TranslateHandler godoc
// @Summary      Translate free text
// @Tags         derived
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.TranslateDTO
// @Failure      400  {object}  map[string]string
// @Router       /translate [post]
func TranslateHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TranslateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.BadRequest("invalid request body"))
			return
		}

		out, err := svc.TranslateText(c.Request.Context(), req.Text, req.TargetLanguage)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// EnhanceTextHandler godoc
// @Summary      Enhance text with a generative model
// @Description  Modes: grammar (fix mistakes only) or full_enhance (editor pass)
// @Tags         derived
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.EnhanceDTO
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /enhance-text [post]
func EnhanceTextHandler(enhancer *enhance.Enhancer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.EnhanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.BadRequest("invalid request body"))
			return
		}

		text, err := enhancer.Enhance(c.Request.Context(), req.TextToEnhance, req.EnhanceType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.EnhanceDTO{EnhancedText: text})
	}
}
