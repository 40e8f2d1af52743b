package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"quickblog/api/handlers"
	"quickblog/api/middleware"
	"quickblog/db"
	_ "quickblog/docs"
	"quickblog/enhance"
	"quickblog/services"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Blogs    *services.BlogService
	Enhancer *enhance.Enhancer
	Verifier middleware.TokenVerifier
	Origins  []string
}

func New(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(d.Origins))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if database := db.Database(); database != nil {
			if err := database.RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.RequireAuth(d.Verifier)

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/posts", handlers.ListBlogsHandler(d.Blogs))
		api.GET("/posts/mine", requireAuth, handlers.ListMyBlogsHandler(d.Blogs))
		api.GET("/posts/:id", handlers.GetBlogHandler(d.Blogs))
		api.POST("/posts", requireAuth, handlers.CreateBlogHandler(d.Blogs))
		api.PUT("/posts/:id", requireAuth, handlers.UpdateBlogHandler(d.Blogs))
		api.DELETE("/posts/:id", requireAuth, handlers.DeleteBlogHandler(d.Blogs))

		api.POST("/posts/:id/podcast", requireAuth, handlers.GeneratePodcastHandler(d.Blogs))
		api.POST("/posts/:id/translate", handlers.TranslatePostHandler(d.Blogs))
		api.POST("/translate", handlers.TranslateHandler(d.Blogs))
		api.POST("/enhance-text", handlers.EnhanceTextHandler(d.Enhancer))
	}

	return r
}
