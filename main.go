package main

import (
	"context"
	"log"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"quickblog/api/router"
	"quickblog/auth"
	"quickblog/config"
	"quickblog/db"
	_ "quickblog/docs" // swag will generate this package
	"quickblog/enhance"
	"quickblog/logger"
	"quickblog/repositories"
	"quickblog/services"
	"quickblog/speech"
	"quickblog/storage"
	"quickblog/translate"
)

// @title           QuickBlog API
// @version         1.0
// @description     Blogging backend: post CRUD with owner-only mutation, cover image uploads, and derived assets (podcast audio, translation, text enhancement)
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB: ", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		log.Fatal("failed to load AWS configuration: ", err)
	}

	cognitoRegion := cfg.Cognito.Region
	if cognitoRegion == "" {
		cognitoRegion = cfg.AWS.Region
	}

	blogSvc := services.NewBlogService(
		repositories.NewBlogRepository(db.Database()),
		storage.NewS3Uploader(awsCfg, cfg.Storage.Bucket),
		speech.NewPollySynthesizer(awsCfg, cfg.Speech),
		translate.NewAWSTranslator(awsCfg),
		cfg.Translate,
	)

	r := router.New(router.Deps{
		Blogs:    blogSvc,
		Enhancer: enhance.New(ctx, cfg.Enhance.Model),
		Verifier: auth.NewVerifier(cognitoRegion, cfg.Cognito.UserPoolID),
	})

	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
