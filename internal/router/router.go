package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/linque-cms/internal/cache"
	"github.com/linque-cms/internal/config"
	adminhandlers "github.com/linque-cms/internal/http/handlers/admin"
	publichandlers "github.com/linque-cms/internal/http/handlers/public"
	"github.com/linque-cms/internal/http/response"
	"github.com/linque-cms/internal/logger"
	"github.com/linque-cms/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the public site, the public API, and the admin API.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "lq"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}
	contactRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:contact", redisPrefix),
		WindowSeconds: cfg.Security.ContactRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.ContactRateLimit.MaxAttempts,
		Message:       "too many messages, please wait before sending another",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Prerendered site pages.
	r.GET("/", publicHandler.HomePage)
	r.GET("/about", publicHandler.AboutPage)
	r.GET("/services", publicHandler.ServicesPage)
	r.GET("/blog", publicHandler.BlogPage)
	r.GET("/blog/:slug", publicHandler.BlogPostPage)
	r.GET("/careers", publicHandler.CareersPage)
	r.GET("/careers/:slug", publicHandler.CareerJobPage)
	r.GET("/contact", publicHandler.ContactPage)
	r.GET("/sitemap.xml", publicHandler.Sitemap)
	r.GET("/robots.txt", publicHandler.Robots)

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/posts", publicHandler.GetPosts)
			public.GET("/posts/:slug", publicHandler.GetPost)
			public.GET("/jobs", publicHandler.GetJobs)
			public.GET("/jobs/:slug", publicHandler.GetJob)
			public.POST("/contact", RateLimitMiddleware(redisClient, contactRule, KeyByIPAndJSONField("email")), publicHandler.SubmitContact)
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIP), adminHandler.Login)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.GET("/posts", adminHandler.GetPosts)
				authorized.GET("/posts/:slug", adminHandler.GetPost)
				authorized.POST("/posts", adminHandler.UpsertPost)
				authorized.DELETE("/posts/:id", adminHandler.DeletePost)

				authorized.GET("/jobs", adminHandler.GetJobs)
				authorized.GET("/jobs/:slug", adminHandler.GetJob)
				authorized.POST("/jobs", adminHandler.UpsertJob)
				authorized.DELETE("/jobs/:id", adminHandler.DeleteJob)

				authorized.GET("/contact-messages", adminHandler.GetContactMessages)
				authorized.POST("/upload", adminHandler.UploadAsset)
			}
		}
	}

	// Unknown API paths get a JSON 404; unknown page paths return to the
	// home page.
	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			response.NotFound(ctx, "route not found")
			return
		}
		ctx.Redirect(http.StatusFound, "/")
	})

	return r
}
