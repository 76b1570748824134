package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/archeolens/archeolens-server/internal/api/http/handler"
	"github.com/archeolens/archeolens-server/internal/api/http/middleware"
	"github.com/archeolens/archeolens-server/internal/logger"
	"github.com/archeolens/archeolens-server/internal/model"
)

// Router wires HTTP handlers and middleware into a gin engine.
type Router struct {
	profileService  handler.ProfileService
	siteService     handler.SiteService
	artifactService handler.ArtifactService
	photoService    handler.PhotoService
	identity        model.IdentityProvider
	contextManager  model.ContextManager
	prefix          string
	logger          *logger.Logger
}

// New creates a new Router instance.
func New(
	profileService handler.ProfileService,
	siteService handler.SiteService,
	artifactService handler.ArtifactService,
	photoService handler.PhotoService,
	identity model.IdentityProvider,
	contextManager model.ContextManager,
	prefix string,
	logger *logger.Logger,
) *Router {
	return &Router{
		profileService:  profileService,
		siteService:     siteService,
		artifactService: artifactService,
		photoService:    photoService,
		identity:        identity,
		contextManager:  contextManager,
		prefix:          prefix,
		logger:          logger,
	}
}

// Register builds the gin engine with all routes and middleware. Reads are
// public; mutations and the session endpoint require a bearer token.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.identity, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.Handle())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          10 * time.Minute,
	}))

	authHandler := handler.NewAuth(r.profileService, r.identity, r.contextManager, r.logger)
	siteHandler := handler.NewSite(r.siteService, r.contextManager, r.logger)
	artifactHandler := handler.NewArtifact(r.artifactService, r.contextManager, r.logger)
	archaeologistHandler := handler.NewArchaeologist(r.profileService, r.logger)
	photoHandler := handler.NewPhoto(r.photoService, r.contextManager, r.logger)

	api := engine.Group(r.prefix)

	api.GET("/health", authHandler.Health)
	api.POST("/signup", authHandler.Signup)
	api.POST("/signin", authHandler.Signin)

	api.GET("/sites", siteHandler.List)
	api.GET("/sites/search", siteHandler.Search)
	api.GET("/sites/:id", siteHandler.Get)

	api.GET("/artifacts", artifactHandler.List)
	api.GET("/artifacts/search", artifactHandler.Search)
	api.GET("/artifacts/:id", artifactHandler.Get)

	api.GET("/archaeologists", archaeologistHandler.Search)

	protected := api.Group("")
	protected.Use(authenticate.Handle())

	protected.GET("/session", authHandler.Session)
	protected.POST("/sites", siteHandler.Create)
	protected.PUT("/sites/:id", siteHandler.Update)
	protected.DELETE("/sites/:id", siteHandler.Delete)
	protected.POST("/artifacts", artifactHandler.Create)
	protected.PUT("/artifacts/:id", artifactHandler.Update)
	protected.DELETE("/artifacts/:id", artifactHandler.Delete)
	protected.POST("/upload-photo", photoHandler.Upload)

	return engine
}
