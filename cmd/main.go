package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/shirtstore/shirts-api/docs" // Import generated docs
	"github.com/shirtstore/shirts-api/internal/auth"
	"github.com/shirtstore/shirts-api/internal/config"
	"github.com/shirtstore/shirts-api/internal/controllers"
	"github.com/shirtstore/shirts-api/internal/database"
	"github.com/shirtstore/shirts-api/internal/middleware"
	"github.com/shirtstore/shirts-api/internal/models"
	"github.com/shirtstore/shirts-api/internal/services"
)

var (
	db                    *gorm.DB
	configuration         *config.Config
	authenticator         *auth.Authenticator
	refreshTokenService   *auth.RefreshTokenService
	authorityController   *controllers.AuthorityController
	shirtController       controllers.ShirtController
	applicationController *controllers.ApplicationController
	userAuthController    *controllers.UserAuthController
)

// @title Shirts API
// @version 1.0
// @description A shirt inventory REST API with client-credentials authentication
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration; a missing signing secret fails here, at startup
	configuration = loadConfig()

	// Initialize database connection and seed data
	setupDatabase(configuration)

	// Initialize the authentication engine
	setupAuthority(configuration)

	// Initialize services and controllers
	shirtController = controllers.NewShirtController(services.NewShirtService(db))
	userAuthController = controllers.NewUserAuthController(services.NewUserService(db), configuration.JWT.SecretKey)

	// Background maintenance: drop long-expired refresh tokens
	startTokenCleanup()

	// Initialize Gin router
	router := setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds initial data when the database is empty
func setupDatabase(conf *config.Config) {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	err = db.AutoMigrate(
		&models.Application{},
		&models.RefreshToken{},
		&models.Shirt{},
		&models.User{},
	)
	checkPanicErr(err)

	seedDatabase(conf)
}

// setupAuthority wires the stores, refresh token service and authenticator
func setupAuthority(conf *config.Config) {
	appStore := auth.NewGormApplicationStore(db)
	tokenStore := auth.NewGormRefreshTokenStore(db)
	refreshTokenService = auth.NewRefreshTokenService(tokenStore)

	var err error
	authenticator, err = auth.NewAuthenticator(appStore, refreshTokenService, conf.JWT)
	checkPanicErr(err)

	authorityController = controllers.NewAuthorityController(authenticator, conf.JWT)
	applicationController = controllers.NewApplicationController(services.NewApplicationService(appStore))
}

// seedDatabase seeds the default client application, an admin user and a few
// shirts, each only when absent
func seedDatabase(conf *config.Config) {
	ctx := context.Background()
	appService := services.NewApplicationService(auth.NewGormApplicationStore(db))

	if conf.SeedClientID != "" {
		existing, err := appService.GetByClientID(ctx, conf.SeedClientID)
		checkPanicErr(err)
		if existing == nil {
			secret := conf.SeedClientSecret
			generated := secret == ""
			if generated {
				secret = strings.ReplaceAll(uuid.NewString(), "-", "")
			}
			_, _, err := appService.RegisterApplicationWithCredentials(ctx, "MVCWebApp", "read,write,delete", conf.SeedClientID, secret)
			checkPanicErr(err)
			log.Info("Seeded default client application")
			if generated {
				log.Warnf("Generated seed client secret: %s", secret)
			}
		}
	}

	userService := services.NewUserService(db)
	if _, err := userService.GetUserByUsername("admin"); err != nil {
		admin := &models.User{Username: "admin", Email: "admin@example.com", Roles: "admin"}
		if err := userService.CreateUser(admin, "admin123"); err != nil {
			log.WithError(err).Warn("Failed to seed admin user")
		} else {
			log.Info("Seeded default admin user")
		}
	}

	var count int64
	db.Model(&models.Shirt{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial shirts")
		shirts := []models.Shirt{
			{Brand: "Acme", Color: "Blue", Size: 40, Gender: "Men", Price: 19.99},
			{Brand: "Acme", Color: "Black", Size: 38, Gender: "Women", Price: 21.99},
			{Brand: "Contoso", Color: "White", Size: 42, Gender: "Men", Price: 17.50},
		}
		for _, shirt := range shirts {
			db.Create(&shirt)
		}
	}
}

// startTokenCleanup periodically deletes refresh tokens whose expiry has
// passed. Expired tokens are already unusable; this only bounds table growth.
func startTokenCleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			removed, err := refreshTokenService.DeleteExpired(context.Background())
			if err != nil {
				log.WithError(err).Warn("Refresh token cleanup failed")
				continue
			}
			if removed > 0 {
				log.WithField("removed", removed).Info("Deleted expired refresh tokens")
			}
		}
	}()
}

// setupRouter initializes the Gin router and sets up the routes
func setupRouter() *gin.Engine {
	router := gin.Default()
	setupRoutes(router)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Token issuance, refresh and revocation
	router.POST("/auth", authorityController.Authenticate)
	router.POST("/auth/refresh", authorityController.Refresh)
	router.POST("/auth/revoke", authorityController.Revoke)

	api := router.Group("/api")
	{
		// Application and user registration
		api.POST("/applications/register", applicationController.RegisterApplication)
		api.POST("/users/register", userAuthController.Register)
		api.POST("/users/login", userAuthController.Login)

		// Shirt inventory, guarded by scope claims
		shirts := api.Group("/shirts")
		shirts.Use(middleware.TokenAuth(authenticator))
		{
			shirts.GET("", middleware.RequireScope("read"), shirtController.GetAllShirts)
			shirts.GET("/:id", middleware.RequireScope("read"), shirtController.GetShirtByID)
			shirts.POST("", middleware.RequireScope("write"), shirtController.CreateShirt)
			shirts.PUT("/:id", middleware.RequireScope("write"), shirtController.UpdateShirt)
			shirts.DELETE("/:id", middleware.RequireScope("delete"), shirtController.DeleteShirt)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "shirts-api",
	})
}
