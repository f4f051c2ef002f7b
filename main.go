package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/chrinovic123/PsychoMetricBot/api"
	"github.com/chrinovic123/PsychoMetricBot/config"
	"github.com/chrinovic123/PsychoMetricBot/database"
	"github.com/chrinovic123/PsychoMetricBot/i18n"
	"github.com/chrinovic123/PsychoMetricBot/middleware"
	"github.com/chrinovic123/PsychoMetricBot/models"
	"github.com/chrinovic123/PsychoMetricBot/psy"
	"github.com/chrinovic123/PsychoMetricBot/repository"
	"github.com/chrinovic123/PsychoMetricBot/services"
)

func main() {
	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: [Main] No .env file found, relying on the environment.")
	}

	config.LoadConfig()

	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}
	runMigrations(db)

	// Localization store: preload the configured languages so first
	// lookups never hit the disk on the request path.
	store := i18n.NewStore(config.AppConfig.Locales.Dir, config.AppConfig.Locales.DefaultLanguage)
	for _, lang := range config.AppConfig.Locales.Preload {
		if !store.Load(lang) {
			log.Printf("WARN: [Main] Could not preload language '%s'.", lang)
		}
	}

	registry := psy.NewRegistry(store)
	sessionRepo := repository.NewSessionRepository()
	resultRepo := repository.NewResultRepository(db)
	log.Println("INFO: [Main] Repositories initialized.")

	testService := services.NewTestService(sessionRepo, resultRepo, registry)
	log.Println("INFO: [Main] Services initialized.")

	apiHandler := api.NewAPIHandler(testService, resultRepo, store)

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(middleware.Logger())
	r.Use(middleware.Cors())
	registerRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	serverPort := ":" + config.AppConfig.Server.Port
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func runMigrations(db *gorm.DB) {
	if err := db.AutoMigrate(&models.TestResult{}); err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}
	log.Println("INFO: [Main] Database migration completed.")
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/menu", handler.MenuHandler)
		apiGroup.GET("/help", handler.HelpHandler)
		apiGroup.POST("/language", handler.SetLanguageHandler)
		apiGroup.GET("/results/:userID", handler.ResultsHandler)

		testGroup := apiGroup.Group("/test")
		{
			testGroup.POST("/start", handler.StartTestHandler)
			testGroup.GET("/current", handler.CurrentQuestionHandler)
			testGroup.POST("/answer", handler.AnswerHandler)
			testGroup.POST("/cancel", handler.CancelHandler)
		}
	}
}
