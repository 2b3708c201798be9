package main

import (
	"context"
	"log"
	"net/http"

	_ "aifolio/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"aifolio/internal/auth"
	"aifolio/internal/cache"
	"aifolio/internal/config"
	"aifolio/internal/db"
	"aifolio/internal/handler"
	"aifolio/internal/model"
	"aifolio/internal/repository"
	"aifolio/internal/router"
	"aifolio/internal/service"
)

// @title AIfolio API
// @version 1.0
// @description Portfolio and mock content-generation API with case studies, registration/login, and a bearer-gated generator.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the login token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	userRepo, caseStudyRepo, generationRepo, err := buildRepositories(cfg)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, jwtService)
	caseStudyService := service.NewCaseStudyService(caseStudyRepo, cacheClient)
	generationService := service.NewGenerationService(generationRepo)

	authHandler := handler.NewAuthHandler(authService)
	caseStudyHandler := handler.NewCaseStudyHandler(caseStudyService)
	generationHandler := handler.NewGenerationHandler(generationService)

	router.Register(e, authHandler, caseStudyHandler, generationHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// buildRepositories selects the storage variant. The in-memory store is the
// default; MySQL is the durable-backing variant behind the same interfaces.
func buildRepositories(cfg *config.Config) (repository.UserRepository, repository.CaseStudyRepository, repository.GenerationRepository, error) {
	if cfg.StorageDriver != config.DriverMySQL {
		store := repository.NewMemoryStore()
		return store.Users(), store.CaseStudies(), store.Generations(), nil
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CaseStudy{},
		&model.Generation{},
	); err != nil {
		return nil, nil, nil, err
	}

	caseStudyRepo := repository.NewCaseStudyRepository(gormDB)
	if err := seedIfEmpty(caseStudyRepo); err != nil {
		return nil, nil, nil, err
	}

	return repository.NewUserRepository(gormDB), caseStudyRepo, repository.NewGenerationRepository(gormDB), nil
}

// seedIfEmpty inserts the fixed demo case studies on first boot.
func seedIfEmpty(repo repository.CaseStudyRepository) error {
	ctx := context.Background()
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, seed := range repository.SeedCaseStudies() {
		if _, err := repo.Create(ctx, seed); err != nil {
			return err
		}
	}
	return nil
}
