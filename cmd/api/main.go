package main

import (
	"log"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yushkumar524/BiasLabPrototype/internal/config"
	"github.com/yushkumar524/BiasLabPrototype/internal/handler"
	"github.com/yushkumar524/BiasLabPrototype/internal/mock"
	"github.com/yushkumar524/BiasLabPrototype/internal/repository"
)

func main() {

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	seed := cfg.CorpusSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	generator := mock.NewGenerator(seed)
	articles := generator.Articles()
	narratives := generator.Narratives(articles)
	slog.Info("corpus generated", "articles", len(articles), "narratives", len(narratives))

	repo := repository.NewCorpusRepository(articles, narratives)
	articleHandler := handler.NewArticleHandler(repo)
	narrativeHandler := handler.NewNarrativeHandler(repo)
	statsHandler := handler.NewStatsHandler(repo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", statsHandler.GetRoot)
	r.GET("/health", statsHandler.GetHealth)
	r.GET("/articles", articleHandler.GetArticles)
	r.GET("/articles/:id", articleHandler.GetArticle)
	r.GET("/narratives", narrativeHandler.GetNarratives)
	r.GET("/narratives/:id", narrativeHandler.GetNarrative)
	r.GET("/narratives/:id/timeline", narrativeHandler.GetNarrativeTimeline)
	r.GET("/narratives/:id/articles", narrativeHandler.GetNarrativeArticles)
	r.GET("/stats", statsHandler.GetStats)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
