package server

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jalez/resident-committee-portal-sub004/internal/config"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/analyze"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/suggest"
	"github.com/Jalez/resident-committee-portal-sub004/internal/llm"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

type Server struct {
	Store    *store.Store
	Pipeline *suggest.Pipeline
	Log      *logrus.Logger
	Port     string
}

// NewServer wires config, store, LLM client and the analyzer registry.
// A missing LLM credential is not fatal: the portal runs with analysis
// degraded to "no suggestions" results.
func NewServer() *Server {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Warnf("could not load %s, using defaults", cfgPath)
		cfg = config.Default()
	}

	applyEnvOverrides(cfg)

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	if err := store.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	st := store.New(db)

	client, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize LLM client")
	}
	if client == nil {
		log.Warn("no LLM credential configured; analyzers will return errors instead of suggestions")
	}

	registry, err := analyze.NewRegistry(client, cfg.Analysis)
	if err != nil {
		log.WithError(err).Fatal("analyzer registry is incomplete")
	}

	pipeline := suggest.NewPipeline(
		st,
		registry,
		time.Duration(cfg.LLM.TimeoutSeconds)*time.Second,
		cfg.LLM.Model,
		log,
	)

	return &Server{
		Store:    st,
		Pipeline: pipeline,
		Log:      log,
		Port:     cfg.Server.Port,
	}
}

func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/entities/:type/:id/relationships", s.LoadRelationships)
	r.POST("/entities/:type/:id/relationships", s.SaveRelationships)
	r.POST("/entities/:type/:id/analyze", s.AnalyzeEntity)
	r.POST("/entities/:type/:id/suggestions/accept", s.AcceptSuggestion)
	r.PATCH("/entities/:type/:id", s.UpdateEntity)

	return r
}
