package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"codeweaver/internal/ai"
	"codeweaver/internal/ai/component"
	"codeweaver/internal/config"
	"codeweaver/internal/handler"
	"codeweaver/internal/prompt"
	"codeweaver/internal/server/middleware"
	"codeweaver/internal/service"
)

// Server is the HTTP server with its two fixed generation bindings.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
}

// New creates the server: one ChatModel per provider binding, the chains
// and services on top, then routes.
func New(cfg *config.Config) (*Server, error) {
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	ctx := context.Background()

	codeModel, err := component.NewChatModel(ctx, &cfg.Providers.DeepSeek)
	if err != nil {
		return nil, fmt.Errorf("failed to create code chat model: %w", err)
	}
	log.Info().
		Str("base_url", cfg.Providers.DeepSeek.BaseURL).
		Str("model", cfg.Providers.DeepSeek.Model).
		Msg("initialized code generation model")

	docsModel, err := component.NewChatModel(ctx, &cfg.Providers.Groq)
	if err != nil {
		return nil, fmt.Errorf("failed to create docs chat model: %w", err)
	}
	log.Info().
		Str("base_url", cfg.Providers.Groq.BaseURL).
		Str("model", cfg.Providers.Groq.Model).
		Msg("initialized docs generation model")

	codeSvc := service.NewGenerationService(
		ai.NewGenerationChain(codeModel, prompt.Code), prompt.Code)
	docsSvc := service.NewGenerationService(
		ai.NewGenerationChain(docsModel, prompt.Docs), prompt.Docs)

	srv := &Server{
		cfg:    cfg,
		engine: engine,
	}

	srv.setupRoutes(codeSvc, docsSvc)

	return srv, nil
}

// setupRoutes registers middleware and routes.
func (s *Server) setupRoutes(codeSvc, docsSvc *service.GenerationService) {
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS(s.cfg.CORS.AllowOrigin))

	healthHandler := handler.NewHealthHandler(s.cfg)
	s.engine.GET("/health", healthHandler.Health)

	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.engine.Group("/api")
	{
		delay := s.cfg.Stream.Delay
		api.POST("/generate-code", handler.NewGenerateHandler(codeSvc, delay).Generate)
		api.POST("/generate-docs", handler.NewGenerateHandler(docsSvc, delay).Generate)
	}
}

// Run starts the server and blocks until ctx is cancelled or the listener
// fails.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine exposes the Gin engine (for tests)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
