package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizbuddy/idea-pipeline/internal/generator"
	"github.com/bizbuddy/idea-pipeline/internal/ratelimit"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/account"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/idea"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/inspiration"
	"github.com/bizbuddy/idea-pipeline/internal/reviser"
	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Generator       generator.Client
	Reviser         reviser.Client
	IdeaRepo        idea.Repository
	AccountRepo     account.Repository
	InspirationRepo inspiration.Repository
	Limiter         ratelimit.Limiter
	Logger          logger.Logger
	Config          *config.Config
}

type Server struct {
	Generator       generator.Client
	Reviser         reviser.Client
	IdeaRepo        idea.Repository
	AccountRepo     account.Repository
	InspirationRepo inspiration.Repository
	Limiter         ratelimit.Limiter
	Logger          logger.Logger
	Config          *config.Config

	engine *gin.Engine
}

func New(opts Opts) *Server {
	s := &Server{
		Generator:       opts.Generator,
		Reviser:         opts.Reviser,
		IdeaRepo:        opts.IdeaRepo,
		AccountRepo:     opts.AccountRepo,
		InspirationRepo: opts.InspirationRepo,
		Limiter:         opts.Limiter,
		Logger:          opts.Logger.WithComponent("HTTPServer"),
		Config:          opts.Config,
	}

	if opts.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	s.engine = engine
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.healthz)

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/accounts", s.listAccounts)

		accounts := v1.Group("/accounts/:accountID")
		{
			accounts.GET("/ideas", s.listIdeas)
			accounts.POST("/ideas", s.createIdea)
			accounts.POST("/ideas/generate", s.generateIdea)
			accounts.DELETE("/ideas", s.deleteIdeasByCaption)
			accounts.POST("/inspiration", s.createInspiration)
		}

		ideas := v1.Group("/ideas/:ideaID")
		{
			ideas.GET("", s.getIdea)
			ideas.POST("/tweak", s.tweakIdea)
			ideas.PUT("", s.updateIdea)
			ideas.DELETE("", s.deleteIdea)
		}
	}
}

// Run starts the HTTP server under the fx lifecycle with graceful shutdown.
func Run(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Config.App.Port),
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Logger.Info("Starting HTTP server", "addr", srv.Addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.Logger.Error("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func (s *Server) healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
