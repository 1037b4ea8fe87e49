package server

import (
	"summithub-profiles/internal/auth"
	"summithub-profiles/internal/cache"
	"summithub-profiles/internal/config"
	"summithub-profiles/internal/route"
	"summithub-profiles/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
	Routes *route.Service
}

// NewServer builds the HTTP app. pg and redisClient may be nil; the server
// then serves the catalog read-only and computes every artifact on demand.
func NewServer(cfg config.Config, pg *pgxpool.Pool, redisClient *redis.Client) (*Server, error) {
	catalog, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	var store *route.Store
	if pg != nil {
		store = route.NewStore(pg)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	hub := stream.NewHub(redisClient)
	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     pg,
		Redis:  redisClient,
		Stream: hub,
		Routes: route.NewService(route.NewFallback(store, catalog), store, cache.New(redisClient, cfg.CacheTTL), hub),
	}

	registerRoutes(s)
	return s, nil
}

// LoadCatalog returns the routes file named in the config, or the built-in
// catalog when none is set.
func LoadCatalog(cfg config.Config) (*route.Catalog, error) {
	if cfg.RoutesFile == "" {
		return route.Builtin(), nil
	}
	return route.LoadCatalog(cfg.RoutesFile)
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	route.RegisterRoutes(s.App.Group("/routes"), s.Routes, jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
