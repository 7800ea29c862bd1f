// Package rest provides functionality for initializing a server for the link
// shortening service.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/avdeyev/av_go_tiny_link/internal/api/rest/handlers"
	"github.com/avdeyev/av_go_tiny_link/internal/api/rest/middleware"
	"github.com/avdeyev/av_go_tiny_link/internal/config"
	"github.com/avdeyev/av_go_tiny_link/internal/logger"
	authService "github.com/avdeyev/av_go_tiny_link/internal/service/auth/v1"
	identifierService "github.com/avdeyev/av_go_tiny_link/internal/service/identifier/v1"
	sessionService "github.com/avdeyev/av_go_tiny_link/internal/service/session/v1"
	shortenerService "github.com/avdeyev/av_go_tiny_link/internal/service/shortener/v1"
	userdirService "github.com/avdeyev/av_go_tiny_link/internal/service/userdir/v1"
	"github.com/avdeyev/av_go_tiny_link/internal/storage"
)

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(cfg *config.Config, st storage.Storage) (server *http.Server, err error) {
	generator := identifierService.NewGenerator()
	processor, err := shortenerService.InitShortener(generator, st)
	if err != nil {
		return nil, err
	}
	directory, err := userdirService.InitUserDirectory(st)
	if err != nil {
		return nil, err
	}
	authorizer, err := authService.InitService(directory, processor)
	if err != nil {
		return nil, err
	}
	sessions := sessionService.NewManager(cfg.SecretConfig)
	linkHandler, err := handlers.InitLinkHandler(authorizer, sessions, cfg.ServerConfig, cfg.SecretConfig)
	if err != nil {
		return nil, err
	}
	principalHandler, err := middleware.NewPrincipalHandler(sessions, cfg.SecretConfig)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(logger.RequestHandle)
	r.Use(principalHandler.PrincipalHandle)
	r.Use(middleware.CompressHandle)
	r.Use(middleware.DecompressHandle)
	r.Post("/api/shorten", linkHandler.HandlePostURL())
	r.Get("/{linkID}", linkHandler.HandleGetURL())
	r.Get("/api/user/urls", linkHandler.HandleGetUserURLs())
	r.Get("/api/user/urls/{linkID}", linkHandler.HandleGetUserURL())
	r.Put("/api/user/urls/{linkID}", linkHandler.HandlePutUserURL())
	r.Delete("/api/user/urls/{linkID}", linkHandler.HandleDeleteUserURL())
	r.Post("/api/user/register", linkHandler.HandleRegister())
	r.Post("/api/user/login", linkHandler.HandleLogin())
	r.Post("/api/user/logout", linkHandler.HandleLogout())
	r.Mount("/debug", chiMiddleware.Profiler())

	srv := &http.Server{
		Addr:         cfg.ServerConfig.ServerAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv, nil
}
