package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avdeyev/av_go_tiny_link/internal/api/rest"
	"github.com/avdeyev/av_go_tiny_link/internal/config"
	"github.com/avdeyev/av_go_tiny_link/internal/logger"
	"github.com/avdeyev/av_go_tiny_link/internal/storage/inmemory"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// get configuration
	cfg, err := config.NewDefaultConfiguration()
	if err != nil {
		log.Fatal(err)
	}
	cfg.ParseFlags()
	if err := logger.Init(cfg.ServerConfig.LogLevel); err != nil {
		log.Fatal(err)
	}
	// initialize storage; both stores live in process memory only
	st := inmemory.InitStorage()
	// initialize server
	server, err := rest.InitServer(cfg, st)
	if err != nil {
		logger.Log.Fatal(err)
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		logger.Log.Info("Server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(ctx, 5*time.Second)
		defer cancelTO()
		if err := server.Shutdown(ctxTO); err != nil {
			logger.Log.Fatal("Server shutdown failed:", err)
		}
		cancel()
	}()
	// start up the server
	logger.Log.Info("Server start attempted")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatal(err)
	}
	logger.Log.Info("Server shutdown succeeded")
}
