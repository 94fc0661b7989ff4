package trafficplayback

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theoremus-urban-solutions/traffic-playback/config"
)

var (
	server *http.Server
)

func StartServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/playback/view.json", handleView)
	mux.HandleFunc("/api/playback/frame.json", handleFrame)
	mux.HandleFunc("/api/playback/statistics.json", handleStatistics)
	mux.HandleFunc("/api/playback/play", handlePlay)
	mux.HandleFunc("/api/playback/pause", handlePause)
	mux.HandleFunc("/api/playback/step", handleStep)
	mux.HandleFunc("/api/playback/reload", handleReload)

	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	if controller != nil {
		controller.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
