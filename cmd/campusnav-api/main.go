// README: Entry point; loads config, selects the AI provider, wires services, starts HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"campusnav/internal/ai"
	"campusnav/internal/config"
	httptransport "campusnav/internal/http"
	"campusnav/internal/infra"
	"campusnav/internal/modules/chat"
	"campusnav/internal/modules/navigation"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.FromConfig(ctx, cfg.AI, nil)
	if err != nil {
		log.Fatalf("ai init: %v", err)
	}
	log.Printf("ai provider: %s", provider.Name())

	var turns chat.TurnStore
	if cfg.Redis.Addr != "" {
		turns = chat.NewRedisStore(infra.NewRedis(cfg.Redis.Addr), cfg.Session.TTL)
		log.Printf("turn store: redis (%s)", cfg.Redis.Addr)
	} else {
		turns = chat.NewMemoryStore()
		log.Print("turn store: in-memory")
	}

	chatSvc := chat.NewService(provider, turns)
	navSvc := navigation.NewService()

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(chatSvc, navSvc),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
