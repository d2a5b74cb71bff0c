// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/kpereira/lobbychat/internal/ai"
	"github.com/kpereira/lobbychat/internal/config"
	"github.com/kpereira/lobbychat/internal/hub"
	"github.com/kpereira/lobbychat/internal/lobby"
	"github.com/kpereira/lobbychat/internal/middleware"
	"github.com/kpereira/lobbychat/internal/persona"
	"github.com/kpereira/lobbychat/internal/server"
	"github.com/kpereira/lobbychat/internal/trivia"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	h := hub.New(logger)
	store := lobby.NewStore(trivia.NewBank())
	registry := persona.NewRegistry()
	completer := ai.NewClient(cfg.OpenAIAPIBase, cfg.OpenAIAPIKey, cfg.OpenAIModel)

	srv := server.New(logger, h, store, registry, completer)

	go srv.RunTriviaScheduler(context.Background(), cfg.TriviaInterval)

	mux := http.NewServeMux()
	mux.Handle("/ws", middleware.LogMiddleware(logger)(srv.WSHandler()))

	addr := ":" + cfg.Port
	logger.Infof("lobby server running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
