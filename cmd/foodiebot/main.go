// FoodieBot is a conversational assistant for finding FoodieSpot restaurants
// and booking tables. A Groq-hosted model picks tools via a JSON protocol;
// the reservation ledger keeps seat counts honest under concurrent turns.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/foodiespot/foodiebot/internal/agent"
	"github.com/foodiespot/foodiebot/internal/catalog"
	"github.com/foodiespot/foodiebot/internal/channels/terminal"
	"github.com/foodiespot/foodiebot/internal/chatserver"
	"github.com/foodiespot/foodiebot/internal/config"
	"github.com/foodiespot/foodiebot/internal/gateway"
	"github.com/foodiespot/foodiebot/internal/groq"
	"github.com/foodiespot/foodiebot/internal/health"
	"github.com/foodiespot/foodiebot/internal/ledger"
	"github.com/foodiespot/foodiebot/internal/store"
	"github.com/foodiespot/foodiebot/internal/tools"
)

func main() {
	cfg := config.Load()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.GroqAPIKey == "" {
		log.Printf("[MAIN] GROQ_API_KEY not set; the assistant will apologize instead of answering")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	cat := catalog.Default()
	led := ledger.New(db, cat)
	exec := tools.NewExecutor(cat, led)
	client := groq.NewClient(cfg.GroqAPIKey, cfg.Model)
	loop := agent.NewLoop(cfg, db, client, exec)

	gw := gateway.New(loop.RunOneTurn)
	gw.Register(terminal.New())

	if cfg.HTTPAddr != "" {
		checks := health.NewRegistry()
		checks.Register("store", health.CheckFunc(func() health.ComponentHealth {
			if err := db.Ping(); err != nil {
				return health.Errorf("store", err.Error())
			}
			return health.OK("store")
		}))
		checks.Register("ledger", health.CheckFunc(func() health.ComponentHealth {
			bad, err := db.SlotImbalances()
			if err != nil {
				return health.Errorf("ledger", err.Error())
			}
			if len(bad) > 0 {
				return health.Errorf("ledger", fmt.Sprintf("%d slots out of balance", len(bad)))
			}
			return health.OK("ledger")
		}))

		srv := &chatserver.Server{Addr: cfg.HTTPAddr, Gateway: gw, Executor: exec, Health: checks}
		go func() {
			if err := srv.Run(); err != nil {
				log.Printf("[MAIN] chat server: %v", err)
			}
		}()
	}

	return gw.StartAll(ctx)
}
