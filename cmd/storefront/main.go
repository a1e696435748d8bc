package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/config"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/notify"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/web"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[Storefront] Could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Storefront] Configuration error: %v", err)
	}

	log.Println("[Storefront] ========================================")
	log.Println("[Storefront] Shopcart Storefront")
	log.Println("[Storefront] ========================================")
	log.Printf("[Storefront] Environment: %s", cfg.Env)
	log.Printf("[Storefront] Backend API: %s", cfg.BackendBaseURL)
	log.Printf("[Storefront] Redis: %s", cfg.RedisAddr)
	if cfg.DemoFallback {
		log.Println("[Storefront] Demo fallback: enabled")
	}

	rdb := session.NewRedis(cfg.RedisAddr)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("[Storefront] Failed to connect to Redis: %v", err)
	}
	log.Println("[Storefront] Connected to Redis")

	store := session.NewStore(rdb)
	tokens := session.NewTokenService(cfg.SessionSecret, session.TTLSession)
	sessions := session.NewManager(store, tokens, cfg.SecureCookies)
	broadcaster := session.NewBroadcaster(rdb)
	flasher := notify.NewFlasher(store)

	backendClient := backend.NewClient(cfg.BackendBaseURL, web.SessionCredentials{Store: store})

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("[Storefront] Failed to parse templates: %v", err)
	}

	handlers := web.NewHandlers(backendClient, sessions, flasher, broadcaster, renderer, cfg.DemoFallback)
	router := web.NewRouter(handlers)

	// Session-change subscriber: drop the cached cart count so the next
	// nav poll refetches it, in every process serving this session.
	subscriberDone := make(chan struct{})
	go func() {
		defer close(subscriberDone)
		err := broadcaster.Run(ctx, func(change session.Change) {
			switch change.Kind {
			case session.ChangeCart, session.ChangeAuth:
				if err := store.InvalidateCartCount(ctx, change.SessionID); err != nil {
					log.Printf("[Storefront] Failed to invalidate cart count: %v", err)
				}
			}
		})
		if err != nil && ctx.Err() == nil {
			log.Printf("[Storefront] Session subscriber error: %v", err)
		}
	}()

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.Println("[Storefront] ========================================")
		log.Printf("[Storefront] Server started on %s", cfg.HTTPAddr)
		log.Println("[Storefront] ========================================")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[Storefront] Server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[Storefront] Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Storefront] Shutdown error: %v", err)
	}

	<-subscriberDone
	log.Println("[Storefront] Stopped")
}
