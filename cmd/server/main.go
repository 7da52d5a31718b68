package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yourusername/order-notifier/internal/config"
	"github.com/yourusername/order-notifier/internal/events"
	"github.com/yourusername/order-notifier/internal/handlers"
	"github.com/yourusername/order-notifier/internal/repository"
	"github.com/yourusername/order-notifier/internal/router"
	"github.com/yourusername/order-notifier/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "./config.yaml"
	}
	configPath := flag.String("config", defaultConfig, "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	fb, err := config.InitFirebase(ctx, cfg.Firebase)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer fb.Close()

	notifier := services.NewOrderNotifier(services.OrderNotifierOptions{
		Notifications: repository.NewNotificationRepository(fb.Firestore, cfg.Notifications.Collection, cfg.Notifications.Subcollection),
		Sellers:       repository.NewSellerRepository(fb.Firestore, cfg.Sellers.Collection),
		Push:          services.NewPushService(fb.Messaging, cfg.Push.AndroidChannelID),
		Text:          cfg.Notifications,
		PushText:      cfg.Push,
	})

	gin.SetMode(gin.ReleaseMode)
	r := router.New(router.Options{
		Events:            handlers.NewEventHandler(events.NewDecoder(cfg.Trigger.Document), notifier, cfg.Server.RetryOnFault),
		MaxInstances:      cfg.Server.MaxInstances,
		InvocationTimeout: cfg.Server.InvocationTimeout(),
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Order notifier listening on %s (trigger %s, max %d concurrent)",
			cfg.Server.Addr, cfg.Trigger.Document, cfg.Server.MaxInstances)
		serverErr <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Printf("Shutdown signal received: %s", sig)
	case err := <-serverErr:
		if err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
