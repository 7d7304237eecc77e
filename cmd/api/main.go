package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnomesuite/petstore-api/internal/config"
	"github.com/gnomesuite/petstore-api/internal/handler"
	"github.com/gnomesuite/petstore-api/internal/model"
	"github.com/gnomesuite/petstore-api/internal/repository"
	"github.com/gnomesuite/petstore-api/internal/router"
	"github.com/gnomesuite/petstore-api/internal/service"
)

const version = "1.0.0"

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	// Repositories: process-lifetime in-memory collections, reset on restart.
	var pets []model.Pet
	var users []model.User
	if cfg.Store.SeedData {
		pets = repository.SeedPets()
		users = repository.SeedUsers()
	}
	petRepo := repository.NewPetRepository(pets)
	orderRepo := repository.NewOrderRepository()
	userRepo := repository.NewUserRepository(users)

	// Services
	petSvc := service.NewPetService(petRepo)
	orderSvc := service.NewOrderService(orderRepo, petRepo, userRepo)
	userSvc := service.NewUserService(userRepo)

	// Router
	engine := router.New(log, router.Handlers{
		Health: handler.NewHealthHandler(version),
		Pets:   handler.NewPetHandler(petSvc),
		Orders: handler.NewOrderHandler(orderSvc),
		Users:  handler.NewUserHandler(userSvc),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
