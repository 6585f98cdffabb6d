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

	"booking-api/config"
	"booking-api/controllers"
	"booking-api/routes"
	"booking-api/services"
	"booking-api/utils"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established, migrations applied")

	strict := services.StrictOverlapFromEnv(os.Getenv("AVAILABILITY_STRICT_OVERLAP"))
	if strict {
		log.Println("availability: strict interval-overlap mode enabled")
	}

	roomService := services.NewRoomService(db)
	availabilityService := services.NewAvailabilityService(db, strict)
	bookingService := services.NewBookingService(db)

	roomController := controllers.NewRoomController(roomService)
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	bookingController := controllers.NewBookingController(bookingService)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis not configured or unreachable; room-list cache disabled")
	}

	router := routes.SetupRouter(roomController, bookingController, availabilityController, rdb)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
