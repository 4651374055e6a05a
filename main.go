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

	"hostal-backend/config"
	"hostal-backend/controllers"
	"hostal-backend/routes"
	"hostal-backend/services"
	"hostal-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB

	// Initialize services
	authService := services.NewAuthService(db)
	userService := services.NewUserService(db, authService)
	clientService := services.NewClientService(db)
	roomService := services.NewRoomService(db)
	paymentService := services.NewPaymentService(db)
	reservationService := services.NewReservationService(db)
	reportService := services.NewReportService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	clientController := controllers.NewClientController(clientService)
	roomController := controllers.NewRoomController(roomService, reservationService)
	paymentController := controllers.NewPaymentController(paymentService)
	reservationController := controllers.NewReservationController(reservationService)
	reportController := controllers.NewReportController(reportService)

	router := routes.SetupRouter(
		authController,
		userController,
		clientController,
		roomController,
		paymentController,
		reservationController,
		reportController,
	)

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
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
