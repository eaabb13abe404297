package main // Entry point package

import (
	"context"
	"log" // Logging library
	"time"

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/studio-booking/internal/booking"
	"github.com/iliyamo/studio-booking/internal/config" // Internal config loader
	"github.com/iliyamo/studio-booking/internal/database"
	"github.com/iliyamo/studio-booking/internal/handler"
	"github.com/iliyamo/studio-booking/internal/queue"
	"github.com/iliyamo/studio-booking/internal/repository"
	"github.com/iliyamo/studio-booking/internal/router" // Internal router setup
)

func main() {
	// Load .env if present; real deployments inject the environment
	// directly and the file is simply absent.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("migrate: %v", err)
	}
	cancel()

	// Redis is optional: repositories and the rate limiter degrade
	// gracefully when the client is nil or the server is unreachable.
	rdb := config.NewRedisClient()
	rateCfg := config.LoadRateLimitConfig()

	rooms := repository.NewRoomRepo(db)
	reservations := repository.NewReservationRepo(db)
	closures := repository.NewClosureRepo(db)
	hours := repository.NewBusinessHourRepo(db, rdb)
	rules := repository.NewPriceRuleRepo(db, rdb)

	coordinator := booking.NewCoordinator(reservations, closures, hours, rules, booking.Rates{
		TaxRatePercent:      cfg.TaxRatePercent,
		AdminFeeRatePercent: cfg.AdminFeeRatePercent,
	})

	bookingHandler := handler.NewBookingHandler(rooms, coordinator)
	hostHandler := handler.NewHostHandler(rooms, hours, closures, rules, reservations)

	// The consumer tails booking.committed and appends to the booking
	// log.  It reconnects on broker outages and never takes the API
	// down with it.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("queue consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterBooking(e, bookingHandler, cfg.JWTSecret, rateCfg, rdb)
	router.RegisterHost(e, hostHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
