package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"opsboard/cmd"
	adapter "opsboard/internal/adapters/in/http"
	"opsboard/internal/seed"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(configs)

	if configs.SeedOrders {
		if err := seed.Orders(context.Background(), app.OrderRepository()); err != nil {
			log.Fatalf("Error seeding orders: %v", err)
		}
	}

	if err := app.JobManager().StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer app.JobManager().StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env is fine; defaults cover everything but are
	// overridable from the environment.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		SubmitLatencyMS:   envInt("SUBMIT_LATENCY_MS"),
		BookingLatencyMS:  envInt("BOOKING_LATENCY_MS"),
		MessageLatencyMS:  envInt("MESSAGE_LATENCY_MS"),
		ToastDurationMS:   envInt("TOAST_DURATION_MS"),
		OverlayDurationMS: envInt("OVERLAY_DURATION_MS"),
		MessageTemplates:  envList("MESSAGE_TEMPLATES"),
		SeedOrders:        envOrDefault("SEED_ORDERS", "true") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// envList splits a pipe-separated environment variable into trimmed values.
// Templates carry commas, so the separator is "|".
func envList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, "|")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

func envInt(key string) int {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	adapter.NewServer(app.Controller()).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
