package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"border-blur/internal/config"
	"border-blur/internal/metrics"
	"border-blur/internal/overpass"
	"border-blur/internal/repository"
	"border-blur/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

func main() {
	stride := flag.Int("stride", 0, "Simplification stride (0 uses the configured value)")
	flag.Parse()

	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *stride > 0 {
		cfg.SimplifyStride = *stride
	}

	fmt.Printf("Fetching borough boundaries from %s\n", cfg.OverpassURL)

	ctx := context.Background()

	// Connect to DB
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Ensure table exists
	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}

	// Fetch, assemble, and persist
	source := overpass.NewClient(cfg.OverpassURL, log.Logger)
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	boundaryService := service.NewBoundaryService(source, repo, cfg.SimplifyStride, appMetrics, log.Logger)

	store, err := boundaryService.Refresh(ctx)
	if err != nil {
		fmt.Printf("Error refreshing boundaries: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	for _, b := range store.Boroughs() {
		bd, _ := store.Boundary(b)
		fmt.Printf("  %-14s full=%d vertices, simplified=%d vertices\n", b, len(bd.Full), len(bd.Simplified))
	}

	fmt.Printf("Successfully imported %d borough boundaries\n", store.Len())
}
