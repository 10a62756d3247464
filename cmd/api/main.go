package main

import (
	"context"
	"net/http"

	"border-blur/docs"
	"border-blur/internal/config"
	"border-blur/internal/handler"
	"border-blur/internal/metrics"
	"border-blur/internal/overpass"
	"border-blur/internal/repository"
	"border-blur/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title		border-blur API
//	@version	1.0
//	@description	NYC borough boundary assembly and point-classification service.

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	docs.SwaggerInfo.Host = config.ServerAddress

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Initialize layers
	repo := repository.NewRepository(conn)
	source := overpass.NewClient(config.OverpassURL, log.Logger)

	boundaryService := service.NewBoundaryService(source, repo, config.SimplifyStride, appMetrics, log.Logger)
	store, err := boundaryService.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load boundaries from db")
	}
	if store.Len() == 0 {
		log.Warn().Msg("no boundaries loaded; run the importer to fetch and assemble them")
	}

	classifyService := service.NewClassifyService(store, config.BatchWorkers, appMetrics, log.Logger)

	classifyHandler := handler.NewClassifyHandler(classifyService)
	regionsHandler := handler.NewRegionsHandler(classifyService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"boroughs": store.Len(),
		})
	})

	r.GET("/classify", classifyHandler.Classify)
	r.POST("/classify/batch", classifyHandler.ClassifyBatch)
	r.GET("/regions", regionsHandler.Regions)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
