package main

import (
	"fmt"
	"os"

	"price-forecast/internal/api/handlers"
	"price-forecast/internal/api/middleware"
	"price-forecast/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	defaults := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			logrus.WithError(err).Fatalf("load config %s", path)
		}
		defaults = *cfg
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	forecastHandler := handlers.NewForecastHandler(defaults)
	scoreHandler := handlers.NewScoreHandler()
	predictorHandler := handlers.NewPredictorHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/forecast", forecastHandler.RunForecast)
		api.POST("/score", scoreHandler.Score)
		api.GET("/predictors", predictorHandler.ListPredictors)
	}

	addr := fmt.Sprintf(":%s", port)
	logrus.Infof("starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
