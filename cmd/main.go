package main

import (
	"flag"
	"os"

	"byrates/internal/app"

	"github.com/sirupsen/logrus"
)

// @title byrates API
// @version 1.0
// @description Official, crypto and bank cash rates for Belarus with currency conversion.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := app.Run(*configPath); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
