package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/transit-tools/station-insights/pkg/server"
	"github.com/transit-tools/station-insights/pkg/services/config"
	"github.com/transit-tools/station-insights/pkg/services/report"
	"github.com/transit-tools/station-insights/pkg/services/variate"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the station ridership analytics API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional server config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	generator := report.NewGenerator(variate.New())

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.ShutdownTimeout(),
		Dependencies: server.Dependencies{
			Reports: generator,
		},
	})

	return api.Start()
}
