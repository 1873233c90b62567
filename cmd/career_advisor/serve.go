package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing parse, match, skill-gap, and learning-path endpoints plus account registration and login.",
	RunE:  runServe,
}

var (
	serveAddrFlag    string
	serveConfigFlag  string
	serveCleanupFlag string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().StringVarP(&serveConfigFlag, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveCleanupFlag, "cleanup", "", "Clean-up pass: off, heuristic, or model")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(config.Config{
		ListenAddr: serveAddrFlag,
		Cleanup:    serveCleanupFlag,
	}, serveConfigFlag)
	if err != nil {
		return err
	}

	addr := cfg.ListenAddr
	if addr == "" {
		addr = ":8080"
	}
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	srv, err := server.New(server.Config{
		Addr:        addr,
		DatabaseURL: databaseURL,
		APIKey:      resolveAPIKey(cfg),
		Cleanup:     cfg.Cleanup,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
