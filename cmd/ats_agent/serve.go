package main

import (
	"fmt"
	"os"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveDictionary string
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring resumes against job descriptions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDictionary, "dictionary", "", "Path to a JSON skill dictionary override (defaults to the built-in dictionary)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := servePort
	dictionaryPath := serveDictionary
	databaseURL := os.Getenv("DATABASE_URL")

	if serveConfigFile != "" {
		cfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Flags set explicitly on the command line win over the config file.
		if cfg.Port != 0 && !cmd.Flags().Changed("port") {
			port = cfg.Port
		}
		if cfg.Dictionary != "" && dictionaryPath == "" {
			dictionaryPath = cfg.Dictionary
		}
		if cfg.DatabaseURL != "" && databaseURL == "" {
			databaseURL = cfg.DatabaseURL
		}
	}

	if dictionaryPath == "" {
		dictionaryPath = os.Getenv("ATS_DICTIONARY")
	}

	srv, err := server.New(server.Config{
		Port: port,
		// Optional: without a database the history endpoints report unavailable.
		DatabaseURL:    databaseURL,
		DictionaryPath: dictionaryPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
