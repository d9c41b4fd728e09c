package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/resumesmith/resumesmith/pkg/api"
	"github.com/resumesmith/resumesmith/pkg/config"
	"github.com/resumesmith/resumesmith/pkg/llm"
	"github.com/resumesmith/resumesmith/pkg/profile"
	"github.com/resumesmith/resumesmith/pkg/renderer"
	"github.com/resumesmith/resumesmith/pkg/resume"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var listenAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API server exposing profile management and resume generation.

Endpoints:
  GET    /profiles
  POST   /profiles
  GET    /profiles/:name
  DELETE /profiles/:name
  POST   /generate

Example:
  resumesmith serve --addr :8080`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	logger := newLogger()

	var store *profile.Store
	store, err = profile.NewStore(cfg.ProfilesDir)
	if err != nil {
		return err
	}

	client := llm.NewClient(cfg.AnthropicAPIKey, cfg.GetModel(), logger)
	synth := resume.NewSynthesizer(client, logger)
	rend := renderer.New(cfg.TemplatePath, cfg.ChromePath, logger)

	server := api.NewServer(store, synth, rend, logger)

	addr := listenAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		fmt.Println("\nShutting down server...")
		shutdownErr := server.Shutdown()
		if shutdownErr != nil {
			logger.Error().Err(shutdownErr).Msg("server shutdown failed")
		}
	}()

	err = server.Listen(addr)
	if err != nil {
		err = errors.Wrapf(err, "server failed on %s", addr)
		return err
	}

	return err
}
