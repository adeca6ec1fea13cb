package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"go3dview/internal/config"
	"go3dview/internal/controller"
	"go3dview/internal/model"
	"go3dview/internal/web"
	"go3dview/pkg/watcher"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serve a model over HTTP with live reload",
	Long: `Start a local HTTP server exposing the model as JSON and binary glTF.
Connected browsers are notified over a websocket when the watched file
changes on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	sourceFile := args[0]

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	addr := serveAddr
	if addr == "" {
		addr = cfg.ServeAddr
	}

	mdl := model.New()
	srv := web.NewServer()
	ctrl := controller.New(mdl, srv)

	if err := ctrl.LoadModel(sourceFile); err != nil {
		return err
	}

	fw, err := watcher.New(sourceFile, 500*time.Millisecond, func(path string) {
		if err := ctrl.LoadModel(path); err != nil {
			log.Printf("[serve] Reload failed: %v", err)
			return
		}
		log.Printf("[serve] Model reloaded: %s", path)
	})
	if err != nil {
		log.Printf("[serve] File watching unavailable: %v", err)
	} else {
		fw.Start()
		defer fw.Close()
		log.Printf("[serve] Watching file for changes: %s", sourceFile)
	}

	return srv.ListenAndServe(addr)
}
