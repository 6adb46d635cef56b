package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"commandcenter/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(context.Background(), cfg, log)
	},
}
