package cli

import (
	"github.com/spf13/cobra"

	"github.com/pixelsmith/gamepainter/internal/config"
	"github.com/pixelsmith/gamepainter/internal/server"
)

// newServeCmd creates the serve command running the HTTP tool server.
// The server exposes every drawing operation as a JSON tool endpoint and
// shuts down gracefully on SIGINT/SIGTERM.
func newServeCmd(cfgPath *string) *cobra.Command {
	var addr, outputDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP tool server",
		Long: `Serve exposes the painting engine as an HTTP tool API.

GET  /v1/tools        lists the tool catalog
POST /v1/tools/{name} invokes a tool with a JSON parameter object`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			logger.Debug("configuration resolved", "addr", cfg.Addr, "output_dir", cfg.OutputDir)
			return server.New(cfg, logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for generated images (overrides config)")

	return cmd
}
