// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/toeirei/fxconsole/internal/i18n"
	"github.com/toeirei/fxconsole/internal/logging"
	"github.com/toeirei/fxconsole/internal/sandbox"
)

func newSandboxCmd() *cobra.Command {
	var addr string
	var serveOnly bool

	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Run an in-memory exchange API",
		Long: `Starts an in-memory exchange API seeded with a few currencies and rates,
then opens the console against it. With --serve-only the API runs until
interrupted. Nothing is persisted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("could not listen on %s: %w", addr, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.sandbox_listening", ln.Addr().String()))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !verbose {
				gin.SetMode(gin.ReleaseMode)
			}
			srv := sandbox.New(sandbox.NewSeededStore())
			if serveOnly {
				return srv.Serve(ctx, ln)
			}

			serveErr := make(chan error, 1)
			go func() { serveErr <- srv.Serve(ctx, ln) }()

			appConfig.API.BaseURL = "http://" + ln.Addr().String()
			c, err := newClient()
			if err != nil {
				stop()
				<-serveErr
				return err
			}
			defer c.Close(context.Background())

			runErr := runTUI(ctx, c)
			stop()
			if err := <-serveErr; err != nil {
				logging.Errorf("sandbox shutdown: %v", err)
			}
			return runErr
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")
	cmd.Flags().BoolVar(&serveOnly, "serve-only", false, "Only serve the API, do not open the console")
	return cmd
}
