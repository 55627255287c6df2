package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getmockd/wsdlgen/pkg/cli/internal/flags"
	"github.com/getmockd/wsdlgen/pkg/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var (
	serveAddr       string
	serveProperties string
	serveSet        flags.KeyValues
)

var serveCmd = &cobra.Command{
	Use:   "serve <definition-file>",
	Short: "Publish the WSDLs of all adapters over HTTP",
	Long: `Publish the WSDLs of all adapters of a definition file over HTTP.

  GET /                 lists the adapters as JSON
  GET /<adapter>?wsdl   returns the WSDL
  GET /<adapter>?zip    returns the WSDL bundled with its schemas

Service addresses default to the URL the WSDL was requested with.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVarP(&serveProperties, "properties", "p", "", "Properties file (default: the one named in the definition file)")
	serveCmd.Flags().Var(&serveSet, "set", "Set a property (repeatable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition(args[0], serveProperties, serveSet)
	if err != nil {
		return err
	}

	h := server.NewHandler(def.file.AllAdapters(def.fsys), def.options())
	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("serving wsdls", "addr", serveAddr, "adapters", len(def.file.Adapters))
	fmt.Fprintf(cmd.ErrOrStderr(), "Serving %d adapters on %s\n", len(def.file.Adapters), serveAddr)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "\nShutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
