package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/iburimskiy/purpletab/internal/config"
	"github.com/iburimskiy/purpletab/internal/secheaders"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve DIR",
	Short: "Serve a directory of static files with the page's security headers",
	Args:  cobra.ExactArgs(1),
	RunE:  serve,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("serve: %s is not a directory", dir)
	}
	env := config.Environment(envName)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           secheaders.Middleware(env, http.FileServer(http.Dir(dir))),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[Serve] shutdown: %v", err)
		}
	}()

	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Serving")+" "+dir+" on http://"+serveAddr+faintStyle.Render(" ("+env+")"))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
