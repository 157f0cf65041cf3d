package cmd

import (
	"fmt"
	"os"

	"github.com/coregx/guestbook"
	"github.com/coregx/guestbook/internal/config"
	"github.com/coregx/guestbook/internal/logging"
	"github.com/coregx/guestbook/internal/storage"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "guestbook-cli",
		Short: "Guestbook command-line client",
		Long: `guestbook-cli posts to and reads the guestbook message log directly
from the configured storage backend, without going through the HTTP server.

Storage is configured with the same environment variables (or .env file) as
the server: STORAGE_BACKEND, LOGFILE_PATH, DB_NAME, DB_HOST, ...

Use "guestbook-cli [command] --help" for more information about a command.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newPostCmd(), newListCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withGuestbook opens the configured storage, runs fn and closes the storage again.
func withGuestbook(cmd *cobra.Command, fn func(gb *guestbook.Guestbook) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(verbose)
	repo, err := storage.Open(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to close storage: %v\n", closeErr)
		}
	}()

	gb, err := guestbook.New(
		guestbook.WithRepository(repo),
		guestbook.WithLogger(logger),
		guestbook.WithDefaultPageSize(cfg.Guestbook.DefaultPageSize),
	)
	if err != nil {
		return err
	}
	return fn(gb)
}
