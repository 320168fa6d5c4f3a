// Command mingle is the terminal front end for the Mingle backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mingle-backend/internal/client"
	"mingle-backend/internal/identity"
	"mingle-backend/internal/logger"
)

// app carries the resolved global flags into every subcommand
type app struct {
	serverURL    string
	identityPath string
	verbose      bool

	log *logger.Logger
	api *client.Client
	ids *identity.Store
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "mingle",
		Short:         "Networking profiles, saved contacts and AI outreach",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.serverURL, "server", envOr("MINGLE_API_URL", "http://localhost:8080/api"), "backend API base URL")
	root.PersistentFlags().StringVar(&a.identityPath, "identity", os.Getenv("MINGLE_IDENTITY_FILE"), "identity file (default <config dir>/mingle/identity.json)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newWhoamiCmd(a),
		newProfileCmd(a),
		newQRCmd(a),
		newNetworkCmd(a),
		newQueryCmd(a),
		newDraftCmd(a),
	)
	return root
}

func (a *app) init() error {
	a.log = logger.Nop()
	if a.verbose {
		l, err := logger.New(logger.Options{Mode: "dev", Level: "debug"})
		if err != nil {
			return err
		}
		a.log = l
	}

	path := a.identityPath
	if path == "" {
		p, err := identity.DefaultPath()
		if err != nil {
			return fmt.Errorf("locate identity file: %w", err)
		}
		path = p
	}
	a.ids = identity.NewStore(path)
	a.api = client.New(a.serverURL)
	a.log.Debug("client ready", "server", a.serverURL, "identity", path)
	return nil
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show your owner id and profile id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.ids.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "user id:    %s\n", id.UserID)
			fmt.Fprintf(out, "profile id: %s\n", orNone(id.MyProfileID))
			return nil
		},
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
