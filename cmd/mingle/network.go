package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mingle-backend/internal/qr"
)

func newQRCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "qr [id]",
		Short: "Print a profile's share link and optionally save its QR code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.profileArg(args)
			if err != nil {
				return err
			}
			res, err := a.api.GetQR(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.URL)
			if out == "" {
				return nil
			}
			png, err := qr.DecodeDataURL(res.QR)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "QR code written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the PNG to this file")
	return cmd
}

func newNetworkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage the contacts you have saved",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved contacts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.ids.Load()
			if err != nil {
				return err
			}
			contacts, err := a.api.GetNetwork(cmd.Context(), id.UserID)
			if err != nil {
				return err
			}
			if len(contacts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Your network is empty.")
				return nil
			}
			for _, c := range contacts {
				printProfileLine(cmd.OutOrStdout(), c.ProfileResponse)
				fmt.Fprintf(cmd.OutOrStdout(), "    saved %s\n", c.SavedAt)
			}
			return nil
		},
	}

	save := &cobra.Command{
		Use:   "save <profile-id>",
		Short: "Save a profile to your network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.ids.Load()
			if err != nil {
				return err
			}
			if err := a.api.SaveContact(cmd.Context(), id.UserID, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <profile-id>",
		Short: "Remove a profile from your network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.ids.Load()
			if err != nil {
				return err
			}
			if err := a.api.RemoveContact(cmd.Context(), id.UserID, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		},
	}

	cmd.AddCommand(list, save, remove)
	return cmd
}
