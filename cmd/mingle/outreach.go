package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mingle-backend/internal/dto"
)

var urgencies = []string{"high", "medium", "low"}

func newQueryCmd(a *app) *cobra.Command {
	q := dto.RankRequest{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Rank everyone else against what you need",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !contains(urgencies, q.Urgency) {
				return fmt.Errorf("urgency must be one of high, medium, low")
			}
			all, err := a.api.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}
			if len(all) == 0 {
				return errors.New("no profiles found, create some profiles first")
			}
			id, err := a.ids.Load()
			if err != nil {
				return err
			}

			byID := map[string]dto.ProfileResponse{}
			q.Candidates = q.Candidates[:0]
			for _, p := range all {
				if p.ID == id.MyProfileID {
					continue
				}
				q.Candidates = append(q.Candidates, p)
				byID[p.ID] = p
			}
			if len(q.Candidates) == 0 {
				return errors.New("no other profiles to match against")
			}

			res, err := a.api.RankContacts(cmd.Context(), q)
			if err != nil {
				return err
			}
			if len(res.Rankings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches.")
				return nil
			}
			for _, r := range res.Rankings {
				printMatch(cmd.OutOrStdout(), r, byID[r.ContactID])
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&q.QueryLookingFor, "looking-for", "Co-founder", "what you are looking for")
	fl.StringVar(&q.QueryDomain, "domain", "AI/ML", "domain")
	fl.StringVar(&q.QueryHelpType, "help-type", "Technical advice", "kind of help")
	fl.StringVar(&q.Urgency, "urgency", "medium", "high, medium or low")
	return cmd
}

func newDraftCmd(a *app) *cobra.Command {
	var context string
	cmd := &cobra.Command{
		Use:   "draft <recipient-id>",
		Short: "Draft an outreach message from you to another profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			senderID, err := a.profileArg(nil)
			if err != nil {
				return err
			}
			sender, err := a.api.GetProfile(cmd.Context(), senderID)
			if err != nil {
				return err
			}
			recipient, err := a.api.GetProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			res, err := a.api.DraftOutreach(cmd.Context(), dto.DraftRequest{
				Sender:    *sender,
				Recipient: *recipient,
				Context:   context,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&context, "context", "", "what you want to talk about")
	return cmd
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
