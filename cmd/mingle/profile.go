package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mingle-backend/internal/dto"
)

type profileFlags struct {
	id          string
	name        string
	role        string
	company     string
	bio         string
	skills      []string
	lookingFor  []string
	canHelpWith []string
	domains     []string
	linkedin    string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "full name")
	fl.StringVar(&f.role, "role", "", "role or title")
	fl.StringVar(&f.company, "company", "", "company")
	fl.StringVar(&f.bio, "bio", "", "short bio")
	fl.StringSliceVar(&f.skills, "skills", nil, "comma separated skills")
	fl.StringSliceVar(&f.lookingFor, "looking-for", nil, "what you are looking for")
	fl.StringSliceVar(&f.canHelpWith, "can-help-with", nil, "what you can help with")
	fl.StringSliceVar(&f.domains, "domains", nil, "domains you work in")
	fl.StringVar(&f.linkedin, "linkedin", "", "LinkedIn URL")
}

// apply copies only the flags the user set onto req
func (f *profileFlags) apply(cmd *cobra.Command, req *dto.ProfileRequest) {
	changed := cmd.Flags().Changed
	if changed("name") {
		req.Name = f.name
	}
	if changed("role") {
		req.Role = f.role
	}
	if changed("company") {
		req.Company = f.company
	}
	if changed("bio") {
		req.Bio = f.bio
	}
	if changed("skills") {
		req.Skills = f.skills
	}
	if changed("looking-for") {
		req.LookingFor = f.lookingFor
	}
	if changed("can-help-with") {
		req.CanHelpWith = f.canHelpWith
	}
	if changed("domains") {
		req.Domains = f.domains
	}
	if changed("linkedin") {
		link := f.linkedin
		req.LinkedInURL = &link
	}
}

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Create, view and edit profiles",
	}
	cmd.AddCommand(
		newProfileCreateCmd(a),
		newProfileShowCmd(a),
		newProfileListCmd(a),
		newProfileUpdateCmd(a),
	)
	return cmd
}

func newProfileCreateCmd(a *app) *cobra.Command {
	f := &profileFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.ProfileRequest{ID: f.id}
			f.apply(cmd, &req)

			p, err := a.api.CreateProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			if _, err := a.ids.SetProfileID(p.ID); err != nil {
				return err
			}
			a.log.Debug("profile created", "profile_id", p.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Created profile %s\n\n", p.ID)
			printProfile(cmd.OutOrStdout(), *p)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.id, "id", "", "use this id instead of a generated one")
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a profile (yours by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.profileArg(args)
			if err != nil {
				return err
			}
			p, err := a.api.GetProfile(cmd.Context(), id)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), *p)
			return nil
		},
	}
}

func newProfileListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.api.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}
			if len(ps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles yet.")
				return nil
			}
			for _, p := range ps {
				printProfileLine(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func newProfileUpdateCmd(a *app) *cobra.Command {
	f := &profileFlags{}
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Edit a profile (yours by default); unset flags keep their value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.profileArg(args)
			if err != nil {
				return err
			}
			cur, err := a.api.GetProfile(cmd.Context(), id)
			if err != nil {
				return err
			}

			// The server overwrites every field, so start from the current values
			req := dto.ProfileRequest{
				Name:        cur.Name,
				Role:        cur.Role,
				Company:     cur.Company,
				Bio:         cur.Bio,
				Skills:      cur.Skills,
				LookingFor:  cur.LookingFor,
				CanHelpWith: cur.CanHelpWith,
				Domains:     cur.Domains,
				LinkedInURL: cur.LinkedInURL,
			}
			f.apply(cmd, &req)

			p, err := a.api.UpdateProfile(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
			fmt.Fprintln(cmd.OutOrStdout())
			printProfile(cmd.OutOrStdout(), *p)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

var errNoProfile = errors.New("you have no profile yet, run `mingle profile create` first")

// profileArg returns args[0] or the caller's own profile id
func (a *app) profileArg(args []string) (string, error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	id, err := a.ids.Load()
	if err != nil {
		return "", err
	}
	if id.MyProfileID == "" {
		return "", errNoProfile
	}
	return id.MyProfileID, nil
}
