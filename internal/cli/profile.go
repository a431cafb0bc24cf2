package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mohammadmehrani/CAD/internal/guard"
	"github.com/mohammadmehrani/CAD/internal/locale"
	"github.com/mohammadmehrani/CAD/internal/session"
)

func (r *appRef) newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "profile",
		Short:             "View and edit the account profile",
		PersistentPreRunE: r.require(guard.SignedIn),
	}
	cmd.AddCommand(r.newProfileShowCmd(), r.newProfileUpdateCmd(), r.newProfilePasswdCmd(), r.newProfileStatsCmd())
	return cmd
}

func (r *appRef) newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the full profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			user, err := a.api.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return a.render.result(user, func() {
				a.render.infof("%s", colorBold(user.DisplayName()))
				a.render.infof("  email:    %s", user.Email)
				a.render.infof("  username: %s", user.Username)
				if user.Phone != "" {
					a.render.infof("  phone:    %s", user.Phone)
				}
				if user.CompanyName != "" {
					a.render.infof("  company:  %s", user.CompanyName)
				}
				a.render.infof("  role:     %s", user.UserType)
				a.render.infof("  verified: %v", user.IsVerified)
				if user.Profile != nil && user.Profile.Bio != "" {
					a.render.infof("  bio:      %s", user.Profile.Bio)
				}
			})
		},
	}
}

func (r *appRef) newProfileUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Long:  "Update profile fields. Only the flags you pass are sent as a partial patch.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app

			patch := map[string]any{}
			for flag, field := range map[string]string{
				"first-name": "first_name",
				"last-name":  "last_name",
				"phone":      "phone",
				"company":    "company_name",
				"bio":        "bio",
				"city":       "city",
				"country":    "country",
				"website":    "website",
			} {
				if cmd.Flags().Changed(flag) {
					v, _ := cmd.Flags().GetString(flag)
					patch[field] = v
				}
			}
			if len(patch) == 0 {
				return cmd.Help()
			}

			user, err := a.session.UpdateUser(cmd.Context(), patch)
			if err != nil {
				return err
			}
			return a.render.result(user, func() {
				a.render.okf("profile updated")
			})
		},
	}
	cmd.Flags().String("first-name", "", "first name")
	cmd.Flags().String("last-name", "", "last name")
	cmd.Flags().String("phone", "", "phone number")
	cmd.Flags().String("company", "", "company name")
	cmd.Flags().String("bio", "", "bio")
	cmd.Flags().String("city", "", "city")
	cmd.Flags().String("country", "", "country")
	cmd.Flags().String("website", "", "website URL")
	return cmd
}

func (r *appRef) newProfilePasswdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			out := cmd.OutOrStdout()

			old, err := promptPassword("Current password", out)
			if err != nil {
				return err
			}
			next, err := promptPassword("New password", out)
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm new password", out)
			if err != nil {
				return err
			}

			if err := a.session.ChangePassword(cmd.Context(), old, next, confirm); err != nil {
				if errors.Is(err, session.ErrPasswordMismatch) {
					return errors.New(a.locale.T(locale.MsgPasswordMismatch))
				}
				return err
			}
			a.render.okf("password changed")
			return nil
		},
	}
}

func (r *appRef) newProfileStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			stats, err := a.api.AccountStats(cmd.Context())
			if err != nil {
				return err
			}
			return a.render.result(stats, func() {
				a.render.infof("unread messages: %d", stats.UnreadMessages)
				a.render.infof("total messages:  %d", stats.TotalMessages)
				a.render.infof("role:            %s", stats.UserType)
				a.render.infof("verified:        %v", stats.IsVerified)
			})
		},
	}
}
