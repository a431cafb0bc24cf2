package cli

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohammadmehrani/CAD/internal/guard"
	"github.com/mohammadmehrani/CAD/internal/locale"
	"github.com/mohammadmehrani/CAD/internal/models"
	"github.com/mohammadmehrani/CAD/internal/session"
)

func (r *appRef) newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Sign in with email and password",
		PreRunE: r.require(guard.Guest),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			reader := bufio.NewReader(os.Stdin)

			email, _ := cmd.Flags().GetString("email")
			if email == "" {
				var err error
				email, err = promptLine(reader, "Email", cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			password, err := promptPassword("Password", cmd.OutOrStdout())
			if err != nil {
				return err
			}

			user, err := a.session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			return a.render.result(user, func() {
				a.render.okf("signed in as %s", colorBold(user.DisplayName()))
			})
		},
	}
	cmd.Flags().String("email", "", "account email")
	return cmd
}

func (r *appRef) newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create an account and sign in",
		PreRunE: r.require(guard.Guest),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			reader := bufio.NewReader(os.Stdin)
			out := cmd.OutOrStdout()

			req := &models.RegisterRequest{}
			var err error
			if req.Email, err = promptLine(reader, "Email", out); err != nil {
				return err
			}
			if req.Username, err = promptLine(reader, "Username", out); err != nil {
				return err
			}
			if req.FirstName, err = promptLine(reader, "First name", out); err != nil {
				return err
			}
			if req.LastName, err = promptLine(reader, "Last name", out); err != nil {
				return err
			}
			if req.Phone, err = promptLine(reader, "Phone (optional)", out); err != nil {
				return err
			}
			if req.CompanyName, err = promptLine(reader, "Company (optional)", out); err != nil {
				return err
			}
			if req.Password, err = promptPassword("Password", out); err != nil {
				return err
			}
			if req.PasswordConfirm, err = promptPassword("Confirm password", out); err != nil {
				return err
			}

			user, err := a.session.Register(cmd.Context(), req)
			if err != nil {
				if errors.Is(err, session.ErrPasswordMismatch) {
					return errors.New(a.locale.T(locale.MsgPasswordMismatch))
				}
				return err
			}

			return a.render.result(user, func() {
				a.render.okf("registered and signed in as %s", colorBold(user.DisplayName()))
			})
		},
	}
	return cmd
}

func (r *appRef) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear stored tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			a.session.Logout(cmd.Context())
			a.render.okf("%s", a.locale.T(locale.MsgLoggedOut))
			return nil
		},
	}
}

func (r *appRef) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show the signed-in user",
		PreRunE: r.require(guard.SignedIn),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			user := a.session.CurrentUser()
			return a.render.result(user, func() {
				a.render.infof("%s <%s> (%s)", colorBold(user.DisplayName()), user.Email, user.UserType)
			})
		},
	}
}
