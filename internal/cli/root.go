package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mohammadmehrani/CAD/internal/config"
	"github.com/mohammadmehrani/CAD/internal/guard"
	"github.com/mohammadmehrani/CAD/internal/locale"
	"github.com/mohammadmehrani/CAD/internal/session"
)

// appRef lets subcommands reach the App that the root command constructs
// in its PersistentPreRunE, after flags are parsed.
type appRef struct {
	app *App
}

// NewRootCommand builds the cadctl command tree.
func NewRootCommand() *cobra.Command {
	// Guards live in the persistent hooks of command groups; the root's
	// own hook must still run for app construction.
	cobra.EnableTraverseRunHooks = true

	ref := &appRef{}

	root := &cobra.Command{
		Use:          "cadctl",
		Short:        "Client for the CAD marketing and customer portal",
		Long:         "cadctl talks to the CAD REST backend: public content, portfolio,\naccount, messaging, notifications, and the admin surface.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			ref.app, err = NewApp(cmd.Context(), cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if ref.app != nil {
				return ref.app.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().String("base-url", "", "backend API root URL")
	root.PersistentFlags().String("data-dir", "", "directory for local client state")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("json", false, "print machine-readable JSON")

	root.AddCommand(
		ref.newLoginCmd(),
		ref.newRegisterCmd(),
		ref.newLogoutCmd(),
		ref.newWhoamiCmd(),
		ref.newProfileCmd(),
		ref.newContentCmd(),
		ref.newContactCmd(),
		ref.newPortfolioCmd(),
		ref.newMessagesCmd(),
		ref.newNotificationsCmd(),
		ref.newUnreadCmd(),
		ref.newLangCmd(),
		ref.newAdminCmd(),
	)

	return root
}

// require returns a PreRunE that resolves the session and applies the
// guard. While the session is unresolved a short loading note is shown,
// then the decision is final: allow, or a redirect surfaced as an error
// telling the user where to go.
func (r *appRef) require(req guard.Requirement) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a := r.app
		ctx := cmd.Context()

		if a.session.Loading() {
			if !a.cfg.JSON {
				a.render.infof("%s", colorDim("..."))
			}
			if err := a.session.Restore(ctx); err != nil {
				a.log.Warn(ctx, "session restore error", "error", err)
			}
		}

		decision := a.guard.Check(req)
		switch decision.Verdict {
		case guard.Allow:
			return nil
		case guard.Redirect:
			a.render.navigate(decision.Target)
			switch decision.Target {
			case session.TargetLogin:
				return errors.New(a.locale.T(locale.MsgLoginRequired))
			case session.TargetDashboard:
				if req == guard.Admin {
					return errors.New(a.locale.T(locale.MsgAdminOnly))
				}
				return errors.New(a.locale.T(locale.MsgAlreadySignedIn))
			}
		}
		return errors.New("session is still resolving")
	}
}
