package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohammadmehrani/CAD/internal/locale"
)

func (r *appRef) newLangCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lang",
		Short: "Show or change the interface language",
	}
	cmd.AddCommand(r.newLangShowCmd(), r.newLangSetCmd(), r.newLangToggleCmd())
	return cmd
}

func (r *appRef) newLangShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active language",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			current := a.locale.Current()
			return a.render.result(map[string]string{
				"language":  string(current),
				"direction": string(current.Direction()),
			}, func() {
				a.render.infof("%s (%s)", current, current.Direction())
			})
		},
	}
}

func (r *appRef) newLangSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <fa|en>",
		Short: "Set and persist the language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			l := locale.Locale(args[0])
			if l != locale.Persian && l != locale.English {
				return fmt.Errorf("unsupported language %q", args[0])
			}
			if err := a.locale.Set(cmd.Context(), l); err != nil {
				return err
			}
			a.render.okf("language set to %s (%s)", l, l.Direction())
			return nil
		},
	}
}

func (r *appRef) newLangToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between Persian and English",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			// The command has no guard, so the session must be resolved
			// here before the signed-in check below can mean anything.
			if a.session.Loading() {
				if err := a.session.Restore(cmd.Context()); err != nil {
					a.log.Warn(cmd.Context(), "session restore error", "error", err)
				}
			}
			next, err := a.locale.Toggle(cmd.Context())
			if err != nil {
				return err
			}
			// Signed-in users also keep the server-side preference in sync.
			if a.session.Authenticated() {
				if _, err := a.api.ToggleLanguage(cmd.Context()); err != nil {
					a.log.Warn(cmd.Context(), "failed to sync language preference", "error", err)
				}
			}
			a.render.okf("language set to %s (%s)", next, next.Direction())
			return nil
		},
	}
}
