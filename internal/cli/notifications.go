package cli

import (
	"github.com/spf13/cobra"

	"github.com/mohammadmehrani/CAD/internal/guard"
)

func (r *appRef) newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "notifications",
		Short:             "Your notifications",
		PersistentPreRunE: r.require(guard.SignedIn),
	}
	cmd.AddCommand(
		r.newNotificationsListCmd(),
		r.newNotificationsReadCmd(),
		r.newNotificationsReadAllCmd(),
	)
	return cmd
}

func (r *appRef) newNotificationsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			notifications, err := a.api.Notifications(cmd.Context())
			if err != nil {
				return err
			}

			unreadOnly, _ := cmd.Flags().GetBool("unread")
			if unreadOnly {
				filtered := notifications[:0]
				for _, n := range notifications {
					if !n.IsRead {
						filtered = append(filtered, n)
					}
				}
				notifications = filtered
			}

			return a.render.result(notifications, func() {
				for _, n := range notifications {
					marker := " "
					if !n.IsRead {
						marker = colorGreen("•")
					}
					a.render.infof("%s [%d] %s — %s", marker, n.ID, colorBold(n.Title), n.Content)
				}
			})
		},
	}
	cmd.Flags().Bool("unread", false, "only unread notifications")
	return cmd
}

func (r *appRef) newNotificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.api.MarkNotificationRead(cmd.Context(), id); err != nil {
				return err
			}
			a.render.okf("notification #%d marked read", id)
			return nil
		},
	}
}

func (r *appRef) newNotificationsReadAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			if err := a.api.MarkAllNotificationsRead(cmd.Context()); err != nil {
				return err
			}
			a.render.okf("all notifications marked read")
			return nil
		},
	}
}

func (r *appRef) newUnreadCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unread",
		Short:   "Show unread message and notification counts",
		PreRunE: r.require(guard.SignedIn),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			counts, err := a.api.UnreadCounts(cmd.Context())
			if err != nil {
				return err
			}
			return a.render.result(counts, func() {
				a.render.infof("messages: %d, notifications: %d", counts.Messages, counts.Notifications)
			})
		},
	}
}
