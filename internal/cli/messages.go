package cli

import (
	"bufio"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mohammadmehrani/CAD/internal/guard"
	"github.com/mohammadmehrani/CAD/internal/models"
)

func (r *appRef) newMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "messages",
		Short:             "Conversations with the studio",
		PersistentPreRunE: r.require(guard.SignedIn),
	}
	cmd.AddCommand(
		r.newMessagesListCmd(),
		r.newMessagesShowCmd(),
		r.newMessagesCreateCmd(),
		r.newMessagesSendCmd(),
		r.newMessagesReadCmd(),
	)
	return cmd
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func (r *appRef) newMessagesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			conversations, err := a.api.Conversations(cmd.Context())
			if err != nil {
				return err
			}
			return a.render.result(conversations, func() {
				for _, c := range conversations {
					unread := ""
					if c.UnreadCount > 0 {
						unread = colorGreen(" (" + strconv.Itoa(c.UnreadCount) + " unread)")
					}
					a.render.infof("#%d %s%s", c.ID, colorBold(c.Subject), unread)
				}
			})
		},
	}
}

func (r *appRef) newMessagesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <conversation-id>",
		Short: "Show a conversation's messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			conversation, err := a.api.Conversation(cmd.Context(), id)
			if err != nil {
				return err
			}
			messages, err := a.api.Messages(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.render.result(messages, func() {
				a.render.infof("%s", colorBold(conversation.Subject))
				for _, m := range messages {
					sender := "?"
					if m.Sender != nil {
						sender = m.Sender.DisplayName()
					}
					read := ""
					if !m.IsRead {
						read = colorGreen(" •")
					}
					a.render.infof("[%d] %s%s: %s", m.ID, colorBold(sender), read, m.Content)
				}
			})
		},
	}
}

func (r *appRef) newMessagesCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Start a new conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			reader := bufio.NewReader(os.Stdin)
			out := cmd.OutOrStdout()

			req := &models.NewConversationRequest{}
			var err error
			if req.Subject, err = promptLine(reader, "Subject", out); err != nil {
				return err
			}
			if req.InitialMessage, err = promptLine(reader, "Message", out); err != nil {
				return err
			}

			conversation, err := a.api.CreateConversation(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render.result(conversation, func() {
				a.render.okf("conversation #%d created", conversation.ID)
			})
		},
	}
}

func (r *appRef) newMessagesSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <conversation-id> <content>",
		Short: "Send a message into a conversation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			message, err := a.api.SendMessage(cmd.Context(), &models.SendMessageRequest{
				Conversation: id,
				Content:      args[1],
			})
			if err != nil {
				return err
			}
			return a.render.result(message, func() {
				a.render.okf("message #%d sent", message.ID)
			})
		},
	}
	return cmd
}

func (r *appRef) newMessagesReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <message-id>",
		Short: "Mark a message as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.api.MarkMessageRead(cmd.Context(), id); err != nil {
				return err
			}
			a.render.okf("message #%d marked read", id)
			return nil
		},
	}
}
