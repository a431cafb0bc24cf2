package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohammadmehrani/CAD/internal/api"
	"github.com/mohammadmehrani/CAD/internal/guard"
	"github.com/mohammadmehrani/CAD/internal/models"
)

// The admin surface mirrors the backend's managed-content endpoints.
// Payloads are passed as JSON so the commands track the serializers
// instead of duplicating every field as a flag.
func (r *appRef) newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "admin",
		Short:             "Administrative operations (admin role required)",
		PersistentPreRunE: r.require(guard.Admin),
	}
	cmd.AddCommand(
		r.newAdminConversationsCmd(),
		r.newAdminReplyCmd(),
		r.newAdminHeroCmd(),
		r.newAdminServiceCmd(),
		r.newAdminTeamCmd(),
		r.newAdminAboutCmd(),
		r.newAdminCategoryCmd(),
		r.newAdminProjectCmd(),
		r.newAdminTestimonialCmd(),
		r.newAdminContactMessagesCmd(),
		r.newAdminSettingsCmd(),
	)
	return cmd
}

func decodePayload[T any](raw string) (*T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}
	return &v, nil
}

func decodePatch(raw string) (map[string]any, error) {
	var patch map[string]any
	if err := json.Unmarshal([]byte(raw), &patch); err != nil {
		return nil, fmt.Errorf("invalid patch: %w", err)
	}
	return patch, nil
}

func (r *appRef) newAdminConversationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conversations",
		Short: "List every conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			conversations, err := a.api.AdminConversations(cmd.Context())
			if err != nil {
				return err
			}
			return a.render.result(conversations, func() {
				for _, c := range conversations {
					who := "?"
					if c.Participant != nil {
						who = c.Participant.Email
					}
					a.render.infof("#%d %s — %s", c.ID, colorBold(c.Subject), who)
				}
			})
		},
	}
}

func (r *appRef) newAdminReplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reply <conversation-id> <content>",
		Short: "Reply to a user's conversation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message, err := a.api.AdminReply(cmd.Context(), &models.SendMessageRequest{
				Conversation: id,
				Content:      args[1],
			})
			if err != nil {
				return err
			}
			return a.render.result(message, func() {
				a.render.okf("reply #%d sent", message.ID)
			})
		},
	}
}

func (r *appRef) newAdminHeroCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "hero", Short: "Manage hero slides"}
	a := func() *App { return r.app }

	cmd.AddCommand(&cobra.Command{
		Use:   "create <json>",
		Short: "Create a hero slide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hero, err := decodePayload[models.Hero](args[0])
			if err != nil {
				return err
			}
			out, err := a().api.CreateHero(cmd.Context(), hero)
			if err != nil {
				return err
			}
			a().cache.Invalidate("core/hero")
			return a().render.result(out, func() { a().render.okf("hero #%d created", out.ID) })
		},
	}, &cobra.Command{
		Use:   "update <id> <json-patch>",
		Short: "Update a hero slide",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch, err := decodePatch(args[1])
			if err != nil {
				return err
			}
			out, err := a().api.UpdateHero(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			a().cache.Invalidate("core/hero")
			return a().render.result(out, func() { a().render.okf("hero #%d updated", out.ID) })
		},
	}, &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a hero slide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a().api.DeleteHero(cmd.Context(), id); err != nil {
				return err
			}
			a().cache.Invalidate("core/hero")
			a().render.okf("hero #%d deleted", id)
			return nil
		},
	})
	return cmd
}

func (r *appRef) newAdminServiceCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "service", Short: "Manage services"}
	a := func() *App { return r.app }

	cmd.AddCommand(&cobra.Command{
		Use:   "create <json>",
		Short: "Create a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := decodePayload[models.Service](args[0])
			if err != nil {
				return err
			}
			out, err := a().api.CreateService(cmd.Context(), svc)
			if err != nil {
				return err
			}
			a().cache.Invalidate("core/services")
			return a().render.result(out, func() { a().render.okf("service #%d created", out.ID) })
		},
	}, &cobra.Command{
		Use:   "update <id> <json-patch>",
		Short: "Update a service",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch, err := decodePatch(args[1])
			if err != nil {
				return err
			}
			out, err := a().api.UpdateService(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			a().cache.Invalidate("core/services")
			return a().render.result(out, func() { a().render.okf("service #%d updated", out.ID) })
		},
	}, &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a().api.DeleteService(cmd.Context(), id); err != nil {
				return err
			}
			a().cache.Invalidate("core/services")
			a().render.okf("service #%d deleted", id)
			return nil
		},
	})
	return cmd
}

func (r *appRef) newAdminTeamCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "team", Short: "Manage team members"}
	a := func() *App { return r.app }

	cmd.AddCommand(&cobra.Command{
		Use:   "create <json>",
		Short: "Add a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			member, err := decodePayload[models.TeamMember](args[0])
			if err != nil {
				return err
			}
			out, err := a().api.CreateTeamMember(cmd.Context(), member)
			if err != nil {
				return err
			}
			a().cache.Invalidate("core/team")
			return a().render.result(out, func() { a().render.okf("team member #%d created", out.ID) })
		},
	}, &cobra.Command{
		Use:   "update <id> <json-patch>",
		Short: "Update a team member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch, err := decodePatch(args[1])
			if err != nil {
				return err
			}
			out, err := a().api.UpdateTeamMember(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			a().cache.Invalidate("core/team")
			return a().render.result(out, func() { a().render.okf("team member #%d updated", out.ID) })
		},
	}, &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a().api.DeleteTeamMember(cmd.Context(), id); err != nil {
				return err
			}
			a().cache.Invalidate("core/team")
			a().render.okf("team member #%d deleted", id)
			return nil
		},
	})
	return cmd
}

func (r *appRef) newAdminAboutCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "about", Short: "Manage the about section"}
	a := func() *App { return r.app }

	cmd.AddCommand(&cobra.Command{
		Use:   "create <json>",
		Short: "Create the about section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			about, err := decodePayload[models.AboutSection](args[0])
			if err != nil {
				return err
			}
			out, err := a().api.CreateAbout(cmd.Context(), about)
			if err != nil {
				return err
			}
			a().cache.Invalidate("core/about")
			return a().render.result(out, func() { a().render.okf("about section #%d created", out.ID) })
		},
	}, &cobra.Command{
		Use:   "update <id> <json-patch>",
		Short: "Update the about section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch, err := decodePatch(args[1])
			if err != nil {
				return err
			}
			out, err := a().api.UpdateAbout(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			a().cache.Invalidate("core/about")
			return a().render.result(out, func() { a().render.okf("about section #%d updated", out.ID) })
		},
	}, &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete the about section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a().api.DeleteAbout(cmd.Context(), id); err != nil {
				return err
			}
			a().cache.Invalidate("core/about")
			a().render.okf("about section #%d deleted", id)
			return nil
		},
	})
	return cmd
}

func (r *appRef) newAdminCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "category", Short: "Manage portfolio categories"}
	a := func() *App { return r.app }

	cmd.AddCommand(&cobra.Command{
		Use:   "create <json>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := decodePayload[models.Category](args[0])
			if err != nil {
				return err
			}
			out, err := a().api.CreateCategory(cmd.Context(), category)
			if err != nil {
				return err
			}
			a().cache.Invalidate("portfolio/categories")
			return a().render.result(out, func() { a().render.okf("category %s created", out.Slug) })
		},
	}, &cobra.Command{
		Use:   "update <slug> <json-patch>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := decodePatch(args[1])
			if err != nil {
				return err
			}
			out, err := a().api.UpdateCategory(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			a().cache.Invalidate("portfolio/categories")
			return a().render.result(out, func() { a().render.okf("category %s updated", out.Slug) })
		},
	}, &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a().api.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			a().cache.Invalidate("portfolio/categories")
			a().render.okf("category %s deleted", args[0])
			return nil
		},
	})
	return cmd
}

func (r *appRef) newAdminProjectCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "project", Short: "Manage portfolio projects"}
	a := func() *App { return r.app }

	cmd.AddCommand(&cobra.Command{
		Use:   "create <json>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := decodePayload[models.Project](args[0])
			if err != nil {
				return err
			}
			out, err := a().api.CreateProject(cmd.Context(), project)
			if err != nil {
				return err
			}
			a().cache.Invalidate("portfolio/featured")
			return a().render.result(out, func() { a().render.okf("project %s created", out.Slug) })
		},
	}, &cobra.Command{
		Use:   "update <id> <json-patch>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch, err := decodePatch(args[1])
			if err != nil {
				return err
			}
			out, err := a().api.UpdateProject(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			a().cache.Invalidate("portfolio/featured")
			return a().render.result(out, func() { a().render.okf("project %s updated", out.Slug) })
		},
	}, &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a().api.DeleteProject(cmd.Context(), id); err != nil {
				return err
			}
			a().cache.Invalidate("portfolio/featured")
			a().render.okf("project #%d deleted", id)
			return nil
		},
	})
	return cmd
}

func (r *appRef) newAdminTestimonialCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "testimonial", Short: "Manage client testimonials"}
	a := func() *App { return r.app }

	cmd.AddCommand(&cobra.Command{
		Use:   "create <json>",
		Short: "Create a testimonial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			testimonial, err := decodePayload[models.Testimonial](args[0])
			if err != nil {
				return err
			}
			out, err := a().api.CreateTestimonial(cmd.Context(), testimonial)
			if err != nil {
				return err
			}
			return a().render.result(out, func() { a().render.okf("testimonial #%d created", out.ID) })
		},
	}, &cobra.Command{
		Use:   "update <id> <json-patch>",
		Short: "Update a testimonial",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch, err := decodePatch(args[1])
			if err != nil {
				return err
			}
			out, err := a().api.UpdateTestimonial(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			return a().render.result(out, func() { a().render.okf("testimonial #%d updated", out.ID) })
		},
	}, &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a testimonial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a().api.DeleteTestimonial(cmd.Context(), id); err != nil {
				return err
			}
			a().render.okf("testimonial #%d deleted", id)
			return nil
		},
	})
	return cmd
}

func (r *appRef) newAdminContactMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "contact-messages", Short: "Review contact-form submissions"}
	a := func() *App { return r.app }

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List submitted messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := a().api.ContactMessages(cmd.Context())
			if err != nil {
				return err
			}
			return a().render.result(messages, func() {
				for _, m := range messages {
					marker := " "
					if !m.IsRead {
						marker = colorGreen("•")
					}
					a().render.infof("%s [%d] %s <%s> — %s", marker, m.ID, colorBold(m.Name), m.Email, m.Subject)
				}
			})
		},
	}, &cobra.Command{
		Use:   "show <id>",
		Short: "Show one message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msg, err := a().api.ContactMessageByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a().render.result(msg, func() {
				a().render.infof("%s <%s>", colorBold(msg.Name), msg.Email)
				if msg.Phone != "" {
					a().render.infof("phone: %s", msg.Phone)
				}
				a().render.infof("subject: %s", msg.Subject)
				a().render.infof("%s", msg.Message)
			})
		},
	}, &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a().api.DeleteContactMessage(cmd.Context(), id); err != nil {
				return err
			}
			a().render.okf("contact message #%d deleted", id)
			return nil
		},
	})
	return cmd
}

func (r *appRef) newAdminSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "settings", Short: "Manage global site settings"}
	a := func() *App { return r.app }

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a().api.SiteSettings(cmd.Context())
			if err != nil {
				return err
			}
			return a().render.result(settings, func() {
				for _, s := range settings {
					a().render.infof("%s = %s", colorBold(s.Key), s.Value)
				}
			})
		},
	}, &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Create or update a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a().api.UpdateSiteSetting(cmd.Context(), args[0], map[string]any{"value": args[1]})
			if err != nil {
				// A missing key is created instead.
				if api.IsNotFound(err) {
					out, err = a().api.CreateSiteSetting(cmd.Context(), &models.SiteSetting{
						Key: args[0], Value: args[1],
					})
				}
				if err != nil {
					return err
				}
			}
			return a().render.result(out, func() { a().render.okf("%s = %s", out.Key, out.Value) })
		},
	}, &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a().api.DeleteSiteSetting(cmd.Context(), args[0]); err != nil {
				return err
			}
			a().render.okf("setting %s deleted", args[0])
			return nil
		},
	})
	return cmd
}
