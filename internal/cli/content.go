package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohammadmehrani/CAD/internal/cache"
	"github.com/mohammadmehrani/CAD/internal/models"
)

func (r *appRef) newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Browse the public site content",
	}
	cmd.AddCommand(
		r.newContentAllCmd(),
		r.newContentHeroCmd(),
		r.newContentServicesCmd(),
		r.newContentTeamCmd(),
		r.newContentAboutCmd(),
		r.newContentContactInfoCmd(),
	)
	return cmd
}

func (r *appRef) newContentAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Fetch every public section in one call",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			lang := string(a.locale.Current())
			content, err := cache.Through(cmd.Context(), a.cache, "core/content/"+lang,
				func(ctx context.Context) (*models.SiteContent, error) { return a.api.SiteContent(ctx, lang) })
			if err != nil {
				return err
			}
			return a.render.result(content, func() {
				if content.Hero != nil {
					a.render.infof("%s", colorBold(a.render.bilingual(content.Hero.TitleFa, content.Hero.TitleEn)))
				}
				a.render.infof("%d services, %d team members", len(content.Services), len(content.Team))
				if content.About != nil {
					a.render.infof("%s", a.render.bilingual(content.About.TitleFa, content.About.TitleEn))
				}
				if content.Contact != nil {
					a.render.infof("contact: %s", content.Contact.Email)
				}
			})
		},
	}
}

func (r *appRef) newContentHeroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hero",
		Short: "Show the hero slides",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			heroes, err := cache.Through(cmd.Context(), a.cache, "core/hero",
				func(ctx context.Context) ([]models.Hero, error) { return a.api.Heroes(ctx) })
			if err != nil {
				return err
			}
			return a.render.result(heroes, func() {
				for _, h := range heroes {
					a.render.infof("%s", colorBold(a.render.bilingual(h.TitleFa, h.TitleEn)))
					a.render.infof("  %s", a.render.bilingual(h.SubtitleFa, h.SubtitleEn))
				}
			})
		},
	}
}

func (r *appRef) newContentServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List the offered services",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			services, err := cache.Through(cmd.Context(), a.cache, "core/services",
				func(ctx context.Context) ([]models.Service, error) { return a.api.Services(ctx) })
			if err != nil {
				return err
			}
			return a.render.result(services, func() {
				for _, s := range services {
					a.render.infof("%s — %s",
						colorBold(a.render.bilingual(s.TitleFa, s.TitleEn)),
						a.render.bilingual(s.DescriptionFa, s.DescriptionEn))
				}
			})
		},
	}
}

func (r *appRef) newContentTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "List the team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			team, err := cache.Through(cmd.Context(), a.cache, "core/team",
				func(ctx context.Context) ([]models.TeamMember, error) { return a.api.Team(ctx) })
			if err != nil {
				return err
			}
			return a.render.result(team, func() {
				for _, m := range team {
					a.render.infof("%s — %s (%d projects, %d years)",
						colorBold(a.render.bilingual(m.NameFa, m.NameEn)),
						a.render.bilingual(m.PositionFa, m.PositionEn),
						m.ProjectsCount, m.ExperienceYears)
				}
			})
		},
	}
}

func (r *appRef) newContentAboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show the about section",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			about, err := cache.Through(cmd.Context(), a.cache, "core/about",
				func(ctx context.Context) (*models.AboutSection, error) { return a.api.About(ctx) })
			if err != nil {
				return err
			}
			return a.render.result(about, func() {
				a.render.infof("%s", colorBold(a.render.bilingual(about.TitleFa, about.TitleEn)))
				a.render.infof("%s", a.render.bilingual(about.DescriptionFa, about.DescriptionEn))
				a.render.infof("projects: %d, clients: %d, awards: %d, years: %d",
					about.ProjectsCompleted, about.HappyClients, about.AwardsWon, about.YearsExperience)
			})
		},
	}
}

func (r *appRef) newContentContactInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contact-info",
		Short: "Show the public contact details",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			info, err := cache.Through(cmd.Context(), a.cache, "core/contact-info",
				func(ctx context.Context) (*models.ContactInfo, error) { return a.api.ContactInfo(ctx) })
			if err != nil {
				return err
			}
			return a.render.result(info, func() {
				a.render.infof("email:   %s", info.Email)
				a.render.infof("phone:   %s", info.Phone1)
				if info.Phone2 != "" {
					a.render.infof("phone 2: %s", info.Phone2)
				}
				a.render.infof("address: %s", a.render.bilingual(info.AddressFa, info.AddressEn))
			})
		},
	}
}

func (r *appRef) newContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the contact form",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			reader := bufio.NewReader(os.Stdin)
			out := cmd.OutOrStdout()

			msg := &models.ContactMessage{}
			var err error
			if msg.Name, err = promptLine(reader, "Name", out); err != nil {
				return err
			}
			if msg.Email, err = promptLine(reader, "Email", out); err != nil {
				return err
			}
			if msg.Phone, err = promptLine(reader, "Phone (optional)", out); err != nil {
				return err
			}
			if msg.Subject, err = promptLine(reader, "Subject", out); err != nil {
				return err
			}
			if msg.Message, err = promptLine(reader, "Message", out); err != nil {
				return err
			}

			if err := a.api.SendContactMessage(cmd.Context(), msg); err != nil {
				return err
			}
			a.render.okf("message sent")
			return nil
		},
	}
	return cmd
}
