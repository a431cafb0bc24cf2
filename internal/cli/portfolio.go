package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mohammadmehrani/CAD/internal/api"
	"github.com/mohammadmehrani/CAD/internal/cache"
	"github.com/mohammadmehrani/CAD/internal/locale"
	"github.com/mohammadmehrani/CAD/internal/models"
)

func (r *appRef) newPortfolioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Browse the project portfolio",
	}
	cmd.AddCommand(
		r.newPortfolioCategoriesCmd(),
		r.newPortfolioListCmd(),
		r.newPortfolioFeaturedCmd(),
		r.newPortfolioShowCmd(),
		r.newPortfolioRelatedCmd(),
		r.newPortfolioTestimonialsCmd(),
		r.newPortfolioStatsCmd(),
	)
	return cmd
}

func (r *appRef) printProjects(projects []models.Project) {
	a := r.app
	for _, p := range projects {
		title := a.render.bilingual(p.TitleFa, p.TitleEn)
		marker := " "
		if p.IsFeatured {
			marker = colorGreen("*")
		}
		a.render.infof("%s %s (%s) [%s]", marker, colorBold(title), p.Slug, p.Status)
		if short := a.render.bilingual(p.ShortDescriptionFa, p.ShortDescriptionEn); short != "" {
			a.render.infof("    %s", short)
		}
	}
}

func (r *appRef) newPortfolioCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List project categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			categories, err := cache.Through(cmd.Context(), a.cache, "portfolio/categories",
				func(ctx context.Context) ([]models.Category, error) { return a.api.Categories(ctx) })
			if err != nil {
				return err
			}
			return a.render.result(categories, func() {
				for _, c := range categories {
					a.render.infof("%s (%s)", colorBold(a.render.bilingual(c.NameFa, c.NameEn)), c.Slug)
				}
			})
		},
	}
}

func (r *appRef) newPortfolioListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app

			filter := &api.ProjectFilter{}
			filter.Category, _ = cmd.Flags().GetString("category")
			status, _ := cmd.Flags().GetString("status")
			filter.Status = models.ProjectStatus(status)
			filter.Featured, _ = cmd.Flags().GetBool("featured")
			filter.Tech, _ = cmd.Flags().GetString("tech")
			filter.Search, _ = cmd.Flags().GetString("search")

			projects, err := a.api.Projects(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return a.render.result(projects, func() { r.printProjects(projects) })
		},
	}
	cmd.Flags().String("category", "", "filter by category slug")
	cmd.Flags().String("status", "", "filter by status (completed, in_progress, planned)")
	cmd.Flags().Bool("featured", false, "only featured projects")
	cmd.Flags().String("tech", "", "filter by technology")
	cmd.Flags().String("search", "", "full-text search")
	return cmd
}

func (r *appRef) newPortfolioFeaturedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List the featured projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			projects, err := cache.Through(cmd.Context(), a.cache, "portfolio/featured",
				func(ctx context.Context) ([]models.Project, error) { return a.api.FeaturedProjects(ctx) })
			if err != nil {
				return err
			}
			return a.render.result(projects, func() { r.printProjects(projects) })
		},
	}
}

func (r *appRef) newPortfolioShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			project, err := a.api.Project(cmd.Context(), args[0])
			if err != nil {
				// A missing slug is an in-page state, not a failure.
				if api.IsNotFound(err) {
					a.render.infof("%s", colorDim(a.locale.T(locale.MsgNotFound)))
					return nil
				}
				return err
			}
			return a.render.result(project, func() {
				a.render.infof("%s (%s)", colorBold(a.render.bilingual(project.TitleFa, project.TitleEn)), project.Slug)
				a.render.infof("%s", a.render.bilingual(project.DescriptionFa, project.DescriptionEn))
				if len(project.Technologies) > 0 {
					a.render.infof("tech: %v", project.Technologies)
				}
				if project.ClientName != "" {
					a.render.infof("client: %s", project.ClientName)
				}
				a.render.infof("status: %s, views: %d", project.Status, project.ViewsCount)
			})
		},
	}
}

func (r *appRef) newPortfolioRelatedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "related <slug>",
		Short: "List projects related to one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			projects, err := a.api.RelatedProjects(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render.result(projects, func() { r.printProjects(projects) })
		},
	}
}

func (r *appRef) newPortfolioTestimonialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "testimonials <slug>",
		Short: "List a project's client testimonials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			testimonials, err := a.api.ProjectTestimonials(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render.result(testimonials, func() {
				for _, t := range testimonials {
					stars := ""
					for i := 0; i < t.Rating; i++ {
						stars += "★"
					}
					a.render.infof("%s %s", colorBold(t.ClientName), stars)
					a.render.infof("  %s", a.render.bilingual(t.ContentFa, t.ContentEn))
				}
			})
		},
	}
}

func (r *appRef) newPortfolioStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show portfolio aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			stats, err := a.api.PortfolioStats(cmd.Context())
			if err != nil {
				return err
			}
			return a.render.result(stats, func() {
				a.render.infof("projects: %d (%d completed, %d in progress, %d featured), categories: %d",
					stats.TotalProjects, stats.CompletedProjects, stats.InProgressProjects,
					stats.FeaturedProjects, stats.CategoriesCount)
			})
		},
	}
}
