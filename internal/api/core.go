package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mohammadmehrani/CAD/internal/models"
)

// SiteContent fetches the aggregated public content. lang may be empty,
// in which case the backend picks its default.
func (c *Client) SiteContent(ctx context.Context, lang string) (*models.SiteContent, error) {
	var query url.Values
	if lang != "" {
		query = url.Values{"lang": {lang}}
	}
	var content models.SiteContent
	if err := c.get(ctx, "/core/content/", query, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// Heroes fetches the hero section slides.
func (c *Client) Heroes(ctx context.Context) ([]models.Hero, error) {
	var heroes []models.Hero
	if err := c.get(ctx, "/core/hero/", nil, &heroes); err != nil {
		return nil, err
	}
	return heroes, nil
}

// Services fetches the services list.
func (c *Client) Services(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.get(ctx, "/core/services/", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// Team fetches the team members.
func (c *Client) Team(ctx context.Context) ([]models.TeamMember, error) {
	var team []models.TeamMember
	if err := c.get(ctx, "/core/team/", nil, &team); err != nil {
		return nil, err
	}
	return team, nil
}

// About fetches the about section.
func (c *Client) About(ctx context.Context) (*models.AboutSection, error) {
	var about models.AboutSection
	if err := c.get(ctx, "/core/about/", nil, &about); err != nil {
		return nil, err
	}
	return &about, nil
}

// ContactInfo fetches the public contact block.
func (c *Client) ContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	var info models.ContactInfo
	if err := c.get(ctx, "/core/contact-info/", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SendContactMessage submits the public contact form.
func (c *Client) SendContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	return c.post(ctx, "/core/contact/", msg, nil)
}

// Admin CRUD for the managed content sections.

func (c *Client) CreateHero(ctx context.Context, hero *models.Hero) (*models.Hero, error) {
	var out models.Hero
	if err := c.post(ctx, "/core/admin/hero/", hero, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateHero(ctx context.Context, id int64, patch map[string]any) (*models.Hero, error) {
	var out models.Hero
	if err := c.patch(ctx, fmt.Sprintf("/core/admin/hero/%d/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHero(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/core/admin/hero/%d/", id))
}

func (c *Client) CreateService(ctx context.Context, svc *models.Service) (*models.Service, error) {
	var out models.Service
	if err := c.post(ctx, "/core/admin/services/", svc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id int64, patch map[string]any) (*models.Service, error) {
	var out models.Service
	if err := c.patch(ctx, fmt.Sprintf("/core/admin/services/%d/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/core/admin/services/%d/", id))
}

func (c *Client) CreateTeamMember(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	var out models.TeamMember
	if err := c.post(ctx, "/core/admin/team/", member, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTeamMember(ctx context.Context, id int64, patch map[string]any) (*models.TeamMember, error) {
	var out models.TeamMember
	if err := c.patch(ctx, fmt.Sprintf("/core/admin/team/%d/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTeamMember(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/core/admin/team/%d/", id))
}

func (c *Client) CreateAbout(ctx context.Context, about *models.AboutSection) (*models.AboutSection, error) {
	var out models.AboutSection
	if err := c.post(ctx, "/core/admin/about/", about, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAbout(ctx context.Context, id int64, patch map[string]any) (*models.AboutSection, error) {
	var out models.AboutSection
	if err := c.patch(ctx, fmt.Sprintf("/core/admin/about/%d/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAbout(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/core/admin/about/%d/", id))
}

// ContactMessages lists the submitted contact-form messages (staff only).
func (c *Client) ContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := c.get(ctx, "/core/admin/messages/", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// ContactMessageByID fetches one contact-form message.
func (c *Client) ContactMessageByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	var out models.ContactMessage
	if err := c.get(ctx, fmt.Sprintf("/core/admin/messages/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteContactMessage(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/core/admin/messages/%d/", id))
}

// SiteSettings lists the global key/value settings (staff only).
func (c *Client) SiteSettings(ctx context.Context) ([]models.SiteSetting, error) {
	var settings []models.SiteSetting
	if err := c.get(ctx, "/core/admin/settings/", nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) CreateSiteSetting(ctx context.Context, setting *models.SiteSetting) (*models.SiteSetting, error) {
	var out models.SiteSetting
	if err := c.post(ctx, "/core/admin/settings/", setting, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSiteSetting(ctx context.Context, key string, patch map[string]any) (*models.SiteSetting, error) {
	var out models.SiteSetting
	if err := c.patch(ctx, fmt.Sprintf("/core/admin/settings/%s/", key), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSiteSetting(ctx context.Context, key string) error {
	return c.delete(ctx, fmt.Sprintf("/core/admin/settings/%s/", key))
}
