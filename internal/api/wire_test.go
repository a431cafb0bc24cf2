package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammadmehrani/CAD/internal/models"
	"github.com/mohammadmehrani/CAD/internal/tokens"
)

// These tests pin the exact field names the backend serves; a drifted
// json tag decodes to zero values without any error.

func newWireServer(t *testing.T, path, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, path, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, tokens.NewMemoryStore())
}

func TestUnreadCountsWire(t *testing.T) {
	t.Parallel()

	c := newWireServer(t, "/messaging/unread-counts/",
		`{"unread_messages": 3, "unread_notifications": 2}`)

	counts, err := c.UnreadCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Messages)
	assert.Equal(t, 2, counts.Notifications)
}

func TestSiteContentWire(t *testing.T) {
	t.Parallel()

	c := newWireServer(t, "/core/content/", `{
		"language": "fa",
		"hero": {"id": 1, "title_fa": "سلام", "title_en": "Hello"},
		"services": [{"id": 1, "title_fa": "خدمت", "title_en": "Service"}],
		"team": [],
		"about": null,
		"contact": {"id": 1, "email": "hi@example.com"}
	}`)

	content, err := c.SiteContent(context.Background(), "fa")
	require.NoError(t, err)
	assert.Equal(t, "fa", content.Language)
	require.NotNil(t, content.Hero)
	assert.Equal(t, "Hello", content.Hero.TitleEn)
	assert.Len(t, content.Services, 1)
	assert.Nil(t, content.About)
	require.NotNil(t, content.Contact)
	assert.Equal(t, "hi@example.com", content.Contact.Email)
}

func TestSiteContentWire_NullHero(t *testing.T) {
	t.Parallel()

	c := newWireServer(t, "/core/content/",
		`{"language": "en", "hero": null, "services": [], "team": [], "about": null, "contact": null}`)

	content, err := c.SiteContent(context.Background(), "en")
	require.NoError(t, err)
	assert.Nil(t, content.Hero)
	assert.Nil(t, content.Contact)
}

func TestPortfolioStatsWire(t *testing.T) {
	t.Parallel()

	c := newWireServer(t, "/portfolio/stats/", `{
		"total_projects": 12,
		"completed_projects": 8,
		"in_progress_projects": 3,
		"featured_projects": 4,
		"categories_count": 5
	}`)

	stats, err := c.PortfolioStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.PortfolioStats{
		TotalProjects:      12,
		CompletedProjects:  8,
		InProgressProjects: 3,
		FeaturedProjects:   4,
		CategoriesCount:    5,
	}, stats)
}

func TestAccountStatsWire(t *testing.T) {
	t.Parallel()

	c := newWireServer(t, "/accounts/stats/", `{
		"unread_messages": 7,
		"total_messages": 40,
		"user_type": "customer",
		"is_verified": true
	}`)

	stats, err := c.AccountStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.AccountStats{
		UnreadMessages: 7,
		TotalMessages:  40,
		UserType:       models.UserTypeCustomer,
		IsVerified:     true,
	}, stats)
}
