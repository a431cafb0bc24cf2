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

func TestAdminEndpointRouting(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		// Lists decode into slices, everything else into structs.
		if r.Method == http.MethodGet && (r.URL.Path == "/core/admin/messages/" || r.URL.Path == "/core/admin/settings/") {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, tokens.NewMemoryStore())
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		method string
		path   string
	}{
		{"create testimonial", func() error {
			_, err := c.CreateTestimonial(ctx, &models.Testimonial{ClientName: "x"})
			return err
		}, http.MethodPost, "/portfolio/admin/testimonials/"},
		{"update testimonial", func() error {
			_, err := c.UpdateTestimonial(ctx, 7, map[string]any{"rating": 5})
			return err
		}, http.MethodPatch, "/portfolio/admin/testimonials/7/"},
		{"delete testimonial", func() error {
			return c.DeleteTestimonial(ctx, 7)
		}, http.MethodDelete, "/portfolio/admin/testimonials/7/"},
		{"list contact messages", func() error {
			_, err := c.ContactMessages(ctx)
			return err
		}, http.MethodGet, "/core/admin/messages/"},
		{"get contact message", func() error {
			_, err := c.ContactMessageByID(ctx, 3)
			return err
		}, http.MethodGet, "/core/admin/messages/3/"},
		{"delete contact message", func() error {
			return c.DeleteContactMessage(ctx, 3)
		}, http.MethodDelete, "/core/admin/messages/3/"},
		{"update about", func() error {
			_, err := c.UpdateAbout(ctx, 1, map[string]any{"title_en": "About"})
			return err
		}, http.MethodPatch, "/core/admin/about/1/"},
		{"list settings", func() error {
			_, err := c.SiteSettings(ctx)
			return err
		}, http.MethodGet, "/core/admin/settings/"},
		{"update setting", func() error {
			_, err := c.UpdateSiteSetting(ctx, "site_title", map[string]any{"value": "CAD"})
			return err
		}, http.MethodPatch, "/core/admin/settings/site_title/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.method, gotMethod)
			assert.Equal(t, tt.path, gotPath)
		})
	}
}
