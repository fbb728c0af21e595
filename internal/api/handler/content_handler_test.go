package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/securecargo/website-api/internal/core/domain"
	"github.com/securecargo/website-api/internal/core/ports"
)

type stubContentService struct {
	listServicesFn  func(ctx context.Context, includeDisabled bool) ([]domain.Service, error)
	getServiceFn    func(ctx context.Context, id string) (*domain.Service, error)
	getBySlugFn     func(ctx context.Context, slug string) (*domain.Service, error)
	createServiceFn func(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error)
	updateServiceFn func(ctx context.Context, id string, input ports.UpdateServiceInput) (*domain.Service, error)
	listGalleryFn   func(ctx context.Context) ([]domain.GalleryImage, error)
	getGalleryFn    func(ctx context.Context, id string) (*domain.GalleryImage, error)
	listLogosFn     func(ctx context.Context) ([]domain.ClientLogo, error)
	getLogoFn       func(ctx context.Context, id string) (*domain.ClientLogo, error)
}

func (s *stubContentService) ListServices(ctx context.Context, includeDisabled bool) ([]domain.Service, error) {
	return s.listServicesFn(ctx, includeDisabled)
}

func (s *stubContentService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	if s.getServiceFn == nil {
		return nil, domain.ErrServiceNotFound
	}
	return s.getServiceFn(ctx, id)
}

func (s *stubContentService) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	return s.getBySlugFn(ctx, slug)
}

func (s *stubContentService) CreateService(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	return s.createServiceFn(ctx, input)
}

func (s *stubContentService) UpdateService(ctx context.Context, id string, input ports.UpdateServiceInput) (*domain.Service, error) {
	return s.updateServiceFn(ctx, id, input)
}

func (s *stubContentService) DeleteService(ctx context.Context, id string) error {
	return domain.ErrServiceNotFound
}

func (s *stubContentService) ListGalleryImages(ctx context.Context) ([]domain.GalleryImage, error) {
	return s.listGalleryFn(ctx)
}

func (s *stubContentService) GetGalleryImage(ctx context.Context, id string) (*domain.GalleryImage, error) {
	if s.getGalleryFn == nil {
		return nil, domain.ErrImageNotFound
	}
	return s.getGalleryFn(ctx, id)
}

func (s *stubContentService) CreateGalleryImage(ctx context.Context, input ports.CreateGalleryImageInput) (*domain.GalleryImage, error) {
	return &domain.GalleryImage{ID: "img1", ImageURL: input.ImageURL}, nil
}

func (s *stubContentService) UpdateGalleryImage(ctx context.Context, id string, input ports.UpdateGalleryImageInput) (*domain.GalleryImage, error) {
	return nil, domain.ErrImageNotFound
}

func (s *stubContentService) DeleteGalleryImage(ctx context.Context, id string) error {
	return domain.ErrImageNotFound
}

func (s *stubContentService) ListClientLogos(ctx context.Context) ([]domain.ClientLogo, error) {
	return s.listLogosFn(ctx)
}

func (s *stubContentService) GetClientLogo(ctx context.Context, id string) (*domain.ClientLogo, error) {
	if s.getLogoFn == nil {
		return nil, domain.ErrLogoNotFound
	}
	return s.getLogoFn(ctx, id)
}

func (s *stubContentService) CreateClientLogo(ctx context.Context, input ports.CreateClientLogoInput) (*domain.ClientLogo, error) {
	return &domain.ClientLogo{ID: "logo1", Name: input.Name}, nil
}

func (s *stubContentService) UpdateClientLogo(ctx context.Context, id string, input ports.UpdateClientLogoInput) (*domain.ClientLogo, error) {
	return nil, domain.ErrLogoNotFound
}

func (s *stubContentService) DeleteClientLogo(ctx context.Context, id string) error {
	return domain.ErrLogoNotFound
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestContentHandler_PublicServices(t *testing.T) {
	handler := NewContentHandler(&stubContentService{
		listServicesFn: func(ctx context.Context, includeDisabled bool) ([]domain.Service, error) {
			if includeDisabled {
				t.Fatalf("public list must not include disabled services")
			}
			return []domain.Service{{ID: "svc1", Slug: "ocean-freight", Enabled: true}}, nil
		},
	})

	c, rec := newJSONContext(http.MethodGet, "/api/services", "")
	if err := handler.PublicServices(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var services []domain.Service
	if err := json.Unmarshal(rec.Body.Bytes(), &services); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(services) != 1 || services[0].Slug != "ocean-freight" {
		t.Fatalf("unexpected payload: %+v", services)
	}
}

func TestContentHandler_AdminServicesIncludesDisabled(t *testing.T) {
	handler := NewContentHandler(&stubContentService{
		listServicesFn: func(ctx context.Context, includeDisabled bool) ([]domain.Service, error) {
			if !includeDisabled {
				t.Fatalf("admin list must include disabled services")
			}
			return []domain.Service{{Slug: "a", Enabled: true}, {Slug: "b", Enabled: false}}, nil
		},
	})

	c, rec := newJSONContext(http.MethodGet, "/api/admin/services", "")
	if err := handler.AdminServices(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestContentHandler_AdminServiceByID(t *testing.T) {
	handler := NewContentHandler(&stubContentService{
		getServiceFn: func(ctx context.Context, id string) (*domain.Service, error) {
			if id != "svc1" {
				t.Fatalf("unexpected id %q", id)
			}
			return &domain.Service{ID: id, Slug: "ocean-freight", Enabled: false}, nil
		},
	})

	c, rec := newJSONContext(http.MethodGet, "/api/admin/services/svc1", "")
	c.SetParamNames("id")
	c.SetParamValues("svc1")

	if err := handler.AdminService(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ocean-freight") {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestContentHandler_AdminServiceByID_NotFound(t *testing.T) {
	handler := NewContentHandler(&stubContentService{})

	c, _ := newJSONContext(http.MethodGet, "/api/admin/services/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := handler.AdminService(c); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestContentHandler_AdminGalleryImageByID(t *testing.T) {
	handler := NewContentHandler(&stubContentService{
		getGalleryFn: func(ctx context.Context, id string) (*domain.GalleryImage, error) {
			return &domain.GalleryImage{ID: id, Caption: "Dock"}, nil
		},
	})

	c, rec := newJSONContext(http.MethodGet, "/api/admin/gallery/img1", "")
	c.SetParamNames("id")
	c.SetParamValues("img1")

	if err := handler.AdminGalleryImage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Dock") {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestContentHandler_AdminClientLogoByID_NotFound(t *testing.T) {
	handler := NewContentHandler(&stubContentService{})

	c, _ := newJSONContext(http.MethodGet, "/api/admin/client-logos/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := handler.AdminClientLogo(c); !errors.Is(err, domain.ErrLogoNotFound) {
		t.Fatalf("expected ErrLogoNotFound, got %v", err)
	}
}

func TestContentHandler_PublicServiceBySlug_NotFound(t *testing.T) {
	handler := NewContentHandler(&stubContentService{
		getBySlugFn: func(ctx context.Context, slug string) (*domain.Service, error) {
			return nil, domain.ErrServiceNotFound
		},
	})

	c, _ := newJSONContext(http.MethodGet, "/api/services/ghost", "")
	c.SetParamNames("slug")
	c.SetParamValues("ghost")

	if err := handler.PublicServiceBySlug(c); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestContentHandler_CreateService(t *testing.T) {
	handler := NewContentHandler(&stubContentService{
		createServiceFn: func(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
			if input.Slug != "air-freight" || len(input.WorkflowSteps) != 1 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Service{ID: "svc1", Slug: input.Slug, Title: input.Title}, nil
		},
	})

	body := `{
		"slug": "air-freight",
		"title": "Air Freight",
		"shortDescription": "Fast shipping by air",
		"fullDescription": "Door to door air cargo.",
		"importance": "Speed for time-critical cargo",
		"imageUrl": "/uploads/air.jpg",
		"workflowSteps": [{"title": "Pickup", "description": "We collect the cargo"}],
		"enabled": true,
		"order": 2
	}`
	c, rec := newJSONContext(http.MethodPost, "/api/admin/services", body)
	if err := handler.CreateService(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestContentHandler_CreateService_MissingFields(t *testing.T) {
	handler := NewContentHandler(&stubContentService{
		createServiceFn: func(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newJSONContext(http.MethodPost, "/api/admin/services", `{"title":"No Slug"}`)
	err := handler.CreateService(c)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestContentHandler_UpdateService_PartialFields(t *testing.T) {
	handler := NewContentHandler(&stubContentService{
		updateServiceFn: func(ctx context.Context, id string, input ports.UpdateServiceInput) (*domain.Service, error) {
			if id != "svc1" {
				t.Fatalf("unexpected id %q", id)
			}
			if input.Title == nil || *input.Title != "New Title" {
				t.Fatalf("title pointer not set: %+v", input)
			}
			if input.Slug != nil || input.Enabled != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			return &domain.Service{ID: id, Title: *input.Title}, nil
		},
	})

	c, rec := newJSONContext(http.MethodPatch, "/api/admin/services/svc1", `{"title":"New Title"}`)
	c.SetParamNames("id")
	c.SetParamValues("svc1")

	if err := handler.UpdateService(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestContentHandler_PublicGalleryAndLogos(t *testing.T) {
	handler := NewContentHandler(&stubContentService{
		listGalleryFn: func(ctx context.Context) ([]domain.GalleryImage, error) {
			return []domain.GalleryImage{{ID: "img1", Caption: "Dock"}}, nil
		},
		listLogosFn: func(ctx context.Context) ([]domain.ClientLogo, error) {
			return []domain.ClientLogo{{ID: "logo1", Name: "Acme"}}, nil
		},
	})

	c, rec := newJSONContext(http.MethodGet, "/api/gallery", "")
	if err := handler.PublicGallery(c); err != nil {
		t.Fatalf("gallery handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Dock") {
		t.Fatalf("unexpected gallery response: %d %q", rec.Code, rec.Body.String())
	}

	c, rec = newJSONContext(http.MethodGet, "/api/client-logos", "")
	if err := handler.PublicClientLogos(c); err != nil {
		t.Fatalf("logos handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Acme") {
		t.Fatalf("unexpected logos response: %d %q", rec.Code, rec.Body.String())
	}
}
