package ports

import (
	"context"

	"github.com/securecargo/website-api/internal/core/domain"
)

// ServiceRepository persists marketed services. List returns services ordered
// by Order ascending.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id string, update UpdateServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// GalleryRepository persists gallery images, ordered by Order ascending.
type GalleryRepository interface {
	List(ctx context.Context) ([]domain.GalleryImage, error)
	FindByID(ctx context.Context, id string) (*domain.GalleryImage, error)
	Create(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error)
	Update(ctx context.Context, id string, update UpdateGalleryImageInput) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

// LogoRepository persists client logos, ordered by Order ascending.
type LogoRepository interface {
	List(ctx context.Context) ([]domain.ClientLogo, error)
	FindByID(ctx context.Context, id string) (*domain.ClientLogo, error)
	Create(ctx context.Context, logo *domain.ClientLogo) (*domain.ClientLogo, error)
	Update(ctx context.Context, id string, update UpdateClientLogoInput) (*domain.ClientLogo, error)
	Delete(ctx context.Context, id string) error
}

// CreateServiceInput carries all fields for a new service.
type CreateServiceInput struct {
	Slug             string
	Title            string
	ShortDescription string
	FullDescription  string
	Importance       string
	ImageURL         string
	WorkflowSteps    []domain.WorkflowStep
	GalleryImages    []string
	Features         []string
	Enabled          bool
	Order            int
}

// UpdateServiceInput is a partial update; nil fields are left untouched.
type UpdateServiceInput struct {
	Slug             *string
	Title            *string
	ShortDescription *string
	FullDescription  *string
	Importance       *string
	ImageURL         *string
	WorkflowSteps    *[]domain.WorkflowStep
	GalleryImages    *[]string
	Features         *[]string
	Enabled          *bool
	Order            *int
}

type CreateGalleryImageInput struct {
	ImageURL string
	Caption  string
	Category string
	Order    int
}

// UpdateGalleryImageInput is a partial update; nil fields are left untouched.
type UpdateGalleryImageInput struct {
	ImageURL *string
	Caption  *string
	Category *string
	Order    *int
}

type CreateClientLogoInput struct {
	Name     string
	ImageURL string
	Order    int
}

// UpdateClientLogoInput is a partial update; nil fields are left untouched.
type UpdateClientLogoInput struct {
	Name     *string
	ImageURL *string
	Order    *int
}

// ContentService defines the content-management use cases behind both the
// public read endpoints and the admin CRUD endpoints.
type ContentService interface {
	// ListServices returns all services when includeDisabled is true (admin
	// view) and only enabled ones otherwise (public view).
	ListServices(ctx context.Context, includeDisabled bool) ([]domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
	// GetServiceBySlug serves the public detail page: disabled services are
	// reported as not found.
	GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error)
	CreateService(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, input UpdateServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListGalleryImages(ctx context.Context) ([]domain.GalleryImage, error)
	GetGalleryImage(ctx context.Context, id string) (*domain.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, input CreateGalleryImageInput) (*domain.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, id string, input UpdateGalleryImageInput) (*domain.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id string) error

	ListClientLogos(ctx context.Context) ([]domain.ClientLogo, error)
	GetClientLogo(ctx context.Context, id string) (*domain.ClientLogo, error)
	CreateClientLogo(ctx context.Context, input CreateClientLogoInput) (*domain.ClientLogo, error)
	UpdateClientLogo(ctx context.Context, id string, input UpdateClientLogoInput) (*domain.ClientLogo, error)
	DeleteClientLogo(ctx context.Context, id string) error
}
