package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/securecargo/website-api/internal/core/domain"
	"github.com/securecargo/website-api/internal/core/ports"
)

// ContentService backs both the public read endpoints and the admin CRUD
// endpoints for services, gallery images and client logos. No versioning and
// no soft deletes: last write wins.
type ContentService struct {
	services ports.ServiceRepository
	gallery  ports.GalleryRepository
	logos    ports.LogoRepository
	logger   zerolog.Logger
}

func NewContentService(services ports.ServiceRepository, gallery ports.GalleryRepository, logos ports.LogoRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{services: services, gallery: gallery, logos: logos, logger: logger}
}

// --- Services ---

func (s *ContentService) ListServices(ctx context.Context, includeDisabled bool) ([]domain.Service, error) {
	all, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeDisabled {
		return all, nil
	}

	enabled := make([]domain.Service, 0, len(all))
	for _, svc := range all {
		if svc.Enabled {
			enabled = append(enabled, svc)
		}
	}
	return enabled, nil
}

func (s *ContentService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	return s.services.FindByID(ctx, id)
}

// GetServiceBySlug serves the public detail page. A disabled service is
// indistinguishable from a missing one.
func (s *ContentService) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	svc, err := s.services.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !svc.Enabled {
		return nil, domain.ErrServiceNotFound
	}
	return svc, nil
}

func (s *ContentService) CreateService(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	svc := &domain.Service{
		Slug:             input.Slug,
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		Importance:       input.Importance,
		ImageURL:         input.ImageURL,
		WorkflowSteps:    input.WorkflowSteps,
		GalleryImages:    input.GalleryImages,
		Features:         input.Features,
		Enabled:          input.Enabled,
		Order:            input.Order,
	}

	created, err := s.services.Create(ctx, svc)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("slug", created.Slug).Msg("service created")
	return created, nil
}

func (s *ContentService) UpdateService(ctx context.Context, id string, input ports.UpdateServiceInput) (*domain.Service, error) {
	return s.services.Update(ctx, id, input)
}

func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	if err := s.services.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrServiceNotFound) {
			s.logger.Error().Err(err).Str("service_id", id).Msg("failed to delete service")
		}
		return err
	}
	s.logger.Info().Str("service_id", id).Msg("service deleted")
	return nil
}

// --- Gallery ---

func (s *ContentService) ListGalleryImages(ctx context.Context) ([]domain.GalleryImage, error) {
	return s.gallery.List(ctx)
}

func (s *ContentService) GetGalleryImage(ctx context.Context, id string) (*domain.GalleryImage, error) {
	return s.gallery.FindByID(ctx, id)
}

func (s *ContentService) CreateGalleryImage(ctx context.Context, input ports.CreateGalleryImageInput) (*domain.GalleryImage, error) {
	return s.gallery.Create(ctx, &domain.GalleryImage{
		ImageURL: input.ImageURL,
		Caption:  input.Caption,
		Category: input.Category,
		Order:    input.Order,
	})
}

func (s *ContentService) UpdateGalleryImage(ctx context.Context, id string, input ports.UpdateGalleryImageInput) (*domain.GalleryImage, error) {
	return s.gallery.Update(ctx, id, input)
}

func (s *ContentService) DeleteGalleryImage(ctx context.Context, id string) error {
	return s.gallery.Delete(ctx, id)
}

// --- Client logos ---

func (s *ContentService) ListClientLogos(ctx context.Context) ([]domain.ClientLogo, error) {
	return s.logos.List(ctx)
}

func (s *ContentService) GetClientLogo(ctx context.Context, id string) (*domain.ClientLogo, error) {
	return s.logos.FindByID(ctx, id)
}

func (s *ContentService) CreateClientLogo(ctx context.Context, input ports.CreateClientLogoInput) (*domain.ClientLogo, error) {
	return s.logos.Create(ctx, &domain.ClientLogo{
		Name:     input.Name,
		ImageURL: input.ImageURL,
		Order:    input.Order,
	})
}

func (s *ContentService) UpdateClientLogo(ctx context.Context, id string, input ports.UpdateClientLogoInput) (*domain.ClientLogo, error) {
	return s.logos.Update(ctx, id, input)
}

func (s *ContentService) DeleteClientLogo(ctx context.Context, id string) error {
	return s.logos.Delete(ctx, id)
}
