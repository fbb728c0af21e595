package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/securecargo/website-api/internal/core/ports"
)

// ContentHandler serves the public content reads and the admin CRUD routes
// for services, gallery images and client logos.
type ContentHandler struct {
	content ports.ContentService
}

func NewContentHandler(content ports.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// --- Public reads ---

// PublicServices lists enabled services ordered for display.
//
// @Summary      List enabled services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /api/services [get]
func (h *ContentHandler) PublicServices(c echo.Context) error {
	services, err := h.content.ListServices(c.Request().Context(), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// PublicServiceBySlug returns a single enabled service.
//
// @Summary      Get service by slug
// @Tags         services
// @Produce      json
// @Param        slug  path      string  true  "Service slug"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  errorResponse
// @Router       /api/services/{slug} [get]
func (h *ContentHandler) PublicServiceBySlug(c echo.Context) error {
	svc, err := h.content.GetServiceBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// PublicGallery lists gallery images ordered for display.
func (h *ContentHandler) PublicGallery(c echo.Context) error {
	images, err := h.content.ListGalleryImages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

// PublicClientLogos lists client logos ordered for display.
func (h *ContentHandler) PublicClientLogos(c echo.Context) error {
	logos, err := h.content.ListClientLogos(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logos)
}

// --- Admin: services ---

// AdminServices lists all services, disabled ones included.
func (h *ContentHandler) AdminServices(c echo.Context) error {
	services, err := h.content.ListServices(c.Request().Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// AdminService returns one service by id, enabled or not, for the edit form.
//
// @Summary      Get service by id
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/services/{id} [get]
func (h *ContentHandler) AdminService(c echo.Context) error {
	svc, err := h.content.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// CreateService creates a service.
//
// @Summary      Create service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/services [post]
func (h *ContentHandler) CreateService(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.content.CreateService(c.Request().Context(), ports.CreateServiceInput{
		Slug:             req.Slug,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Importance:       req.Importance,
		ImageURL:         req.ImageURL,
		WorkflowSteps:    workflowSteps(req.WorkflowSteps),
		GalleryImages:    req.GalleryImages,
		Features:         req.Features,
		Enabled:          req.Enabled,
		Order:            req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// UpdateService applies a partial update.
//
// @Summary      Update service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Service id"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/services/{id} [patch]
func (h *ContentHandler) UpdateService(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := ports.UpdateServiceInput{
		Slug:             req.Slug,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Importance:       req.Importance,
		ImageURL:         req.ImageURL,
		GalleryImages:    req.GalleryImages,
		Features:         req.Features,
		Enabled:          req.Enabled,
		Order:            req.Order,
	}
	if req.WorkflowSteps != nil {
		steps := workflowSteps(*req.WorkflowSteps)
		update.WorkflowSteps = &steps
	}

	svc, err := h.content.UpdateService(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// DeleteService removes a service.
func (h *ContentHandler) DeleteService(c echo.Context) error {
	if err := h.content.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// --- Admin: gallery ---

func (h *ContentHandler) AdminGallery(c echo.Context) error {
	return h.PublicGallery(c)
}

// AdminGalleryImage returns one gallery image by id for the edit form.
func (h *ContentHandler) AdminGalleryImage(c echo.Context) error {
	img, err := h.content.GetGalleryImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, img)
}

func (h *ContentHandler) CreateGalleryImage(c echo.Context) error {
	var req createGalleryImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	img, err := h.content.CreateGalleryImage(c.Request().Context(), ports.CreateGalleryImageInput{
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
		Category: req.Category,
		Order:    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, img)
}

func (h *ContentHandler) UpdateGalleryImage(c echo.Context) error {
	var req updateGalleryImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	img, err := h.content.UpdateGalleryImage(c.Request().Context(), c.Param("id"), ports.UpdateGalleryImageInput{
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
		Category: req.Category,
		Order:    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, img)
}

func (h *ContentHandler) DeleteGalleryImage(c echo.Context) error {
	if err := h.content.DeleteGalleryImage(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// --- Admin: client logos ---

func (h *ContentHandler) AdminClientLogos(c echo.Context) error {
	return h.PublicClientLogos(c)
}

// AdminClientLogo returns one client logo by id for the edit form.
func (h *ContentHandler) AdminClientLogo(c echo.Context) error {
	logo, err := h.content.GetClientLogo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logo)
}

func (h *ContentHandler) CreateClientLogo(c echo.Context) error {
	var req createClientLogoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	logo, err := h.content.CreateClientLogo(c.Request().Context(), ports.CreateClientLogoInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Order:    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, logo)
}

func (h *ContentHandler) UpdateClientLogo(c echo.Context) error {
	var req updateClientLogoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	logo, err := h.content.UpdateClientLogo(c.Request().Context(), c.Param("id"), ports.UpdateClientLogoInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Order:    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logo)
}

func (h *ContentHandler) DeleteClientLogo(c echo.Context) error {
	if err := h.content.DeleteClientLogo(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
