package handler

import "github.com/securecargo/website-api/internal/core/domain"

// Content responses reuse the domain structs directly: their JSON tags are the
// public contract (camelCase, matching what the admin panel edits).

type workflowStepRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

type createServiceRequest struct {
	Slug             string                `json:"slug"             validate:"required"`
	Title            string                `json:"title"            validate:"required"`
	ShortDescription string                `json:"shortDescription" validate:"required"`
	FullDescription  string                `json:"fullDescription"  validate:"required"`
	Importance       string                `json:"importance"       validate:"required"`
	ImageURL         string                `json:"imageUrl"         validate:"required"`
	WorkflowSteps    []workflowStepRequest `json:"workflowSteps"    validate:"dive"`
	GalleryImages    []string              `json:"galleryImages"`
	Features         []string              `json:"features"`
	Enabled          bool                  `json:"enabled"`
	Order            int                   `json:"order"`
}

// updateServiceRequest is a partial update: only fields present in the JSON
// body are applied.
type updateServiceRequest struct {
	Slug             *string                `json:"slug"`
	Title            *string                `json:"title"`
	ShortDescription *string                `json:"shortDescription"`
	FullDescription  *string                `json:"fullDescription"`
	Importance       *string                `json:"importance"`
	ImageURL         *string                `json:"imageUrl"`
	WorkflowSteps    *[]workflowStepRequest `json:"workflowSteps"`
	GalleryImages    *[]string              `json:"galleryImages"`
	Features         *[]string              `json:"features"`
	Enabled          *bool                  `json:"enabled"`
	Order            *int                   `json:"order"`
}

type createGalleryImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
	Caption  string `json:"caption"`
	Category string `json:"category" validate:"required"`
	Order    int    `json:"order"`
}

type updateGalleryImageRequest struct {
	ImageURL *string `json:"imageUrl"`
	Caption  *string `json:"caption"`
	Category *string `json:"category"`
	Order    *int    `json:"order"`
}

type createClientLogoRequest struct {
	Name     string `json:"name"     validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
	Order    int    `json:"order"`
}

type updateClientLogoRequest struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"imageUrl"`
	Order    *int    `json:"order"`
}

func workflowSteps(reqs []workflowStepRequest) []domain.WorkflowStep {
	if reqs == nil {
		return nil
	}
	steps := make([]domain.WorkflowStep, len(reqs))
	for i, r := range reqs {
		steps[i] = domain.WorkflowStep{Title: r.Title, Description: r.Description}
	}
	return steps
}
