package domain

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrSlugExists      = errors.New("slug already exists")
	ErrImageNotFound   = errors.New("image not found")
	ErrLogoNotFound    = errors.New("logo not found")
)

// WorkflowStep is one step of a service's documented workflow.
type WorkflowStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service is a marketed offering shown on the public site. Disabled services
// stay editable through the admin panel but are hidden from public reads.
type Service struct {
	ID               string         `json:"id"`
	Slug             string         `json:"slug"`
	Title            string         `json:"title"`
	ShortDescription string         `json:"shortDescription"`
	FullDescription  string         `json:"fullDescription"`
	Importance       string         `json:"importance"`
	ImageURL         string         `json:"imageUrl"`
	WorkflowSteps    []WorkflowStep `json:"workflowSteps"`
	GalleryImages    []string       `json:"galleryImages"`
	Features         []string       `json:"features"`
	Enabled          bool           `json:"enabled"`
	Order            int            `json:"order"`
}

// GalleryImage is a single photo in the public gallery.
type GalleryImage struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption,omitempty"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// ClientLogo is a customer logo shown in the trust strip.
type ClientLogo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Order    int    `json:"order"`
}
