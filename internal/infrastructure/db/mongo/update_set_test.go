package mongo

import (
	"testing"

	"github.com/securecargo/website-api/internal/core/domain"
	"github.com/securecargo/website-api/internal/core/ports"
)

// Empty $set documents are rejected by the MongoDB server, so the update
// builders must produce an empty map only when the repositories take the
// no-op read path instead of issuing FindOneAndUpdate.

func TestServiceUpdateSet_EmptyPatch(t *testing.T) {
	if set := serviceUpdateSet(ports.UpdateServiceInput{}); len(set) != 0 {
		t.Fatalf("empty patch must build an empty set, got %v", set)
	}
}

func TestServiceUpdateSet_Fields(t *testing.T) {
	title := "Air Freight"
	enabled := true
	order := 3
	steps := []domain.WorkflowStep{{Title: "Pickup", Description: "We collect"}}

	set := serviceUpdateSet(ports.UpdateServiceInput{
		Title:         &title,
		Enabled:       &enabled,
		Order:         &order,
		WorkflowSteps: &steps,
	})

	if len(set) != 4 {
		t.Fatalf("expected 4 keys, got %v", set)
	}
	if set["title"] != title || set["enabled"] != enabled || set["order"] != order {
		t.Fatalf("unexpected values: %v", set)
	}
	docs, ok := set["workflow_steps"].([]workflowStepDoc)
	if !ok || len(docs) != 1 || docs[0].Title != "Pickup" {
		t.Fatalf("workflow steps not converted: %v", set["workflow_steps"])
	}
	if _, present := set["slug"]; present {
		t.Fatalf("absent field leaked into set: %v", set)
	}
}

func TestGalleryUpdateSet(t *testing.T) {
	if set := galleryUpdateSet(ports.UpdateGalleryImageInput{}); len(set) != 0 {
		t.Fatalf("empty patch must build an empty set, got %v", set)
	}

	caption := "Container terminal"
	set := galleryUpdateSet(ports.UpdateGalleryImageInput{Caption: &caption})
	if len(set) != 1 || set["caption"] != caption {
		t.Fatalf("unexpected set: %v", set)
	}
}

func TestLogoUpdateSet(t *testing.T) {
	if set := logoUpdateSet(ports.UpdateClientLogoInput{}); len(set) != 0 {
		t.Fatalf("empty patch must build an empty set, got %v", set)
	}

	name := "Acme Logistics"
	order := 2
	set := logoUpdateSet(ports.UpdateClientLogoInput{Name: &name, Order: &order})
	if len(set) != 2 || set["name"] != name || set["order"] != order {
		t.Fatalf("unexpected set: %v", set)
	}
}
