package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/securecargo/website-api/internal/core/domain"
	"github.com/securecargo/website-api/internal/core/ports"
)

const servicesCollection = "services"

// ServiceRepository persists marketed services in MongoDB.
type ServiceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{coll: db.Collection(servicesCollection)}
}

type workflowStepDoc struct {
	Title       string `bson:"title"`
	Description string `bson:"description"`
}

type serviceDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Slug             string             `bson:"slug"`
	Title            string             `bson:"title"`
	ShortDescription string             `bson:"short_description"`
	FullDescription  string             `bson:"full_description"`
	Importance       string             `bson:"importance"`
	ImageURL         string             `bson:"image_url"`
	WorkflowSteps    []workflowStepDoc  `bson:"workflow_steps"`
	GalleryImages    []string           `bson:"gallery_images"`
	Features         []string           `bson:"features"`
	Enabled          bool               `bson:"enabled"`
	Order            int                `bson:"order"`
}

func (d serviceDoc) toDomain() *domain.Service {
	steps := make([]domain.WorkflowStep, len(d.WorkflowSteps))
	for i, s := range d.WorkflowSteps {
		steps[i] = domain.WorkflowStep{Title: s.Title, Description: s.Description}
	}
	return &domain.Service{
		ID:               d.ID.Hex(),
		Slug:             d.Slug,
		Title:            d.Title,
		ShortDescription: d.ShortDescription,
		FullDescription:  d.FullDescription,
		Importance:       d.Importance,
		ImageURL:         d.ImageURL,
		WorkflowSteps:    steps,
		GalleryImages:    d.GalleryImages,
		Features:         d.Features,
		Enabled:          d.Enabled,
		Order:            d.Order,
	}
}

func stepDocs(steps []domain.WorkflowStep) []workflowStepDoc {
	docs := make([]workflowStepDoc, len(steps))
	for i, s := range steps {
		docs[i] = workflowStepDoc{Title: s.Title, Description: s.Description}
	}
	return docs
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cur.Close(ctx)

	var services []domain.Service
	for cur.Next(ctx) {
		var doc serviceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		services = append(services, *doc.toDomain())
	}
	return services, cur.Err()
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrServiceNotFound
	}

	var doc serviceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) FindBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	var doc serviceDoc
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	doc := serviceDoc{
		Slug:             svc.Slug,
		Title:            svc.Title,
		ShortDescription: svc.ShortDescription,
		FullDescription:  svc.FullDescription,
		Importance:       svc.Importance,
		ImageURL:         svc.ImageURL,
		WorkflowSteps:    stepDocs(svc.WorkflowSteps),
		GalleryImages:    svc.GalleryImages,
		Features:         svc.Features,
		Enabled:          svc.Enabled,
		Order:            svc.Order,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("insert service: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, update ports.UpdateServiceInput) (*domain.Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrServiceNotFound
	}

	set := serviceUpdateSet(update)
	// An empty $set is a server error in MongoDB; a patch with no known
	// fields is a valid no-op, so return the current document instead.
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var doc serviceDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrServiceNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

// EnsureIndexes creates the unique slug index plus the display-order index.
func (r *ServiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "order", Value: 1}}},
	})
	return err
}

// setIf adds key to set when the pointer carries a value. Generic over the
// field types used by partial updates.
func setIf[T any](set bson.M, key string, val *T) {
	if val != nil {
		set[key] = *val
	}
}

func serviceUpdateSet(update ports.UpdateServiceInput) bson.M {
	set := bson.M{}
	setIf(set, "slug", update.Slug)
	setIf(set, "title", update.Title)
	setIf(set, "short_description", update.ShortDescription)
	setIf(set, "full_description", update.FullDescription)
	setIf(set, "importance", update.Importance)
	setIf(set, "image_url", update.ImageURL)
	setIf(set, "gallery_images", update.GalleryImages)
	setIf(set, "features", update.Features)
	setIf(set, "enabled", update.Enabled)
	setIf(set, "order", update.Order)
	if update.WorkflowSteps != nil {
		set["workflow_steps"] = stepDocs(*update.WorkflowSteps)
	}
	return set
}
