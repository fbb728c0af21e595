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

const galleryCollection = "gallery_images"

// GalleryRepository persists gallery images in MongoDB.
type GalleryRepository struct {
	coll *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{coll: db.Collection(galleryCollection)}
}

type galleryImageDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	ImageURL string             `bson:"image_url"`
	Caption  string             `bson:"caption,omitempty"`
	Category string             `bson:"category"`
	Order    int                `bson:"order"`
}

func (d galleryImageDoc) toDomain() *domain.GalleryImage {
	return &domain.GalleryImage{
		ID:       d.ID.Hex(),
		ImageURL: d.ImageURL,
		Caption:  d.Caption,
		Category: d.Category,
		Order:    d.Order,
	}
}

func (r *GalleryRepository) List(ctx context.Context) ([]domain.GalleryImage, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	defer cur.Close(ctx)

	var images []domain.GalleryImage
	for cur.Next(ctx) {
		var doc galleryImageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode gallery image: %w", err)
		}
		images = append(images, *doc.toDomain())
	}
	return images, cur.Err()
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrImageNotFound
	}

	var doc galleryImageDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("find gallery image: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *GalleryRepository) Create(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	doc := galleryImageDoc{
		ImageURL: img.ImageURL,
		Caption:  img.Caption,
		Category: img.Category,
		Order:    img.Order,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert gallery image: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *GalleryRepository) Update(ctx context.Context, id string, update ports.UpdateGalleryImageInput) (*domain.GalleryImage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrImageNotFound
	}

	set := galleryUpdateSet(update)
	// MongoDB rejects an empty $set; a field-less patch is a no-op read.
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var doc galleryImageDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("update gallery image: %w", err)
	}
	return doc.toDomain(), nil
}

func galleryUpdateSet(update ports.UpdateGalleryImageInput) bson.M {
	set := bson.M{}
	setIf(set, "image_url", update.ImageURL)
	setIf(set, "caption", update.Caption)
	setIf(set, "category", update.Category)
	setIf(set, "order", update.Order)
	return set
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrImageNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

func (r *GalleryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order", Value: 1}},
	})
	return err
}
