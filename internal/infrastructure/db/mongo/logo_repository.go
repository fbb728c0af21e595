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

const logosCollection = "client_logos"

// LogoRepository persists client logos in MongoDB.
type LogoRepository struct {
	coll *mongo.Collection
}

func NewLogoRepository(db *mongo.Database) *LogoRepository {
	return &LogoRepository{coll: db.Collection(logosCollection)}
}

type clientLogoDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	ImageURL string             `bson:"image_url"`
	Order    int                `bson:"order"`
}

func (d clientLogoDoc) toDomain() *domain.ClientLogo {
	return &domain.ClientLogo{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		ImageURL: d.ImageURL,
		Order:    d.Order,
	}
}

func (r *LogoRepository) List(ctx context.Context) ([]domain.ClientLogo, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list client logos: %w", err)
	}
	defer cur.Close(ctx)

	var logos []domain.ClientLogo
	for cur.Next(ctx) {
		var doc clientLogoDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode client logo: %w", err)
		}
		logos = append(logos, *doc.toDomain())
	}
	return logos, cur.Err()
}

func (r *LogoRepository) FindByID(ctx context.Context, id string) (*domain.ClientLogo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLogoNotFound
	}

	var doc clientLogoDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLogoNotFound
		}
		return nil, fmt.Errorf("find client logo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *LogoRepository) Create(ctx context.Context, logo *domain.ClientLogo) (*domain.ClientLogo, error) {
	doc := clientLogoDoc{
		Name:     logo.Name,
		ImageURL: logo.ImageURL,
		Order:    logo.Order,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert client logo: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *LogoRepository) Update(ctx context.Context, id string, update ports.UpdateClientLogoInput) (*domain.ClientLogo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLogoNotFound
	}

	set := logoUpdateSet(update)
	// MongoDB rejects an empty $set; a field-less patch is a no-op read.
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var doc clientLogoDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLogoNotFound
		}
		return nil, fmt.Errorf("update client logo: %w", err)
	}
	return doc.toDomain(), nil
}

func logoUpdateSet(update ports.UpdateClientLogoInput) bson.M {
	set := bson.M{}
	setIf(set, "name", update.Name)
	setIf(set, "image_url", update.ImageURL)
	setIf(set, "order", update.Order)
	return set
}

func (r *LogoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLogoNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete client logo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLogoNotFound
	}
	return nil
}

func (r *LogoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order", Value: 1}},
	})
	return err
}
