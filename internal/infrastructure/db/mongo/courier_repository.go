package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parcelpro/tracking-service/internal/core/domain"
)

const collectionCouriers = "couriers"

// CourierRepository implements ports.CourierRepository on MongoDB.
// Courier IDs are the document _id, so existence checks are a primary
// key lookup.
type CourierRepository struct {
	col *mongo.Collection
}

func NewCourierRepository(db *mongo.Database) *CourierRepository {
	return &CourierRepository{col: db.Collection(collectionCouriers)}
}

func (r *CourierRepository) FindByID(ctx context.Context, id string) (*domain.Courier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Courier
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourierNotFound
		}
		return nil, fmt.Errorf("find courier: %w", err)
	}
	return &c, nil
}

func (r *CourierRepository) List(ctx context.Context) ([]*domain.Courier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	couriers := make([]*domain.Courier, 0)
	for cur.Next(ctx) {
		var c domain.Courier
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		couriers = append(couriers, &c)
	}
	return couriers, cur.Err()
}

// Seed upserts the given couriers by ID. Existing records are replaced,
// so re-seeding in development is safe.
func (r *CourierRepository) Seed(ctx context.Context, couriers []domain.Courier) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	for _, c := range couriers {
		_, err := r.col.ReplaceOne(ctx,
			bson.M{"_id": c.ID},
			c,
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed courier %s: %w", c.ID, err)
		}
	}
	return nil
}
