package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parcelpro/tracking-service/internal/core/domain"
	"github.com/parcelpro/tracking-service/internal/core/ports"
)

const collectionParcels = "parcels"

// ParcelRepository implements ports.ParcelRepository on MongoDB.
type ParcelRepository struct {
	col *mongo.Collection
}

func NewParcelRepository(db *mongo.Database) *ParcelRepository {
	return &ParcelRepository{col: db.Collection(collectionParcels)}
}

// parcelDoc is the stored shape. It carries a denormalized top-level
// status (always equal to the last history entry's status) so that
// conditional appends can filter on it.
type parcelDoc struct {
	domain.Parcel `bson:",inline"`
	Status        string `bson:"status"`
}

// Put inserts a new parcel document.
func (r *ParcelRepository) Put(ctx context.Context, p *domain.Parcel) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := parcelDoc{Parcel: *p, Status: string(p.CurrentStatus())}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTrackingNumber
		}
		return err
	}
	return nil
}

// Get retrieves a parcel by tracking number.
func (r *ParcelRepository) Get(ctx context.Context, trackingNumber string) (*domain.Parcel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc parcelDoc
	err := r.col.FindOne(ctx, bson.M{"tracking_number": trackingNumber}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrParcelNotFound
		}
		return nil, err
	}
	return &doc.Parcel, nil
}

// AppendEvent appends a history entry and advances the top-level status
// in one update. The filter includes the expected current status: when
// another writer got there first the update matches nothing and the
// caller gets domain.ErrBusy instead of a lost update.
func (r *ParcelRepository) AppendEvent(ctx context.Context, trackingNumber string, expectedStatus domain.ParcelStatus, event domain.TrackingEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"tracking_number": trackingNumber,
		"status":          string(expectedStatus),
	}
	update := bson.M{
		"$set":  bson.M{"status": string(event.Status)},
		"$push": bson.M{"history": event},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing parcel from a lost race.
		n, err := r.col.CountDocuments(ctx, bson.M{"tracking_number": trackingNumber})
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrParcelNotFound
		}
		return domain.ErrBusy
	}
	return nil
}

// SetCourier records a courier assignment on the parcel document.
func (r *ParcelRepository) SetCourier(ctx context.Context, trackingNumber, courierID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"tracking_number": trackingNumber},
		bson.M{"$set": bson.M{"courier_id": courierID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrParcelNotFound
	}
	return nil
}

// ListByCourier returns all parcels assigned to courierID in creation order.
func (r *ParcelRepository) ListByCourier(ctx context.Context, courierID string) ([]*domain.Parcel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"courier_id": courierID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeParcels(ctx, cur)
}

// List returns a page of parcels in creation order and the total count.
func (r *ParcelRepository) List(ctx context.Context, filter ports.ListParcelsFilter) ([]*domain.Parcel, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.PerPage)).
		SetLimit(int64(filter.PerPage))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	parcels, err := decodeParcels(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return parcels, total, nil
}

// EnsureIndexes creates the indexes the repository relies on. The
// unique tracking_number index is the final uniqueness guarantee for
// generated numbers.
func (r *ParcelRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tracking_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "courier_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeParcels(ctx context.Context, cur *mongo.Cursor) ([]*domain.Parcel, error) {
	parcels := make([]*domain.Parcel, 0)
	for cur.Next(ctx) {
		var doc parcelDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		p := doc.Parcel
		parcels = append(parcels, &p)
	}
	return parcels, cur.Err()
}
