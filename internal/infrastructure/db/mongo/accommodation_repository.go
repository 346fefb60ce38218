package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

const collectionAccommodations = "accommodations"

type AccommodationRepository struct {
	col *mongo.Collection
}

func NewAccommodationRepository(db *mongo.Database) *AccommodationRepository {
	return &AccommodationRepository{col: db.Collection(collectionAccommodations)}
}

// Create inserts a new accommodation document.
func (r *AccommodationRepository) Create(ctx context.Context, a *domain.Accommodation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

// FindByID retrieves an accommodation by its id.
func (r *AccommodationRepository) FindByID(ctx context.Context, id string) (*domain.Accommodation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Accommodation
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccommodationNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns accommodations matching all present filter predicates, in
// insertion order (created_at ascending, which matches insertion for
// server-stamped timestamps).
func (r *AccommodationRepository) List(ctx context.Context, filter ports.ListAccommodationsFilter) ([]*domain.Accommodation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ReligiousPreference != "" {
		// An "Any" listing matches every preference filter.
		query["religious_preference"] = bson.M{"$in": bson.A{filter.ReligiousPreference, string(domain.PreferenceAny)}}
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Location), Options: "i"}
	}

	opts := optionsFindOrderedByCreation()
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]*domain.Accommodation, 0)
	for cur.Next(ctx) {
		var a domain.Accommodation
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, cur.Err()
}

// Update applies the non-nil fields of upd via $set and refreshes updated_at,
// returning the merged document.
func (r *AccommodationRepository) Update(ctx context.Context, id string, upd ports.AccommodationUpdate) (*domain.Accommodation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	setIfString(set, "title", upd.Title)
	setIfString(set, "description", upd.Description)
	setIfString(set, "type", upd.Type)
	setIfString(set, "location", upd.Location)
	setIfString(set, "address", upd.Address)
	setIfString(set, "religious_preference", upd.ReligiousPreference)
	setIfString(set, "status", upd.Status)
	setIfString(set, "contact_email", upd.ContactEmail)
	setIfString(set, "contact_phone", upd.ContactPhone)
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Bedrooms != nil {
		set["bedrooms"] = *upd.Bedrooms
	}
	if upd.Bathrooms != nil {
		set["bathrooms"] = *upd.Bathrooms
	}
	if upd.Amenities != nil {
		set["amenities"] = *upd.Amenities
	}
	if upd.Images != nil {
		set["images"] = *upd.Images
	}

	after := optionsReturnAfter()
	var a domain.Accommodation
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, after).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccommodationNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Delete removes the document if present; deleting an absent id is a no-op.
func (r *AccommodationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count returns the total number of listings.
func (r *AccommodationRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the indexes used by the list filters.
func (r *AccommodationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "religious_preference", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func setIfString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}
