package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
)

// Seed bootstraps the store on first use: one sample listing and one admin
// account. Each collection is seeded only when entirely empty, so the call is
// idempotent and never overwrites existing data.
func Seed(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := seedAccommodations(ctx, db, log); err != nil {
		return fmt.Errorf("seed accommodations: %w", err)
	}
	if err := seedUsers(ctx, db, log); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	return nil
}

func seedAccommodations(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	col := db.Collection(collectionAccommodations)

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := time.Now().UTC()
	sample := &domain.Accommodation{
		ID:                  uuid.NewString(),
		Title:               "Modern Muslim-Friendly Apartment",
		Description:         "Beautiful 2-bedroom apartment in a quiet neighborhood, perfect for Muslim families.",
		Type:                domain.TypeApartment,
		Location:            "Downtown",
		Address:             "123 Main Street",
		Price:               1200,
		ReligiousPreference: domain.PreferenceMuslim,
		Status:              domain.AccommodationAvailable,
		Bedrooms:            2,
		Bathrooms:           1,
		Amenities:           []string{"Prayer Room", "Halal Kitchen", "Parking"},
		Images:              []string{},
		ContactEmail:        "admin@accommodation.com",
		ContactPhone:        "+1234567890",
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if _, err := col.InsertOne(ctx, sample); err != nil {
		return err
	}
	log.Info().Str("accommodation_id", sample.ID).Msg("seeded sample accommodation")
	return nil
}

func seedUsers(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	col := db.Collection(collectionUsers)

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.NewString(),
		Email:        "admin@accommodation.com",
		Name:         "Admin User",
		Phone:        "+1234567890",
		Role:         domain.RoleAdmin,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := col.InsertOne(ctx, admin); err != nil {
		return err
	}
	log.Info().Str("user_id", admin.ID).Str("email", admin.Email).Msg("seeded admin account")
	return nil
}
