package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

const collectionUsers = "users"

// ProfileRepository stores profile documents keyed by credential id.
type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionUsers)}
}

type mongoProfile struct {
	ID       string `bson:"_id"`
	Name     string `bson:"name"`
	Phone    string `bson:"phone,omitempty"`
	Email    string `bson:"email,omitempty"`
	Address  string `bson:"address,omitempty"`
	Verified bool   `bson:"verified"`
	UserType string `bson:"userType,omitempty"`

	DOB      string `bson:"dob,omitempty"`
	Pincode  string `bson:"pincode,omitempty"`
	State    string `bson:"state,omitempty"`
	District string `bson:"district,omitempty"`

	GovID        string `bson:"govId,omitempty"`
	Department   string `bson:"department,omitempty"`
	Jurisdiction string `bson:"jurisdiction,omitempty"`
}

// Put replaces the whole document, creating it when absent.
func (r *ProfileRepository) Put(ctx context.Context, p domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProfile{
		ID:           p.ID,
		Name:         p.Name,
		Phone:        p.Phone,
		Email:        p.Email,
		Address:      p.Address,
		Verified:     p.Verified,
		UserType:     p.Role.String(),
		DOB:          p.DOB,
		Pincode:      p.Pincode,
		State:        p.State,
		District:     p.District,
		GovID:        p.GovID,
		Department:   p.Department,
		Jurisdiction: p.Jurisdiction,
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// Get loads a profile. An absent or unknown userType decodes as RoleNone and
// is defaulted by the caller.
func (r *ProfileRepository) Get(ctx context.Context, id string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	role, _ := domain.ParseRole(mp.UserType)
	return &domain.Profile{
		ID:           mp.ID,
		Name:         mp.Name,
		Phone:        mp.Phone,
		Email:        mp.Email,
		Address:      mp.Address,
		Verified:     mp.Verified,
		Role:         role,
		DOB:          mp.DOB,
		Pincode:      mp.Pincode,
		State:        mp.State,
		District:     mp.District,
		GovID:        mp.GovID,
		Department:   mp.Department,
		Jurisdiction: mp.Jurisdiction,
	}, nil
}
