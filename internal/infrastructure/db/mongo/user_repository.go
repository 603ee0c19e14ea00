package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crediya/auth-service/internal/core/domain"
)

const userCollection = "users"

// UserRepository persists identity records in MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	NumberDocument string             `bson:"number_document"`
	Name           string             `bson:"name"`
	LastName       string             `bson:"last_name"`
	BirthDate      time.Time          `bson:"birth_date,omitempty"`
	Address        string             `bson:"address,omitempty"`
	Email          string             `bson:"email"`
	Phone          string             `bson:"phone,omitempty"`
	BaseSalary     float64            `bson:"base_salary"`
	PasswordHash   string             `bson:"password_hash"`
	RoleID         int64              `bson:"role_id,omitempty"`
}

// EnsureIndexes creates the unique indexes backing email and document
// uniqueness. Racing inserts that slip past ExistsByEmail land here as a
// duplicate-key error.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "number_document", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByDocument(ctx context.Context, numberDocument string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"number_document": numberDocument})
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		ID:             primitive.NewObjectID(),
		NumberDocument: user.NumberDocument,
		Name:           user.Name,
		LastName:       user.LastName,
		BirthDate:      user.BirthDate,
		Address:        user.Address,
		Email:          user.Email,
		Phone:          user.Phone,
		BaseSalary:     user.BaseSalary,
		PasswordHash:   user.PasswordHash,
		RoleID:         user.RoleID(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	saved := doc.toDomain()
	saved.Role = user.Role
	return saved, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// toDomain maps the stored document back to the domain model. Only the role
// identifier is known at this layer; callers resolve the full record through
// the role repository when they need it.
func (mu mongoUser) toDomain() *domain.User {
	u := &domain.User{
		ID:             mu.ID.Hex(),
		NumberDocument: mu.NumberDocument,
		Name:           mu.Name,
		LastName:       mu.LastName,
		BirthDate:      mu.BirthDate,
		Address:        mu.Address,
		Email:          mu.Email,
		Phone:          mu.Phone,
		BaseSalary:     mu.BaseSalary,
		PasswordHash:   mu.PasswordHash,
	}
	if mu.RoleID != 0 {
		u.Role = &domain.Role{ID: mu.RoleID}
	}
	return u
}
