package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crediya/auth-service/internal/core/domain"
)

const roleCollection = "roles"

// RoleRepository reads role reference data from MongoDB. Roles are created
// out of band; this adapter only resolves them.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(roleCollection)}
}

type mongoRole struct {
	RoleID      int64  `bson:"role_id"`
	Name        string `bson:"name"`
	Description string `bson:"description,omitempty"`
}

func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	var mr mongoRole
	if err := r.coll.FindOne(ctx, bson.M{"role_id": id}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{ID: mr.RoleID, Name: mr.Name, Description: mr.Description}, nil
}
