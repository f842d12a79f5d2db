package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// OwnerRepository defines persistence operations for the owner account.
type OwnerRepository interface {
	Create(ctx context.Context, owner *model.Owner) error
	Update(ctx context.Context, owner *model.Owner) error
	FindByID(ctx context.Context, id uint) (*model.Owner, error)
	FindByEmail(ctx context.Context, email string) (*model.Owner, error)
}

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository builds a GORM-backed repository.
func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Create(ctx context.Context, owner *model.Owner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *ownerRepository) Update(ctx context.Context, owner *model.Owner) error {
	return r.db.WithContext(ctx).Save(owner).Error
}

func (r *ownerRepository) FindByID(ctx context.Context, id uint) (*model.Owner, error) {
	var owner model.Owner
	if err := r.db.WithContext(ctx).First(&owner, id).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindByEmail(ctx context.Context, email string) (*model.Owner, error) {
	var owner model.Owner
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}
