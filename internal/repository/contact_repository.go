package repository

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

// ContactFilter narrows the inbox listing.
type ContactFilter struct {
	Page   int
	Limit  int
	IsRead *bool
}

// ContactRepository defines contact message persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, message *model.ContactMessage) error
	Update(ctx context.Context, message *model.ContactMessage) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.ContactMessage, error)
	List(ctx context.Context, filter ContactFilter) ([]model.ContactMessage, int64, error)
	Stats(ctx context.Context) (*model.ContactStats, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactRepository) Update(ctx context.Context, message *model.ContactMessage) error {
	return r.db.WithContext(ctx).Save(message).Error
}

func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ContactMessage{}, id).Error
}

func (r *contactRepository) FindByID(ctx context.Context, id uint) (*model.ContactMessage, error) {
	var message model.ContactMessage
	if err := r.db.WithContext(ctx).First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *contactRepository) filtered(ctx context.Context, filter ContactFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.ContactMessage{})
	if filter.IsRead != nil {
		q = q.Where("is_read = ?", *filter.IsRead)
	}
	return q
}

// List returns one page of messages, newest first, plus the total count.
func (r *contactRepository) List(ctx context.Context, filter ContactFilter) ([]model.ContactMessage, int64, error) {
	var (
		messages []model.ContactMessage
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, filter).
			Order("created_at DESC").
			Limit(filter.Limit).
			Offset((filter.Page - 1) * filter.Limit).
			Find(&messages).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, filter).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *contactRepository) Stats(ctx context.Context) (*model.ContactStats, error) {
	stats := &model.ContactStats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&model.ContactMessage{}).Count(&stats.Total).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&model.ContactMessage{}).
			Where("is_read = ?", false).Count(&stats.Unread).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats.Read = stats.Total - stats.Unread
	return stats, nil
}
