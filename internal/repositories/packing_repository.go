package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trekzaa/internal/infra"
	"trekzaa/internal/models/db_models"
)

type PackingRepository interface {
	// CreateListWithItems inserts the list and all items in one
	// transaction so a failed item insert leaves no orphaned list.
	CreateListWithItems(ctx context.Context, list *db_models.PackingList, items []db_models.PackingItem) (*db_models.PackingList, error)
	ListByUserAndTrip(ctx context.Context, userID, tripID uuid.UUID) ([]*db_models.PackingList, error)
	FindListByID(ctx context.Context, id uuid.UUID) (*db_models.PackingList, error)
	SetItemPacked(ctx context.Context, itemID uuid.UUID, packed bool) (*db_models.PackingItem, error)
}

type packingRepository struct {
	db *gorm.DB
}

func NewPackingRepository(db *gorm.DB) PackingRepository {
	return &packingRepository{db: db}
}

func (r *packingRepository) CreateListWithItems(ctx context.Context, list *db_models.PackingList, items []db_models.PackingItem) (*db_models.PackingList, error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return nil, tx.Error
	}

	err := tx.Create(list).Error
	if err == nil {
		for i := range items {
			items[i].ListID = list.ID
		}
		if len(items) > 0 {
			err = tx.Create(&items).Error
		}
	}
	if err = infra.ReleaseTransaction(tx, err); err != nil {
		return nil, err
	}

	list.Items = items
	return list, nil
}

func (r *packingRepository) ListByUserAndTrip(ctx context.Context, userID, tripID uuid.UUID) ([]*db_models.PackingList, error) {
	var lists []*db_models.PackingList
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND trip_id = ?", userID, tripID).
		Find(&lists).Error
	return lists, err
}

func (r *packingRepository) FindListByID(ctx context.Context, id uuid.UUID) (*db_models.PackingList, error) {
	var list db_models.PackingList
	err := r.db.WithContext(ctx).Preload("Items").First(&list, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *packingRepository) SetItemPacked(ctx context.Context, itemID uuid.UUID, packed bool) (*db_models.PackingItem, error) {
	var item db_models.PackingItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&item).Update("is_packed", packed).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
