package repo

import (
	"StockKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemFilter — параметры выборки каталога.
type ItemFilter struct {
	Search     string
	CategoryID *int64
}

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
// Мутации пишут запись журнала в той же транзакции: изменение без
// следа в журнале в базу не попадает.
type ItemRepository interface {
	// List возвращает товары по фильтру, новые первыми, с категорией.
	List(ctx context.Context, f ItemFilter) ([]model.Item, error)

	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// CreateWithLog создаёт товар и запись журнала одной транзакцией.
	CreateWithLog(ctx context.Context, item *model.Item, entry *model.Log) error

	// UpdateWithLog сохраняет изменённый товар и запись журнала одной транзакцией.
	UpdateWithLog(ctx context.Context, item *model.Item, entry *model.Log) error

	// DeleteWithLog удаляет товар, обнуляя ссылки на него в журнале,
	// и добавляет запись об удалении — всё в одной транзакции.
	DeleteWithLog(ctx context.Context, id int64, entry *model.Log) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) List(ctx context.Context, f ItemFilter) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Model(&model.Item{}).Preload("Category").Order("id desc")
	if f.Search != "" {
		q = q.Where("lower(name) LIKE lower(?)", "%"+f.Search+"%")
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}

	var items []model.Item
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Preload("Category").First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) CreateWithLog(ctx context.Context, item *model.Item, entry *model.Log) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		entry.ItemID = &item.ID
		return tx.Create(entry).Error
	})
}

func (r *itemRepo) UpdateWithLog(ctx context.Context, item *model.Item, entry *model.Log) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Save пишет все поля, включая сброс category_id в NULL
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		entry.ItemID = &item.ID
		return tx.Create(entry).Error
	})
}

func (r *itemRepo) DeleteWithLog(ctx context.Context, id int64, entry *model.Log) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Item{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// исторические записи журнала остаются, но ссылка становится пустой
		if err := tx.Model(&model.Log{}).Where("item_id = ?", id).
			Update("item_id", nil).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}
