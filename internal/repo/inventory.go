package repo

import (
	"StockKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// InventoryRepository — контракт доступа к сеансам инвентаризации.
type InventoryRepository interface {
	// CreateSnapshot создаёт сеанс и по одной строке на каждый товар
	// каталога с ExpectedQty из текущего остатка. Всё одной транзакцией:
	// частично заполненный сеанс снаружи не виден никогда.
	CreateSnapshot(ctx context.Context, createdBy int64) (*model.Inventory, error)

	// GetByID возвращает сеанс со строками; строки — с товарами.
	GetByID(ctx context.Context, id int64) (*model.Inventory, error)

	// List возвращает все сеансы, новые первыми, со строками и автором.
	List(ctx context.Context) ([]model.Inventory, error)

	GetLine(ctx context.Context, lineID int64) (*model.InventoryItem, error)

	// UpdateLineCount записывает фактическое количество и разницу.
	UpdateLineCount(ctx context.Context, lineID int64, actualQty, difference int64) (*model.InventoryItem, error)

	// Delete удаляет сеанс вместе со строками.
	Delete(ctx context.Context, id int64) error
}

type inventoryRepo struct {
	db *gorm.DB
}

// NewInventoryRepository создаёт реализацию репозитория для Inventory.
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) CreateSnapshot(ctx context.Context, createdBy int64) (*model.Inventory, error) {
	inv := &model.Inventory{CreatedBy: createdBy}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []model.Item
		if err := tx.Order("id").Find(&items).Error; err != nil {
			return err
		}

		if err := tx.Create(inv).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil // пустой каталог — валидный пустой сеанс
		}

		lines := make([]model.InventoryItem, 0, len(items))
		for _, it := range items {
			lines = append(lines, model.InventoryItem{
				InventoryID: inv.ID,
				ItemID:      it.ID,
				ExpectedQty: it.Quantity,
			})
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		inv.Items = lines
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id int64) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("inventory_items.id") }).
		Preload("Items.Item").
		Preload("CreatedByUser").
		First(&inv, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) List(ctx context.Context) ([]model.Inventory, error) {
	var invs []model.Inventory
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("CreatedByUser").
		Order("created_at desc, id desc").
		Find(&invs).Error
	if err != nil {
		return nil, err
	}
	return invs, nil
}

func (r *inventoryRepo) GetLine(ctx context.Context, lineID int64) (*model.InventoryItem, error) {
	var line model.InventoryItem
	if err := r.db.WithContext(ctx).First(&line, lineID).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *inventoryRepo) UpdateLineCount(ctx context.Context, lineID int64, actualQty, difference int64) (*model.InventoryItem, error) {
	var line model.InventoryItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&line, lineID).Error; err != nil {
			return err
		}
		line.ActualQty = &actualQty
		line.Difference = &difference
		return tx.Model(&line).Updates(map[string]any{
			"actual_qty": actualQty,
			"difference": difference,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// строки не имеют смысла без сеанса
		if err := tx.Where("inventory_id = ?", id).
			Delete(&model.InventoryItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Inventory{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
