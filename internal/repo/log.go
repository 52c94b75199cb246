package repo

import (
	"StockKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// LogRepository — контракт журнала действий. Только append и чтение.
type LogRepository interface {
	Append(ctx context.Context, entry *model.Log) error

	// List возвращает записи, новые первыми, с пользователем и товаром.
	List(ctx context.Context) ([]model.Log, error)
}

type logRepo struct {
	db *gorm.DB
}

// NewLogRepository создаёт реализацию репозитория журнала.
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepo{db: db}
}

func (r *logRepo) Append(ctx context.Context, entry *model.Log) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *logRepo) List(ctx context.Context) ([]model.Log, error) {
	var logs []model.Log
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Item").
		Order("timestamp desc, id desc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
