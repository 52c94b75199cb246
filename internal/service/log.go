package service

import (
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"context"
)

// LogService — чтение журнала действий. Записи журнала добавляются
// репозиториями в транзакциях мутаций, отдельного API записи здесь нет.
type LogService struct {
	repo repo.LogRepository
}

func NewLogService(r repo.LogRepository) *LogService {
	return &LogService{repo: r}
}

// List возвращает журнал, новые записи первыми.
func (s *LogService) List(ctx context.Context) ([]model.Log, error) {
	return s.repo.List(ctx)
}
