package service

import (
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"context"

	"go.uber.org/zap"
)

// InventoryService — сеансы инвентаризации: старт снимка,
// внесение фактических количеств, просмотр.
type InventoryService struct {
	repo   repo.InventoryRepository
	logger *zap.SugaredLogger
}

func NewInventoryService(r repo.InventoryRepository, logger *zap.SugaredLogger) *InventoryService {
	return &InventoryService{repo: r, logger: logger}
}

// StartSession снимает текущие остатки каталога в новый сеанс.
// Снимок атомарен: либо сеанс со всеми строками, либо ничего.
func (s *InventoryService) StartSession(ctx context.Context, userID int64) (*model.Inventory, error) {
	inv, err := s.repo.CreateSnapshot(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	s.logger.Infow("inventory: session started",
		"session_id", inv.ID,
		"user_id", userID,
		"lines", len(inv.Items),
	)
	return inv, nil
}

// RecordCount вносит фактическое количество по строке и пересчитывает
// разницу = факт − ожидание. Повторный ввод просто перезаписывает
// предыдущее значение.
func (s *InventoryService) RecordCount(ctx context.Context, lineID, actualQty int64) (*model.InventoryItem, error) {
	line, err := s.repo.GetLine(ctx, lineID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	difference := actualQty - line.ExpectedQty
	updated, err := s.repo.UpdateLineCount(ctx, lineID, actualQty, difference)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return updated, nil
}

// GetSession возвращает сеанс со строками и товарами.
func (s *InventoryService) GetSession(ctx context.Context, id int64) (*model.Inventory, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return inv, nil
}

// ListSessions возвращает сеансы, новые первыми.
func (s *InventoryService) ListSessions(ctx context.Context) ([]model.Inventory, error) {
	return s.repo.List(ctx)
}
