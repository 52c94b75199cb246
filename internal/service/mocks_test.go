package service

import (
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// моки репозиториев для тестов сервисов

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	args := m.Called(ctx, name)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) List(ctx context.Context, f repo.ItemFilter) ([]model.Item, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) CreateWithLog(ctx context.Context, item *model.Item, entry *model.Log) error {
	return m.Called(ctx, item, entry).Error(0)
}

func (m *mockItemRepo) UpdateWithLog(ctx context.Context, item *model.Item, entry *model.Log) error {
	return m.Called(ctx, item, entry).Error(0)
}

func (m *mockItemRepo) DeleteWithLog(ctx context.Context, id int64, entry *model.Log) error {
	return m.Called(ctx, id, entry).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) GetByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

type mockInventoryRepo struct{ mock.Mock }

func (m *mockInventoryRepo) CreateSnapshot(ctx context.Context, createdBy int64) (*model.Inventory, error) {
	args := m.Called(ctx, createdBy)
	if v, ok := args.Get(0).(*model.Inventory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) GetByID(ctx context.Context, id int64) (*model.Inventory, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Inventory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) List(ctx context.Context) ([]model.Inventory, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Inventory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) GetLine(ctx context.Context, lineID int64) (*model.InventoryItem, error) {
	args := m.Called(ctx, lineID)
	if v, ok := args.Get(0).(*model.InventoryItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) UpdateLineCount(ctx context.Context, lineID int64, actualQty, difference int64) (*model.InventoryItem, error) {
	args := m.Called(ctx, lineID, actualQty, difference)
	if v, ok := args.Get(0).(*model.InventoryItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.InventoryRepository = (*mockInventoryRepo)(nil)

type mockLogRepo struct{ mock.Mock }

func (m *mockLogRepo) Append(ctx context.Context, entry *model.Log) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockLogRepo) List(ctx context.Context) ([]model.Log, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Log); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.LogRepository = (*mockLogRepo)(nil)
