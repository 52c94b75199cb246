package repo

import (
	"StockKeeper/internal/model"
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var testDBSeq atomic.Int64

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// Каждый тест получает отдельную именованную память, чтобы состояние не утекало между тестами.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Item{},
		&model.Inventory{},
		&model.InventoryItem{},
		&model.Log{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// mkUser создаёт пользователя для внешних ключей в тестах
func mkUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	u, err := NewUserRepository(db).CreateUser(context.Background(), &model.User{
		Name:     name,
		Password: "hash",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("failed to create user %q: %v", name, err)
	}
	return u
}

// mkItem создаёт товар напрямую, без записи в журнал
func mkItem(t *testing.T, db *gorm.DB, name string, qty int64, price string) *model.Item {
	t.Helper()
	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("bad price %q: %v", price, err)
	}
	it := &model.Item{Name: name, Quantity: qty, Price: p}
	if err := db.Create(it).Error; err != nil {
		t.Fatalf("failed to create item %q: %v", name, err)
	}
	return it
}
