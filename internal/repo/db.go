package repo

import (
	"StockKeeper/internal/model"
	"database/sql/driver"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"modernc.org/sqlite"
)

// Встроенный lower() SQLite складывает регистр только для ASCII,
// кириллица остаётся как есть. Подменяем его юникодным, чтобы
// регистронезависимый поиск работал одинаково с Postgres.
func init() {
	sqlite.MustRegisterDeterministicScalarFunction("lower", 1,
		func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			if s, ok := args[0].(string); ok {
				return strings.ToLower(s), nil
			}
			return args[0], nil
		})
}

// InitDB открывает соединение с БД и прогоняет миграции.
// Строка с host= или схемой postgres:// трактуется как Postgres,
// иначе — путь к файлу SQLite (dev-режим без внешней БД).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Item{},
		&model.Inventory{},
		&model.InventoryItem{},
		&model.Log{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
