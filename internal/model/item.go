package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item — товар каталога.
type Item struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	// Текущий остаток; отрицательным не бывает
	Quantity int64           `gorm:"not null;default:0" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`

	// Опциональная ссылка на категорию; при удалении категории обнуляется
	CategoryID *int64    `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Category — группа товаров. Имя уникально.
type Category struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
