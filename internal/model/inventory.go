package model

import "time"

// Inventory — сеанс инвентаризации: снимок ожидаемых остатков
// на момент старта. После создания сам сеанс не меняется,
// редактируются только фактические количества в строках.
type Inventory struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	CreatedBy     int64 `gorm:"not null;index" json:"created_by"`
	CreatedByUser *User `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"created_by_user,omitempty"`

	// Строки живут и умирают вместе с сеансом
	Items []InventoryItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// InventoryItem — строка сеанса: один товар и его ожидаемое/фактическое количество.
type InventoryItem struct {
	ID          int64 `gorm:"primaryKey" json:"id"`
	InventoryID int64 `gorm:"not null;index" json:"inventory_id"`

	ItemID int64 `gorm:"not null;index" json:"item_id"`
	Item   *Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"item,omitempty"`

	// ExpectedQty фиксируется при старте и больше не меняется
	ExpectedQty int64 `gorm:"not null" json:"expected_qty"`

	// ActualQty и Difference пустые, пока пересчёт не внесён.
	// Difference всегда равен ActualQty - ExpectedQty и отдельно не редактируется.
	ActualQty  *int64 `json:"actual_qty"`
	Difference *int64 `json:"difference"`
}
