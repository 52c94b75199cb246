package model

import "time"

// Типы действий журнала.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Log — запись журнала действий. Только добавляется,
// никогда не обновляется и не удаляется приложением.
type Log struct {
	ID int64 `gorm:"primaryKey" json:"id"`

	UserID int64 `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`

	// Ссылка на товар обнуляется при его удалении — сама запись остаётся
	ItemID *int64 `gorm:"index" json:"item_id"`
	Item   *Item  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"item,omitempty"`

	Action      string `gorm:"not null" json:"action"`
	Description string `json:"description"`

	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}
