package model

import "time"

// User — учётная запись сотрудника склада.
type User struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Post string `json:"post"` // должность

	// bcrypt-хеш, наружу не отдаём
	Password string `gorm:"not null" json:"-"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`
	IsAdmin  bool `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
