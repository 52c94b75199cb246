package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Ошибки бизнес-логики. Хендлеры переводят их в HTTP-статусы,
// наружу они не ретраятся и не глотаются.
var (
	// ErrNotFound — запрошенной сущности нет.
	ErrNotFound = errors.New("not found")

	// ErrNameTaken — имя уже занято (пользователь или категория).
	ErrNameTaken = errors.New("name already taken")

	// ErrForbidden — операция требует прав администратора.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials — неверная пара имя/пароль либо отключённый пользователь.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// translateNotFound переводит gorm.ErrRecordNotFound в ошибку сервиса,
// чтобы слой хранения не протекал выше.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// isDuplicateKey распознаёт нарушение уникального индекса.
// Проверка имени перед вставкой не закрывает гонку двух одновременных
// создателей, уникальность в итоге гарантирует индекс; его ошибку надо
// уметь узнать у обоих драйверов: SQLite отдаёт текст
// "UNIQUE constraint failed", Postgres — SQLSTATE 23505.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
