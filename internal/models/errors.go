package models

import "errors"

// Ошибки валидации и поиска, по которым HTTP-слой выбирает статус ответа
var (
	ErrEmptyUserID       = errors.New("user_id is required")
	ErrInvalidCoordinate = errors.New("invalid coordinates")
	ErrInvalidRadius     = errors.New("invalid radius")
	ErrUserNotFound      = errors.New("user not found")
)
