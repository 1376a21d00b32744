package profile

import "errors"

var (
	// ErrNotFound возвращается, когда ключ отсутствует в хранилище
	ErrNotFound = errors.New("profile: key not found")

	// ErrInternal возвращается при ошибках доступа к хранилищу
	ErrInternal = errors.New("profile: internal error")
)
