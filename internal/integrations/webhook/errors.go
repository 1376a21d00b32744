package webhook

import "errors"

var (
	// ErrDeliveryFailed возвращается, когда вебхук не принял уведомление.
	// Вызывающая сторона не должна транслировать эту ошибку пользователю.
	ErrDeliveryFailed = errors.New("webhook: delivery failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("webhook: internal error")
)
