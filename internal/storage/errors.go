package storage

import "errors"

// Сигнальные ошибки слоя хранения. Хендлеры разбирают их через errors.Is
// и превращают в HTTP-статусы; все остальные ошибки считаются внутренними.
var (
	ErrDuplicateUser      = errors.New("пользователь с таким логином уже существует")
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
	ErrNotEnrolled        = errors.New("нет доступа к курсу")
	ErrNotFound           = errors.New("запись не найдена")
)
