package domain

import "errors"

// Категории ошибок. Конкретные ошибки пакетов оборачивают одну из них,
// чтобы транспортный слой мог выбрать HTTP статус через errors.Is.
var (
	// ErrValidation некорректный запрос (формат, горизонт, прошедшее время, часы работы, блокировка)
	ErrValidation = errors.New("validation error")

	// ErrConflict слот уже занят активным бронированием
	ErrConflict = errors.New("conflict")

	// ErrNotFound запрошенная сущность отсутствует
	ErrNotFound = errors.New("not found")

	// ErrConfiguration для дня недели не заданы часы работы
	ErrConfiguration = errors.New("configuration error")
)
