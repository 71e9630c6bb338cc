package book_slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда один из запрошенных слотов не существует
	ErrSlotNotFound = errors.New("book_slots: slot not found")

	// ErrSlotUnavailable возвращается, когда хотя бы один слот из пакета
	// занят или его событие не опубликовано - пакет отклоняется целиком
	ErrSlotUnavailable = errors.New("book_slots: slot is not available")

	// ErrPerformerIneligible возвращается, когда аккаунт диджея
	// забанен, деактивирован или не найден в каталоге
	ErrPerformerIneligible = errors.New("book_slots: performer is not eligible to book")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slots: internal error")
)
