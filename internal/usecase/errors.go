package usecase

import "errors"

var (
	// ErrSessionRequired — прогон без идентификатора сессии.
	ErrSessionRequired = errors.New("session id is required")
	// ErrRunSuperseded — прогон вытеснен более новым прогоном той же сессии.
	ErrRunSuperseded = errors.New("run superseded by a newer upload")
	// ErrInvalidCartSummary — событие контекста корзины не прошло проверку (повторять бессмысленно).
	ErrInvalidCartSummary = errors.New("invalid cart summary")
)
