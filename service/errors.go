package service

import "errors"

var (
	// ErrInvalidInput wraps every validation failure of a projection input.
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrStageSumMismatch is the configuration error raised when stage
	// durations do not add up to the declared horizon.
	ErrStageSumMismatch = errors.New("la suma de las etapas no coincide con los años de inversión")

	ErrProjectionNotFound = errors.New("proyección no encontrada")
)
