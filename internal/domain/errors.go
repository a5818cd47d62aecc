package domain

import "errors"

// ErrInvalidPayload indica uma resposta do backend fora do esquema esperado
var ErrInvalidPayload = errors.New("invalid backend payload")
