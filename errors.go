package main

import "errors"

// Error kinds surfaced to the front ends. Callers match with errors.Is;
// storage I/O errors are wrapped and propagate as-is.
var (
	ErrValidation     = errors.New("entrada inválida")
	ErrAuth           = errors.New("usuário ou senha incorretos")
	ErrNotFound       = errors.New("não encontrado")
	ErrConflict       = errors.New("registro já existe para esta data")
	ErrDuplicatePunch = errors.New("batida muito próxima da anterior")
	ErrAlreadyClosed  = errors.New("duas batidas já feitas")
)
