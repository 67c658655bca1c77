package vector

import "errors"

var (
	ErrNotFound       = errors.New("author not found")
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDimensionMismatch indica embedding com tamanho diferente do
	// configurado no banco. Isso é erro de configuração do deploy, não do
	// registro individual: não adianta tentar de novo.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
