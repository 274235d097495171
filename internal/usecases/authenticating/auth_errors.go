package authenticating

import "errors"

// Erros específicos para o contexto de autenticação
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
