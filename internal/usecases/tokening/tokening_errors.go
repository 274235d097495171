package tokening

import "errors"

var (
	// ErrCredentialUnavailable indica que a marca não tem credencial
	// configurada para a plataforma
	ErrCredentialUnavailable = errors.New("credential unavailable")

	// ErrTokenRefreshFailed indica que a renovação do token falhou e a
	// integração requer reautorização manual
	ErrTokenRefreshFailed = errors.New("token refresh failed")
)
