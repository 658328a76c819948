package services

import (
	"errors"
	"fmt"

	"github.com/sjperalta/frequencia-api/internal/repository"
)

// Error categories. Handlers map each one to an HTTP status.
var (
	ErrInvalidInput         = errors.New("Dados inválidos.")
	ErrAuthenticationFailed = errors.New("Matrícula ou senha inválidas.")
	ErrDailyLimitExceeded   = errors.New("Limite de registros por dia atingido.")
	ErrAuthorizationDenied  = errors.New("Você não tem permissão para realizar esta operação.")
	ErrConflict             = errors.New("Um registro com esses dados já existe.")
	ErrNotFound             = errors.New("Registro não encontrado.")
	ErrInternal             = errors.New("Ocorreu um erro ao processar sua solicitação.")
)

// Error carries a user-facing message on top of one of the categories above
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func invalidInput(format string, args ...any) error {
	return newError(ErrInvalidInput, format, args...)
}

// Message returns the text safe to show to an end user
func Message(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	for _, kind := range []error{
		ErrInvalidInput, ErrAuthenticationFailed, ErrDailyLimitExceeded,
		ErrAuthorizationDenied, ErrConflict, ErrNotFound,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ErrInternal.Error()
}

const msgReferenced = "Este registro está vinculado a outros dados e não pode ser modificado."

// fromRepo maps repository errors to service categories; anything else is
// wrapped as internal so driver details never reach the client.
func fromRepo(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	case errors.Is(err, repository.ErrReferenced):
		return newError(ErrConflict, msgReferenced)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
