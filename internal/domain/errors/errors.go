// Package errors defines the application errors surfaced to API clients.
// Each carries the HTTP status, a stable code for clients and a Portuguese
// message for end users.
package errors

import (
	"net/http"
	"strings"

	"seedshare/internal/errors"
)

// AppError is an error the HTTP layer can render without guessing.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is internal context; the envelope hides it on 5xx, 401 and 403.
	Details() string
}

// BaseError is a catalog entry. Copies made by WithDetails still match the
// original under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	return e.message
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WrapMessage wraps the entry with context for logs.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

// Is compares business codes.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// Accounts and authentication.
var (
	ErrUserNotFound       = newError(http.StatusNotFound, "USER_NOT_FOUND", "Usuário não encontrado.")
	ErrUserCreationFailed = newError(http.StatusInternalServerError, "USER_CREATION_FAILED", "Falha ao criar o usuário.")
	ErrUserUpdateFailed   = newError(http.StatusInternalServerError, "USER_UPDATE_FAILED", "Falha ao atualizar o usuário.")
	ErrInvalidCredentials = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email ou senha incorretos.")
	ErrPasswordHashFailed = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Erro ao processar a senha.")
	ErrUnauthorized       = newError(http.StatusUnauthorized, "UNAUTHORIZED", "Token de acesso ausente ou inválido.")
)

// Offers.
var (
	ErrOfferNotFound    = newError(http.StatusNotFound, "OFFER_NOT_FOUND", "Oferta não encontrada.")
	ErrOfferUnavailable = newError(http.StatusConflict, "OFFER_UNAVAILABLE", "A oferta não está disponível para a quantidade solicitada.")
	ErrOwnOfferRequest  = newError(http.StatusBadRequest, "OWN_OFFER_REQUEST", "Não é possível solicitar a própria oferta.")
)

// Catalog.
var (
	ErrSpeciesNotFound     = newError(http.StatusNotFound, "SPECIES_NOT_FOUND", "Espécie não encontrada.")
	ErrAddressNotFound     = newError(http.StatusNotFound, "ADDRESS_NOT_FOUND", "Endereço não encontrado.")
	ErrFlowerShopNotFound  = newError(http.StatusNotFound, "FLOWER_SHOP_NOT_FOUND", "Floricultura não encontrada.")
	ErrLegalPersonRequired = newError(http.StatusForbidden, "LEGAL_PERSON_REQUIRED", "Apenas pessoas jurídicas podem cadastrar floriculturas.")
)

// Generic.
var (
	ErrForbidden = newError(http.StatusForbidden, "FORBIDDEN", "Acesso negado.")
	ErrNotFound  = newError(http.StatusNotFound, "NOT_FOUND", "Recurso não encontrado.")
)

// FieldErrors is implemented by errors that carry one message per failed rule.
type FieldErrors interface {
	Messages() []string
}

// messageList holds rule messages in evaluation order and never shares its
// backing array with callers.
type messageList []string

func newMessageList(messages []string) messageList {
	return append(messageList(nil), messages...)
}

func (l messageList) Messages() []string {
	return append([]string(nil), l...)
}

func (l messageList) Details() string {
	return strings.Join(l, " ")
}

// ValidationError reports the ordered rule failures of an entity.
type ValidationError struct {
	messageList
}

// NewValidationError creates a validation error from entity messages.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{newMessageList(messages)}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.messageList, "; ")
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

func (e *ValidationError) Message() string {
	return "Dados de entrada inválidos."
}

// ConflictError reports unique account keys already held by another account.
type ConflictError struct {
	messageList
}

// NewConflictError creates a conflict error from uniqueness messages.
func NewConflictError(messages []string) *ConflictError {
	return &ConflictError{newMessageList(messages)}
}

func (e *ConflictError) Error() string {
	return "account conflict: " + strings.Join(e.messageList, "; ")
}

func (e *ConflictError) HTTPCode() int {
	return http.StatusConflict
}

func (e *ConflictError) ErrorCode() string {
	return "ACCOUNT_CONFLICT"
}

func (e *ConflictError) Message() string {
	return "Conta já cadastrada."
}

// DatabaseExecuteError is a failed statement. The driver error stays
// reachable through Unwrap but never reaches clients.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Falha ao executar operação no banco de dados."
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
