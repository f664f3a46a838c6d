package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrUnauthenticated  = errors.New("credencial ausente, inválida o expirada")
	ErrUnauthorized     = errors.New("acción no permitida para este usuario")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnsupportedType  = errors.New("tipo de archivo no soportado")
	ErrTooLarge         = errors.New("el archivo excede el tamaño máximo")
	ErrInvalidResetLink = errors.New("token de recuperación inválido o expirado")
	ErrWrongPassword    = errors.New("la contraseña actual es incorrecta")
)

// ValidationError indica campos faltantes o mal formados. Fields lista todos los campos con problema.
type ValidationError struct {
	Fields []string
	Reason string
}

// NewMissingFields construye el error de campos requeridos ausentes.
func NewMissingFields(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Reason: "campos requeridos faltantes"}
}

// NewInvalidField construye el error de un campo con formato inválido.
func NewInvalidField(field, reason string) *ValidationError {
	return &ValidationError{Fields: []string{field}, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// PersistenceError envuelve un fallo del almacén relacional sin ocultar la causa.
type PersistenceError struct {
	Op  string
	Err error
}

// Persistence envuelve err como PersistenceError. Errores de dominio pasan sin envolver.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
