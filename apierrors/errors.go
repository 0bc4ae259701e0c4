package apierrors

import (
	"fmt"
	"sort"
	"strings"
)

// Kind clasifica los errores que validators y services pueden devolver.
// La capa HTTP solo conoce estos cuatro tipos; cualquier otro error se
// trata como fallo interno.
type Kind string

const (
	KindBadRequest Kind = "bad_request"
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
)

type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	// Fields solo se llena para KindValidation: campo -> mensajes.
	Fields map[string][]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	if e.Kind != KindValidation || len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return e.Message + " [" + strings.Join(parts, " | ") + "]"
}

func NewBadRequest(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(entity string, id interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s con id %v no existe", entity, id)}
}

func NewConflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NewValidation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "datos inválidos", Fields: fields}
}

// IsKind reporta si err es un *Error del tipo dado.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == kind
}

func IsNotFound(err error) bool   { return IsKind(err, KindNotFound) }
func IsValidation(err error) bool { return IsKind(err, KindValidation) }
func IsConflict(err error) bool   { return IsKind(err, KindConflict) }
func IsBadRequest(err error) bool { return IsKind(err, KindBadRequest) }
