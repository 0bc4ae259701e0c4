package apierrors

import "fmt"

// Violations acumula infracciones de validación por campo. Las reglas se
// evalúan todas antes de fallar, de modo que el cliente pueda corregir
// cada campo en un solo reintento.
type Violations struct {
	fields map[string][]string
}

func NewViolations() *Violations {
	return &Violations{fields: make(map[string][]string)}
}

func (v *Violations) Add(field, message string) {
	v.fields[field] = append(v.fields[field], message)
}

func (v *Violations) Addf(field, format string, args ...interface{}) {
	v.Add(field, fmt.Sprintf(format, args...))
}

func (v *Violations) Empty() bool { return len(v.fields) == 0 }

// Count devuelve el número total de mensajes acumulados.
func (v *Violations) Count() int {
	n := 0
	for _, msgs := range v.fields {
		n += len(msgs)
	}
	return n
}

// Err devuelve nil si no hay infracciones, o un *Error de validación con
// todos los mensajes acumulados.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return NewValidation(v.fields)
}
