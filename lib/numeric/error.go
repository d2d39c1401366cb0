package numeric

import "errors"

type Kind int

const (
	// TypeKind means the input is not a real number, or is a boolean.
	TypeKind Kind = iota + 1
	// ValueKind means the input is a number outside the field's domain.
	ValueKind
)

func (k Kind) String() string {
	switch k {
	case TypeKind:
		return "TypeKind"
	case ValueKind:
		return "ValueKind"
	}
	return "UnknownKind"
}

var (
	ErrType  = errors.New("numeric: type error")
	ErrValue = errors.New("numeric: value error")
)

type Error struct {
	Kind    Kind        `json:"kind"`
	Field   string      `json:"field,omitempty"`
	Value   interface{} `json:"-"`
	Message string      `json:"errmsg"`
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// Is lets errors.Is match an *Error against ErrType or ErrValue.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrType:
		return e.Kind == TypeKind
	case ErrValue:
		return e.Kind == ValueKind
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var nerr *Error
	if errors.As(err, &nerr) {
		return nerr.Kind
	}
	return 0
}

func typeErrorf(field string, v interface{}, msg string) error {
	return &Error{Kind: TypeKind, Field: field, Value: v, Message: msg}
}

func valueErrorf(field string, v interface{}, msg string) error {
	return &Error{Kind: ValueKind, Field: field, Value: v, Message: msg}
}

// TypeErrorf reports a value that is not of a supported type. Used by callers
// that check types outside of Field, such as comparisons against nil shapes.
func TypeErrorf(field string, v interface{}, msg string) error {
	return typeErrorf(field, v, msg)
}

// ValueErrorf reports a number that falls outside a field's domain.
func ValueErrorf(field string, v interface{}, msg string) error {
	return valueErrorf(field, v, msg)
}
