// Package numeric validates the scalar inputs stored by shapes and solids.
package numeric

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Validate checks that v is a real number and returns it as a float64.
//
// Every Go integer, unsigned integer and float kind is accepted, named types
// included. Booleans are rejected even though they could be read as 0 and 1.
// NaN and infinities are rejected because they are not real numbers.
func Validate(v interface{}) (float64, error) {
	return Field("", v)
}

// Field is Validate with the offending field name recorded on the error.
func Field(name string, v interface{}) (float64, error) {
	rv := reflect.ValueOf(v)
	var f float64
	switch rv.Kind() {
	case reflect.Bool:
		return 0, typeErrorf(name, v, "can't be bool")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	default:
		return 0, typeErrorf(name, v, "must be a number")
	}
	if math.IsNaN(f) {
		return 0, typeErrorf(name, v, "must be a number, got NaN")
	}
	if math.IsInf(f, 0) {
		return 0, typeErrorf(name, v, "must be finite")
	}
	return f, nil
}

// NonNegative validates v and rejects values below zero. Zero is allowed.
func NonNegative(name string, v interface{}) (float64, error) {
	f, err := Field(name, v)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, valueErrorf(name, v, "cannot be negative")
	}
	return f, nil
}

// Positive validates v and rejects zero and negative values.
func Positive(name string, v interface{}) (float64, error) {
	f, err := Field(name, v)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, valueErrorf(name, v, "must be larger than zero")
	}
	return f, nil
}

// Parse reads a number from user supplied text.
func Parse(name, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "true") || strings.EqualFold(s, "false") {
		return 0, typeErrorf(name, s, "can't be bool")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, typeErrorf(name, s, fmt.Sprintf("must be a number, got %q", s))
	}
	return Field(name, f)
}
