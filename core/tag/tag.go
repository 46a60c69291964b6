// Package tag fills zero-valued struct fields from `default:"..."` tags.
package tag

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var (
	ErrTargetMustBePointer = errors.New("target must be a pointer")
	ErrTargetIsNil         = errors.New("target is nil")
	ErrUnsupportedType     = errors.New("unsupported type")
	ErrMaxDepthExceeded    = errors.New("max recursion depth exceeded")
)

const maxDepth = 32

// FieldError reports which field could not take its default
type FieldError struct {
	Path  string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q (default %q): %v", e.Path, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Option configures ApplyDefaults
type Option func(*options)

type options struct {
	tagName   string
	separator string
}

// WithTagName reads defaults from a tag other than "default"
func WithTagName(name string) Option {
	return func(o *options) {
		o.tagName = name
	}
}

// WithSeparator splits slice defaults on sep instead of ","
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// ApplyDefaults sets every zero field of the struct pointed to by target from
// its default tag. Nested structs and pointers to structs are walked.
//
//	type Config struct {
//	    APIURL  string        `default:"https://api.unsplash.com"`
//	    Timeout time.Duration `default:"30s"`
//	}
func ApplyDefaults(target any, opts ...Option) error {
	o := &options{tagName: "default", separator: ","}
	for _, opt := range opts {
		opt(o)
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer {
		return ErrTargetMustBePointer
	}
	if v.IsNil() {
		return ErrTargetIsNil
	}
	if v.Elem().Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	return o.applyStruct(v.Elem(), "", 0)
}

func (o *options) applyStruct(v reflect.Value, path string, depth int) error {
	if depth >= maxDepth {
		return ErrMaxDepthExceeded
	}

	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		fv := v.Field(i)
		if !fv.CanSet() {
			continue
		}

		fieldPath := field.Name
		if path != "" {
			fieldPath = path + "." + field.Name
		}

		if err := o.applyField(fv, field.Tag.Get(o.tagName), fieldPath, depth); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) applyField(v reflect.Value, def, path string, depth int) error {
	switch v.Kind() {
	case reflect.Struct:
		if _, ok := v.Addr().Interface().(encoding.TextUnmarshaler); !ok {
			return o.applyStruct(v, path, depth+1)
		}
	case reflect.Pointer:
		if v.Type().Elem().Kind() == reflect.Struct {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			return o.applyStruct(v.Elem(), path, depth+1)
		}
	}

	if def == "" || !v.IsZero() {
		return nil
	}

	if err := o.parse(v, def); err != nil {
		return &FieldError{Path: path, Value: def, Err: err}
	}
	return nil
}

func (o *options) parse(v reflect.Value, s string) error {
	if u, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(s))
	}

	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := cast.ToDurationE(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := cast.ToBoolE(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := cast.ToInt64E(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := cast.ToUint64E(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		parts := strings.Split(s, o.separator)
		slice := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, part := range parts {
			if err := o.parse(slice.Index(i), strings.TrimSpace(part)); err != nil {
				return err
			}
		}
		v.Set(slice)
	case reflect.Pointer:
		elem := reflect.New(v.Type().Elem())
		if err := o.parse(elem.Elem(), s); err != nil {
			return err
		}
		v.Set(elem)
	default:
		return ErrUnsupportedType
	}
	return nil
}
