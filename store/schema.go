package store

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// TypeSchema returns the JSON schema describing the type of the value stored under key.
func (s *OrderedStore) TypeSchema(key string) (*jsonschema.Schema, error) {
	v, ok := s.data.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	if v == nil {
		return nil, ErrNilValue
	}
	return TypeToSchema(reflect.TypeOf(v))
}

// TypeToSchema converts a reflect.Type to a JSON schema.
// Nested structs are inlined rather than referenced through $defs, so
// self-referencing types are rejected with ErrRecursiveType.
func TypeToSchema(t reflect.Type) (schema *jsonschema.Schema, err error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if err := checkSchemaType(t, map[reflect.Type]bool{}); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			schema = nil
			err = fmt.Errorf("%w: %v: %v", ErrUnsupportedType, t, r)
		}
	}()

	reflector := jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	return reflector.ReflectFromType(t), nil
}

// checkSchemaType walks t the way the reflector does. onPath holds the
// types currently being expanded.
func checkSchemaType(t reflect.Type, onPath map[reflect.Type]bool) error {
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return fmt.Errorf("%w: %v", ErrUnsupportedType, t)
	case reflect.Ptr, reflect.Slice, reflect.Array:
		return checkSchemaType(t.Elem(), onPath)
	case reflect.Map:
		if err := checkSchemaType(t.Key(), onPath); err != nil {
			return err
		}
		return checkSchemaType(t.Elem(), onPath)
	case reflect.Struct:
		if onPath[t] {
			return fmt.Errorf("%w: %v", ErrRecursiveType, t)
		}
		onPath[t] = true
		defer delete(onPath, t)

		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.Anonymous && !f.IsExported() {
				continue
			}
			if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name == "-" {
				continue
			}
			if err := checkSchemaType(f.Type, onPath); err != nil {
				return fmt.Errorf("field %s.%s: %w", t, f.Name, err)
			}
		}
	}
	return nil
}
