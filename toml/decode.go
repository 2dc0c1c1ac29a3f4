package toml

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal parses TOML data and stores the result in the value
// pointed to by v.
func Unmarshal(data []byte, v any) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(parsed, v)
}

// Decode maps parsed TOML values onto a struct using reflection. It
// prioritizes `toml` tags and falls back to lowercased field names.
func Decode(data any, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("toml: target must be a non-nil pointer")
	}
	return decodeValue(data, val.Elem())
}

func decodeValue(data any, val reflect.Value) error {
	if data == nil {
		return nil
	}

	switch val.Kind() {
	case reflect.Ptr:
		elem := reflect.New(val.Type().Elem())
		if err := decodeValue(data, elem.Elem()); err != nil {
			return err
		}
		val.Set(elem)
		return nil

	case reflect.Struct:
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("toml: expected table for %s, got %T", val.Type(), data)
		}
		return decodeStruct(m, val)

	case reflect.Map:
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("toml: expected table for %s, got %T", val.Type(), data)
		}
		if val.Type().Key().Kind() != reflect.String || val.Type().Elem().Kind() != reflect.Interface {
			return fmt.Errorf("toml: unsupported map type %s", val.Type())
		}
		val.Set(reflect.ValueOf(m))
		return nil

	case reflect.Slice:
		items, ok := data.([]any)
		if !ok {
			return fmt.Errorf("toml: expected array for %s, got %T", val.Type(), data)
		}
		out := reflect.MakeSlice(val.Type(), len(items), len(items))
		for i, item := range items {
			if err := decodeValue(item, out.Index(i)); err != nil {
				return err
			}
		}
		val.Set(out)
		return nil

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("toml: expected string, got %T", data)
		}
		val.SetString(s)
		return nil

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return fmt.Errorf("toml: expected boolean, got %T", data)
		}
		val.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := data.(int64)
		if !ok {
			return fmt.Errorf("toml: expected integer, got %T", data)
		}
		if val.OverflowInt(i) {
			return fmt.Errorf("toml: integer %d overflows %s", i, val.Type())
		}
		val.SetInt(i)
		return nil

	case reflect.Float32, reflect.Float64:
		switch n := data.(type) {
		case float64:
			val.SetFloat(n)
		case int64:
			val.SetFloat(float64(n))
		default:
			return fmt.Errorf("toml: expected float, got %T", data)
		}
		return nil

	default:
		return fmt.Errorf("toml: unsupported target kind %s", val.Kind())
	}
}

func decodeStruct(data map[string]any, val reflect.Value) error {
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("toml")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		raw, ok := data[name]
		if !ok {
			continue
		}
		if err := decodeValue(raw, val.Field(i)); err != nil {
			return fmt.Errorf("%w (field %q)", err, name)
		}
	}
	return nil
}
