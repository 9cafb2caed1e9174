package reflectutil

import (
	"reflect"
	"strings"
)

// IsIntegerKind reports whether kind is a signed or unsigned integer.
func IsIntegerKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// IsFloatKind reports whether kind is a floating point number.
func IsFloatKind(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}

// JSONField describes an exported struct field that carries a json tag.
type JSONField struct {
	Name      string
	OmitEmpty bool
	Value     reflect.Value
}

// JSONFields collects the exported fields of the struct value v that have
// a usable json tag, in declaration order. Fields without a json tag or
// tagged "-" are skipped.
func JSONFields(v reflect.Value) []JSONField {
	t := v.Type()
	var fields []JSONField
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Skip unexported fields
		if field.PkgPath != "" {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(jsonTag, ",")
		if name == "" || name == "-" {
			continue
		}

		fields = append(fields, JSONField{
			Name:      name,
			OmitEmpty: hasOption(opts, "omitempty"),
			Value:     v.Field(i),
		})
	}
	return fields
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == option {
			return true
		}
	}
	return false
}
