package query

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-storefront-query/internal/reflectutil"
)

// Enum is an enum literal. It is written without quotes.
type Enum string

// Variable references an operation variable by name, without the "$".
type Variable string

// ObjectField is one entry of an Object.
type ObjectField struct {
	Name  string
	Value any
}

// Object is an input object literal whose fields keep their order.
type Object []ObjectField

// Value converts a Go value into a GraphQL literal:
//
//   - nil and nil pointers, slices and maps become null
//   - strings become string literals, bools boolean literals
//   - integers and floats become numeric literals
//   - Enum and Variable become enum literals and variable references
//   - slices and arrays become lists
//   - Object becomes an object with its fields in order
//   - maps with string keys become objects with their keys sorted
//   - structs become objects built from their json-tagged fields, in
//     declaration order; omitempty fields holding a zero value are skipped
//   - *ast.Value is used as is
//
// Any other kind is an error.
func Value(v any) (*ast.Value, error) {
	switch v := v.(type) {
	case *ast.Value:
		return v, nil
	case Enum:
		return &ast.Value{Kind: ast.EnumValue, Raw: string(v)}, nil
	case Variable:
		return &ast.Value{Kind: ast.Variable, Raw: string(v)}, nil
	case Object:
		return objectValue(v)
	}
	return reflectValue(reflect.ValueOf(v))
}

func reflectValue(v reflect.Value) (*ast.Value, error) {
	if reflectutil.IsNilValue(v) {
		return &ast.Value{Kind: ast.NullValue, Raw: "null"}, nil
	}

	// Named types such as Enum may hide behind pointers and interfaces.
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		concrete := reflectutil.UnwrapToConcreteValue(v)
		if !concrete.IsValid() {
			return &ast.Value{Kind: ast.NullValue, Raw: "null"}, nil
		}
		return Value(concrete.Interface())
	}

	kind := v.Kind()
	switch {
	case reflectutil.IsIntegerKind(kind):
		if kind >= reflect.Uint && kind <= reflect.Uint64 {
			return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatUint(v.Uint(), 10)}, nil
		}
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(v.Int(), 10)}, nil
	case reflectutil.IsFloatKind(kind):
		return &ast.Value{Kind: ast.FloatValue, Raw: strconv.FormatFloat(v.Float(), 'f', -1, 64)}, nil
	}

	switch kind {
	case reflect.String:
		return &ast.Value{Kind: ast.StringValue, Raw: v.String()}, nil
	case reflect.Bool:
		return &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(v.Bool())}, nil
	case reflect.Slice, reflect.Array:
		return listValue(v)
	case reflect.Map:
		return mapValue(v)
	case reflect.Struct:
		return structValue(v)
	default:
		return nil, fmt.Errorf("unsupported argument type %v", v.Type())
	}
}

func listValue(v reflect.Value) (*ast.Value, error) {
	list := &ast.Value{Kind: ast.ListValue}
	for i := 0; i < v.Len(); i++ {
		child, err := Value(v.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		list.Children = append(list.Children, &ast.ChildValue{Value: child})
	}
	return list, nil
}

func objectValue(fields Object) (*ast.Value, error) {
	object := &ast.Value{Kind: ast.ObjectValue}
	for _, field := range fields {
		child, err := Value(field.Value)
		if err != nil {
			return nil, fmt.Errorf("object field %q: %w", field.Name, err)
		}
		object.Children = append(object.Children, &ast.ChildValue{Name: field.Name, Value: child})
	}
	return object, nil
}

func mapValue(v reflect.Value) (*ast.Value, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("unsupported map key type %v", v.Type().Key())
	}

	keys := make([]string, 0, v.Len())
	for _, key := range v.MapKeys() {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)

	fields := make(Object, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, ObjectField{
			Name:  key,
			Value: v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key())).Interface(),
		})
	}
	return objectValue(fields)
}

func structValue(v reflect.Value) (*ast.Value, error) {
	var fields Object
	for _, field := range reflectutil.JSONFields(v) {
		if field.OmitEmpty && field.Value.IsZero() {
			continue
		}
		fields = append(fields, ObjectField{Name: field.Name, Value: field.Value.Interface()})
	}
	return objectValue(fields)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
