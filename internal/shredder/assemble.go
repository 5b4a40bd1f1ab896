package shredder

import (
	"reflect"
	"strconv"
	"time"

	"github.com/dball/osinfo/internal/entity"
	. "github.com/dball/osinfo/internal/types"
)

// Assemble sets the tagged fields of the struct ptr points to from e's attributes. Fields whose
// keys e does not have are left as they are.
func Assemble(e *entity.Entity, ptr any) (err error) {
	val := reflect.ValueOf(ptr)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		err = NewError("shredder.invalidPointer", "type", reflect.TypeOf(ptr))
		return
	}
	err = assembleStruct(e, val.Elem())
	return
}

func assembleStruct(e *entity.Entity, val reflect.Value) (err error) {
	typ := val.Type()
	n := typ.NumField()
	for i := 0; i < n; i++ {
		fieldType := typ.Field(i)
		attr, attrErr := parseAttrField(fieldType)
		if attrErr != nil {
			err = attrErr
			return
		}
		field := val.Field(i)
		if attr.key == "" {
			if embedded(fieldType) {
				if err = assembleStruct(e, field); err != nil {
					return
				}
			}
			continue
		}
		values := e.GetAll(attr.key)
		if len(values) == 0 {
			continue
		}
		if !field.CanSet() {
			err = NewError("shredder.unexportedField", "field", fieldType.Name)
			return
		}
		if err = setField(field, values); err != nil {
			err = NewError("shredder.invalidValue", "key", attr.key, "values", values, "error", err)
			return
		}
	}
	return
}

func setField(field reflect.Value, values []string) (err error) {
	switch field.Kind() {
	case reflect.Pointer:
		ptr := reflect.New(field.Type().Elem())
		if err = parseScalar(ptr.Elem(), values[0]); err == nil {
			field.Set(ptr)
		}
	case reflect.Slice:
		slice := reflect.MakeSlice(field.Type(), len(values), len(values))
		for i, v := range values {
			if err = parseScalar(slice.Index(i), v); err != nil {
				return
			}
		}
		field.Set(slice)
	default:
		err = parseScalar(field, values[0])
	}
	return
}

func parseScalar(val reflect.Value, s string) (err error) {
	switch val.Kind() {
	case reflect.Bool:
		val.SetBool(s == "true" || s == "yes")
	case reflect.Int, reflect.Int64:
		var n int64
		if n, err = strconv.ParseInt(s, 0, 64); err == nil {
			val.SetInt(n)
		}
	case reflect.Uint, reflect.Uint64:
		var n uint64
		if n, err = strconv.ParseUint(s, 0, 64); err == nil {
			val.SetUint(n)
		}
	case reflect.String:
		val.SetString(s)
	default:
		var t time.Time
		if t, err = time.Parse(DateLayout, s); err == nil {
			val.Set(reflect.ValueOf(t))
		}
	}
	return
}
