// Package shredder deconstructs structs into entity attributes, and assembles them back.
//
// Struct fields tagged `attr:"key"` are written to the attribute key. Bools, integers, strings
// and dates are written as single values, slices of them as multiple values in order. Nil
// pointers and, with the ignoreempty directive, zero values are skipped. Untagged embedded
// structs are shredded in place.
package shredder

import (
	"reflect"

	"github.com/dball/osinfo/internal/entity"
	. "github.com/dball/osinfo/internal/types"
)

// Shred writes the tagged fields of x, a struct or pointer to struct, to e. Each written key
// replaces any values e already has for it.
func Shred(x any, e *entity.Entity) (err error) {
	val := reflect.ValueOf(x)
	if val.Kind() == reflect.Pointer && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		err = NewError("shredder.invalidStruct", "type", reflect.TypeOf(x))
		return
	}
	err = shredStruct(val, e)
	return
}

func shredStruct(val reflect.Value, e *entity.Entity) (err error) {
	typ := val.Type()
	n := typ.NumField()
	for i := 0; i < n; i++ {
		fieldType := typ.Field(i)
		attr, attrErr := parseAttrField(fieldType)
		if attrErr != nil {
			err = attrErr
			return
		}
		if attr.key == "" {
			if embedded(fieldType) {
				if err = shredStruct(val.Field(i), e); err != nil {
					return
				}
			}
			continue
		}
		values := getFieldValues(attr, val.Field(i))
		if len(values) == 0 {
			continue
		}
		e.Clear(attr.key)
		for _, v := range values {
			e.Add(attr.key, v)
		}
	}
	return
}

// embedded reports whether the field is an untagged embedded struct, whose fields are shredded
// as if they were the outer struct's.
func embedded(field reflect.StructField) bool {
	_, tagged := field.Tag.Lookup("attr")
	return field.Anonymous && !tagged && field.Type.Kind() == reflect.Struct
}

// Keys returns the attribute keys of the tagged fields of the struct type, in field order.
func Keys(typ reflect.Type) (keys []string, err error) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		err = NewError("shredder.invalidStruct", "type", typ)
		return
	}
	n := typ.NumField()
	for i := 0; i < n; i++ {
		field := typ.Field(i)
		attr, attrErr := parseAttrField(field)
		if attrErr != nil {
			err = attrErr
			return
		}
		if attr.key != "" {
			keys = append(keys, attr.key)
		} else if embedded(field) {
			inner, innerErr := Keys(field.Type)
			if innerErr != nil {
				err = innerErr
				return
			}
			keys = append(keys, inner...)
		}
	}
	return
}
