package shredder

import (
	"reflect"
	"strings"

	. "github.com/dball/osinfo/internal/types"
)

// attrTag is the parsed attr tag of a struct field.
type attrTag struct {
	key         string
	ignoreEmpty bool
}

func parseAttrTag(tag string) (attr attrTag, err error) {
	parts := strings.Split(tag, ",")
	attr.key = parts[0]
	if attr.key == "" {
		err = NewError("shredder.emptyKey", "tag", tag)
		return
	}
	for _, part := range parts[1:] {
		switch part {
		case "ignoreempty":
			attr.ignoreEmpty = true
		default:
			err = NewError("shredder.invalidDirective", "tag", tag)
			return
		}
	}
	return
}

// parseAttrField parses the attr tag of the struct field. If the field has no tag, its key
// will be empty.
func parseAttrField(field reflect.StructField) (attr attrTag, err error) {
	tag, ok := field.Tag.Lookup("attr")
	if !ok {
		return
	}
	attr, err = parseAttrTag(tag)
	if err != nil {
		return
	}
	typ := field.Type
	switch typ.Kind() {
	case reflect.Pointer:
		typ = typ.Elem()
	case reflect.Slice:
		typ = typ.Elem()
		if typ.Kind() == reflect.Pointer {
			err = NewError("shredder.invalidSliceType", "tag", tag, "type", field.Type)
			return
		}
	}
	if !isScalar(typ) {
		err = NewError("shredder.invalidType", "tag", tag, "type", field.Type, "kind", field.Type.Kind())
	}
	return
}

func isScalar(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64, reflect.String:
		return true
	case reflect.Struct:
		return typ == timeType
	}
	return false
}
