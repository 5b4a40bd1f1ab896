package shredder

import (
	"reflect"
	"strconv"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// DateLayout is the layout of shredded time values.
const DateLayout = "2006-01-02"

func formatScalar(value reflect.Value) string {
	switch value.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(value.Bool())
	case reflect.Int, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10)
	case reflect.Uint, reflect.Uint64:
		return strconv.FormatUint(value.Uint(), 10)
	case reflect.String:
		return value.String()
	default:
		return value.Interface().(time.Time).Format(DateLayout)
	}
}

// getFieldValues returns the string forms of the field's values. A nil pointer has none.
func getFieldValues(attr attrTag, fieldValue reflect.Value) (values []string) {
	switch fieldValue.Kind() {
	case reflect.Pointer:
		if !fieldValue.IsNil() {
			values = []string{formatScalar(fieldValue.Elem())}
		}
	case reflect.Slice:
		n := fieldValue.Len()
		for i := 0; i < n; i++ {
			element := fieldValue.Index(i)
			if attr.ignoreEmpty && element.IsZero() {
				continue
			}
			values = append(values, formatScalar(element))
		}
	default:
		if attr.ignoreEmpty && fieldValue.IsZero() {
			return
		}
		values = []string{formatScalar(fieldValue)}
	}
	return
}
