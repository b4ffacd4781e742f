package services

import (
	"encoding/json"
	"reflect"

	"gorm.io/datatypes"
)

// toJSON marshals a request value into a JSON column. Nil values, including
// typed-nil slices and maps from absent request fields, leave the column NULL
// rather than storing the JSON literal "null".
func toJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
