package utils

import (
	"reflect"
	"strings"
)

func GetFields(t any) []reflect.StructField {
	typeOf := reflect.TypeOf(t)
	if typeOf.Kind() == reflect.Pointer {
		typeOf = typeOf.Elem()
	}
	var result []reflect.StructField
	for i := 0; i < typeOf.NumField(); i++ {
		result = append(result, typeOf.Field(i))
	}
	return result
}

// ParquetTagToKeyValue splits a tag like "name=id, type=INT32". Entries without '=' map to "".
func ParquetTagToKeyValue(tag string) map[string]string {
	result := make(map[string]string)
	for _, entry := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(entry), "=")
		if key == "" {
			continue
		}
		result[key] = value
	}
	return result
}

// ColumnNames returns the parquet column name of each field, falling back to the Go field name.
func ColumnNames(fields []reflect.StructField) []string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		name := ParquetTagToKeyValue(field.Tag.Get("parquet"))["name"]
		if name == "" {
			name = field.Name
		}
		names = append(names, name)
	}
	return names
}
