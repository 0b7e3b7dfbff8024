package ptf

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"usercenter/pkg/json"
	"usercenter/pkg/timex"
)

const tagString = "string"

// parse flattens tagged struct fields into named cells. Columns keep the
// field declaration order, embedded structs are inlined where they appear.
type parse struct {
	tagName string
}

func (p *parse) parse(obj interface{}) ([]string, []map[string]interface{}, error) {
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Ptr || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil, nil, nil
		}
		value = value.Elem()
	}
	switch value.Kind() {
	case reflect.Struct:
		columns, record := p.parseStruct(value)
		return columns, []map[string]interface{}{record}, nil
	case reflect.Slice, reflect.Array:
		columns := p.columns(value.Type().Elem())
		records := make([]map[string]interface{}, 0, value.Len())
		for i := 0; i < value.Len(); i++ {
			item := value.Index(i)
			for item.Kind() == reflect.Ptr || item.Kind() == reflect.Interface {
				if item.IsNil() {
					break
				}
				item = item.Elem()
			}
			if item.Kind() != reflect.Struct {
				continue
			}
			_, record := p.parseStruct(item)
			records = append(records, record)
		}
		return columns, records, nil
	default:
		return nil, nil, errors.Errorf("not support %s", value.Kind())
	}
}

// columns of an element type, known even when the slice is empty
func (p *parse) columns(t reflect.Type) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	columns, _ := p.parseStruct(reflect.New(t).Elem())
	return columns
}

func (p *parse) parseStruct(v reflect.Value) ([]string, map[string]interface{}) {
	t := v.Type()
	var columns []string
	record := make(map[string]interface{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		fv := v.Field(i)
		if ft.PkgPath != "" && !ft.Anonymous { // unexported
			continue
		}
		tag, found := ft.Tag.Lookup(p.tagName)
		if !found {
			continue
		}
		name, option, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if ft.Anonymous && ft.Type.Kind() == reflect.Struct {
			embedded, values := p.parseStruct(fv)
			columns = append(columns, embedded...)
			for k, value := range values {
				record[k] = value
			}
			continue
		}
		if name == "" {
			name = ft.Name
		}
		columns = append(columns, name)
		record[name] = cell(fv, option)
	}
	return columns, record
}

func cell(fv reflect.Value, option string) interface{} {
	if t, ok := fv.Interface().(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return timex.TimeFormat(t)
	}
	if option != tagString {
		return fv.Interface()
	}
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(fv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(fv.Float(), 'f', 2, 64)
	case reflect.String:
		return fv.String()
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool())
	default:
		data, err := json.MarshalToString(fv.Interface())
		if err != nil {
			return fmt.Sprint(fv.Interface())
		}
		return data
	}
}
