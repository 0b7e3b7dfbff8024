package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"usercenter/pkg/json"
)

const ContentType = "text/csv; charset=utf-8"

// Handler writes a csv table with a BOM so spreadsheet tools read chinese headers
func Handler(_ string, headers []string, rows [][]interface{}, w io.Writer) error {
	if _, err := w.Write([]byte("\xEF\xBB\xBF")); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, value := range row {
			record[i] = toString(value)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func toString(d interface{}) string {
	switch value := d.(type) {
	case nil:
		return ""
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(value)
	default:
		data, err := json.MarshalToString(d)
		if err != nil {
			return fmt.Sprint(d)
		}
		return data
	}
}
