package ptf

import (
	"io"
)

// Handler writes one table, name is the sheet or file stem
type Handler func(name string, headers []string, rows [][]interface{}, w io.Writer) error

type option struct {
	tagName string
	headers []string
	sheet   string
}

type Option func(*option)

// TagName sets the struct tag naming columns, "csv" by default
func TagName(tagName string) Option {
	return func(o *option) {
		o.tagName = tagName
	}
}

// Headers keeps only the listed columns in the listed order
func Headers(headers ...string) Option {
	return func(o *option) {
		o.headers = headers
	}
}

func Sheet(sheet string) Option {
	return func(o *option) {
		o.sheet = sheet
	}
}

func NewMarshal(handler Handler, opts ...Option) *marshal {
	o := option{
		tagName: "csv",
		sheet:   "Sheet1",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &marshal{
		option:  o,
		parser:  &parse{tagName: o.tagName},
		handler: handler,
	}
}

type marshal struct {
	option
	parser  *parse
	handler Handler
}

// Encode writes a struct or a slice of structs as a table
func (m *marshal) Encode(w io.Writer, obj interface{}) error {
	columns, records, err := m.parser.parse(obj)
	if err != nil {
		return err
	}
	headers := m.headers
	if len(headers) == 0 {
		headers = columns
	}
	rows := make([][]interface{}, len(records))
	for i, record := range records {
		row := make([]interface{}, len(headers))
		for j, header := range headers {
			row[j] = record[header]
		}
		rows[i] = row
	}
	return m.handler(m.sheet, headers, rows, w)
}
