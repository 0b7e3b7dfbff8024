package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler writes one sheet named sheet, the header on row 1
func Handler(sheet string, headers []string, rows [][]interface{}, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	f.NewSheet(sheet)
	if sheet != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}
	f.SetActiveSheet(f.GetSheetIndex(sheet))
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, value := range row {
			switch v := value.(type) {
			case uint64, int64:
				// 超过15位精度的数字按文本写入
				cells[j] = fmt.Sprint(v)
			default:
				cells[j] = v
			}
		}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	axis, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, axis, &cells)
}
