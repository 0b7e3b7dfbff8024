package timex

import (
	"time"
)

const (
	DefaultLocation  = "Asia/Shanghai"
	TimeFormatLayout = "2006-01-02 15:04:05"
)

// CST falls back to a fixed +08:00 zone when tzdata is missing from the image.
var CST = func() *time.Location {
	loc, err := time.LoadLocation(DefaultLocation)
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}()

func TimeFormat(t time.Time) string {
	return t.In(CST).Format(TimeFormatLayout)
}

// Parse reads a TimeFormatLayout string as CST wall time
func Parse(value string) (time.Time, error) {
	return time.ParseInLocation(TimeFormatLayout, value, CST)
}
