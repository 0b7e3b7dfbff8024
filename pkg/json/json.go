package json

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var std = jsoniter.ConfigCompatibleWithStandardLibrary

func Marshal(input interface{}) ([]byte, error) {
	return std.Marshal(input)
}

func MarshalToString(input interface{}) (string, error) {
	return std.MarshalToString(input)
}

func Unmarshal(input []byte, data interface{}) error {
	return std.Unmarshal(input, data)
}

// Decode reads one JSON value from reader into data
func Decode(reader io.Reader, data interface{}) error {
	return std.NewDecoder(reader).Decode(data)
}

// DecodeUseNumber 当data没有指定具体数据结构时，json默认会将uint64数字转化为浮点数，这可能
// 导致精度丢失，使用该方法可以防止该问题出现
func DecodeUseNumber(reader io.Reader, data interface{}) error {
	d := std.NewDecoder(reader)
	d.UseNumber()
	return d.Decode(data)
}
