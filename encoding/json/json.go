package json

import (
	"github.com/curtisnewbie/koyomi/util"
	jsoniter "github.com/json-iterator/go"
)

var config = jsoniter.Config{EscapeHTML: true}.Froze()

// Parse json bytes.
func ParseJson(body []byte, ptr any) error {
	return config.Unmarshal(body, ptr)
}

// Parse json bytes.
func ParseJsonAs[T any](body []byte) (T, error) {
	var t T
	return t, ParseJson(body, &t)
}

// Parse json string.
func SParseJson(body string, ptr any) error {
	return ParseJson(util.UnsafeStr2Byt(body), ptr)
}

// Write json as bytes.
func WriteJson(body any) ([]byte, error) {
	return config.Marshal(body)
}

// Write json as string.
func SWriteJson(body any) (string, error) {
	if v, ok := body.(string); ok {
		return v, nil
	}
	buf, err := WriteJson(body)
	if err != nil {
		return "", err
	}
	return util.UnsafeByt2Str(buf), nil
}
