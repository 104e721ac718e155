package repository

import (
	"encoding/base64"
	"time"
)

const (
	timeFormat = "2006-01-02T15:04:05.999Z07:00" // reduce precision loss

	minPageNum     = 5
	maxPageNum     = 30
	defaultPageNum = 10
)

// DecodeCursor will decode cursor from user for mysql
func DecodeCursor(encodedTime string) (time.Time, error) {
	byt, err := base64.StdEncoding.DecodeString(encodedTime)
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(timeFormat, string(byt))
}

// EncodeCursor will encode cursor from mysql to user
func EncodeCursor(t time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(t.Format(timeFormat)))
}

// PageVerify clamps the page size into the allowed range
func PageVerify(num *int64) {
	if *num < minPageNum || *num > maxPageNum {
		*num = defaultPageNum
	}
}
