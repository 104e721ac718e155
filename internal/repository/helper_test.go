package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 15, 9, 26, 535_000_000, time.UTC)

	decoded, err := DecodeCursor(EncodeCursor(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(decoded))
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	_, err := DecodeCursor("not base64!!!")
	assert.Error(t, err)

	// valid base64, not a timestamp
	_, err = DecodeCursor("aGVsbG8=")
	assert.Error(t, err)
}

func TestPageVerify(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{0, 10},
		{4, 10},
		{5, 5},
		{17, 17},
		{30, 30},
		{31, 10},
		{-1, 10},
	}
	for _, tc := range cases {
		num := tc.in
		PageVerify(&num)
		assert.Equal(t, tc.want, num, "in=%d", tc.in)
	}
}
