package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertBase(t *testing.T) {
	const ff = "binary: 11111111\noctal: 377\ndecimal: 255\nhexadecimal: FF"

	tests := []struct {
		name    string
		input   string
		opts    Options
		want    string
		wantErr string
	}{
		{name: "decimal", input: "255", want: ff},
		{name: "hex prefix", input: "0xff", want: ff},
		{name: "binary prefix", input: "0b1111_1111", want: ff},
		{name: "octal prefix", input: "0o377", want: ff},
		{name: "explicit base", input: "FF", opts: Options{"from": "16"}, want: ff},
		{name: "negative", input: "-0b101", want: "binary: -101\noctal: -5\ndecimal: -5\nhexadecimal: -5"},
		{name: "big", input: "18446744073709551616", want: "binary: 1" + zeros(64) + "\noctal: 2" + zeros(21) + "\ndecimal: 18446744073709551616\nhexadecimal: 1" + zeros(16)},
		{name: "digit outside base", input: "12", opts: Options{"from": "2"}, wantErr: "invalid base-2"},
		{name: "explicit base keeps own prefix", input: "0xff", opts: Options{"from": "16"}, want: ff},
		{name: "hex digits that look like a prefix", input: "0b1", opts: Options{"from": "16"}, want: "binary: 10110001\noctal: 261\ndecimal: 177\nhexadecimal: B1"},
		{name: "foreign prefix in binary", input: "0x1", opts: Options{"from": "2"}, wantErr: "invalid base-2"},
		{name: "unsupported base", input: "1", opts: Options{"from": "7"}, wantErr: "unsupported base"},
		{name: "garbage", input: "abc", wantErr: "invalid base-10"},
		{name: "sign only", input: "-", wantErr: "invalid"},
		{name: "empty", input: "", wantErr: "input is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			if opts == nil {
				opts = Options{}
			}
			res := ConvertBase(tt.input, opts)
			if tt.wantErr != "" {
				assert.Contains(t, res.Error, tt.wantErr)
				return
			}
			assert.True(t, res.OK(), res.Error)
			assert.Equal(t, tt.want, res.Output)
		})
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func TestConvertTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    Options
		want    string
		wantErr string
	}{
		{
			name:  "epoch",
			input: "0",
			want:  "unix: 0\nunix_ms: 0\niso: 1970-01-01T00:00:00.000Z",
		},
		{
			name:  "seconds",
			input: "1700000000",
			want:  "unix: 1700000000\nunix_ms: 1700000000000\niso: 2023-11-14T22:13:20.000Z",
		},
		{
			name:  "milliseconds",
			input: "1700000000123",
			want:  "unix: 1700000000\nunix_ms: 1700000000123\niso: 2023-11-14T22:13:20.123Z",
		},
		{
			name:  "date only",
			input: "2024-01-01",
			want:  "unix: 1704067200\nunix_ms: 1704067200000\niso: 2024-01-01T00:00:00.000Z",
		},
		{
			name:  "rfc3339 with offset",
			input: "2024-01-01T02:00:00+02:00",
			want:  "unix: 1704067200\nunix_ms: 1704067200000\niso: 2024-01-01T00:00:00.000Z",
		},
		{
			name:  "extra zone line",
			input: "0",
			opts:  Options{"tz": "UTC"},
			want:  "unix: 0\nunix_ms: 0\niso: 1970-01-01T00:00:00.000Z\nlocal: 1970-01-01T00:00:00Z",
		},
		{name: "year beyond 9999", input: "99999999999999999", wantErr: "out of range"},
		{name: "year before 0", input: "-99999999999999", wantErr: "out of range"},
		{name: "year 9999", input: "253402300799", want: "unix: 253402300799\nunix_ms: 253402300799000\niso: 9999-12-31T23:59:59.000Z"},
		{name: "unknown zone", input: "0", opts: Options{"tz": "Mars/Olympus"}, wantErr: "unknown time zone"},
		{name: "garbage", input: "yesterday-ish", wantErr: "unrecognized timestamp"},
		{name: "empty", input: " ", wantErr: "input is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			if opts == nil {
				opts = Options{}
			}
			res := ConvertTimestamp(tt.input, opts)
			if tt.wantErr != "" {
				assert.Contains(t, res.Error, tt.wantErr)
				return
			}
			assert.True(t, res.OK(), res.Error)
			assert.Equal(t, tt.want, res.Output)
		})
	}
}

func TestConvertTimestampNow(t *testing.T) {
	orig := nowFunc
	t.Cleanup(func() { nowFunc = orig })
	nowFunc = func() time.Time { return time.Unix(1704067200, 0) }

	res := ConvertTimestamp("NOW", Options{})
	assert.True(t, res.OK(), res.Error)
	assert.Contains(t, res.Output, "unix: 1704067200\n")
}
