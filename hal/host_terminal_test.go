//go:build !tinygo

package hal

import (
	"reflect"
	"testing"
)

func TestDecodeTerminalKeys(t *testing.T) {
	tests := []struct {
		in   string
		want []Key
	}{
		{"a", []Key{{Rune: 'a'}}},
		{"\x1b", []Key{{Scan: ScanEscape}}},
		{"\x1b[A\x1b[D", []Key{{Scan: ScanUp}, {Scan: ScanLeft}}},
		{"\x1b[Z", []Key{{Scan: ScanEscape}, {Rune: '['}, {Rune: 'Z'}}},
		{"\x03", []Key{{Scan: ScanEscape}}},
		{"\r\x7f", []Key{{Rune: '\r'}, {Rune: '\b'}}},
	}
	for _, tt := range tests {
		if got := decodeTerminalKeys([]byte(tt.in)); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("decodeTerminalKeys(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
