package text

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		selector byte
		want     Encoding
	}{
		{0x00, Latin1},
		{0x01, UTF16},
		{0x02, UTF16},
		{0x03, UTF8},
		{0x04, UTF16},
		{0xFF, UTF16},
	}

	for _, tt := range tests {
		if got := Select(tt.selector); got != tt.want {
			t.Errorf("Select(0x%02x) = %s, want %s", tt.selector, got, tt.want)
		}
	}
}

func TestTerminatorSize(t *testing.T) {
	if Latin1.TerminatorSize() != 1 || UTF8.TerminatorSize() != 1 {
		t.Error("single-byte encodings should use a 1-byte terminator")
	}
	if UTF16.TerminatorSize() != 2 {
		t.Error("UTF-16 should use a 2-byte terminator")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		data []byte
		want string
	}{
		{"empty", UTF8, nil, ""},
		{"utf8", UTF8, []byte("Hello"), "Hello"},
		{"utf8 multibyte", UTF8, []byte("Grüße"), "Grüße"},
		{"utf8 invalid kept", UTF8, []byte{'a', 0xFF}, "a\xff"},
		{"latin1 ascii", Latin1, []byte("Hello"), "Hello"},
		{"latin1 high bytes", Latin1, []byte{'G', 'r', 0xFC, 0xDF, 'e'}, "Grüße"},
		{"utf16 le bom", UTF16, []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00}, "Hi"},
		{"utf16 be bom", UTF16, []byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'}, "Hi"},
		{"utf16 no bom defaults to big endian", UTF16, []byte{0x00, 'H', 0x00, 'i'}, "Hi"},
		{"utf16 non ascii", UTF16, []byte{0xFF, 0xFE, 0xFC, 0x00}, "ü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.enc.Decode(tt.data); got != tt.want {
				t.Errorf("Decode(%v) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestEncoding_String(t *testing.T) {
	if Latin1.String() != "ISO-8859-1" || UTF8.String() != "UTF-8" || UTF16.String() != "UTF-16" {
		t.Error("unexpected encoding names")
	}
}
