package unicodedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Record
		wantOK bool
	}{
		{
			name:   "otter",
			line:   "1F9A6 ; [*180C.0020.0002] # OTTER",
			want:   Record{Code: 0x1F9A6, Description: "otter"},
			wantOK: true,
		},
		{
			name:   "multi word description",
			line:   "1F3DD ; [*1544.0020.0002] # DESERT ISLAND",
			want:   Record{Code: 0x1F3DD, Description: "desert island"},
			wantOK: true,
		},
		{
			name:   "long description",
			line:   "1F502 ; [*1669.0020.0002] # CLOCKWISE RIGHTWARDS AND LEFTWARDS OPEN CIRCLE ARROWS WITH CIRCLED ONE OVERLAY",
			want:   Record{Code: 0x1F502, Description: "clockwise rightwards and leftwards open circle arrows with circled one overlay"},
			wantOK: true,
		},
		{
			name:   "no spaces around separators",
			line:   "0041;[.1FA2.0020.0008]#LATIN CAPITAL LETTER A",
			want:   Record{Code: 0x41, Description: "latin capital letter a"},
			wantOK: true,
		},
		{
			name:   "lower case hex",
			line:   "1f9a6 ; [*180C.0020.0002] # OTTER",
			want:   Record{Code: 0x1F9A6, Description: "otter"},
			wantOK: true,
		},
		{
			name:   "semicolon inside middle field",
			line:   "1F600 ; [a;b] # GRINNING FACE",
			want:   Record{Code: 0x1F600, Description: "grinning face"},
			wantOK: true,
		},
		{
			name:   "hash inside description",
			line:   "0023 ; [*0398.0020.0002] # NUMBER SIGN # extra",
			want:   Record{Code: 0x23, Description: "number sign # extra"},
			wantOK: true,
		},
		{
			name:   "carriage return is trimmed",
			line:   "1F9A6 ; [*180C.0020.0002] # OTTER\r",
			want:   Record{Code: 0x1F9A6, Description: "otter"},
			wantOK: true,
		},
		{
			name:   "empty description",
			line:   "0000 ; [.0000.0000.0000] #",
			want:   Record{Code: 0, Description: ""},
			wantOK: true,
		},
		{
			name:   "largest 32-bit code",
			line:   "FFFFFFFF ; [.] # MAX",
			want:   Record{Code: 0xFFFFFFFF, Description: "max"},
			wantOK: true,
		},
		{
			name: "empty line",
			line: "",
		},
		{
			name: "comment line",
			line: "# allkeys.txt",
		},
		{
			name: "version header",
			line: "@version 15.0.0",
		},
		{
			name: "missing hash",
			line: "1F9A6 ; [*180C.0020.0002]",
		},
		{
			name: "hash before semicolon only",
			line: "1F9A6 # OTTER ; [*180C.0020.0002]",
		},
		{
			name: "non hex code",
			line: "XYZ ; [*180C.0020.0002] # OTTER",
		},
		{
			name: "empty code",
			line: " ; [*180C.0020.0002] # OTTER",
		},
		{
			name: "code sequence",
			line: "0044 0335 ; [.1C8F.0020.0008][.0000.0037.0002] # <LATIN CAPITAL LETTER D, COMBINING SHORT STROKE OVERLAY>",
		},
		{
			name: "code overflows 32 bits",
			line: "100000000 ; [.] # TOO BIG",
		},
		{
			name: "hex prefix",
			line: "0x1F9A6 ; [*180C.0020.0002] # OTTER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord_Rune(t *testing.T) {
	tests := []struct {
		name   string
		code   uint32
		want   rune
		wantOK bool
	}{
		{name: "ascii", code: 0x41, want: 'A', wantOK: true},
		{name: "astral", code: 0x1F9A6, want: '🦦', wantOK: true},
		{name: "max rune", code: 0x10FFFF, want: 0x10FFFF, wantOK: true},
		{name: "null", code: 0, want: 0, wantOK: true},
		{name: "high surrogate", code: 0xD800},
		{name: "low surrogate", code: 0xDFFF},
		{name: "above max rune", code: 0x110000},
		{name: "above int32", code: 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Record{Code: tt.code}.Rune()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
