package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"func main() {", 13},
		{"// 中文注释", 11},
		{"x := \"😀\"", 9},
		{"fmt.Println(\"あ\")", 17},
		{"e\u0301", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StringWidth(tt.input), "%q", tt.input)
	}

	assert.Equal(t, 0, RuneWidth('\t'))
	assert.Equal(t, 0, RuneWidth('\u0301'))
	assert.Equal(t, 2, RuneWidth('中'))
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "return nil", 20, "return nil"},
		{"cut", "return nil", 6, "return"},
		{"exact", "return", 6, "return"},
		{"wide rune not split", "s := \"中文\"", 7, "s := \""},
		{"wide rune kept", "s := \"中文\"", 8, "s := \"中"},
		{"zero width", "return", 0, ""},
		{"negative width", "return", -3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateToWidth(tt.input, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, StringWidth(got), max(tt.width, 0))
		})
	}
}

func TestEllipsize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"short title untouched", "Say hi", 10, "Say hi"},
		{"exact fit untouched", "Say hi", 6, "Say hi"},
		{"long title", "Collapse the imports", 10, "Collapse…"},
		{"no trailing space before marker", "Say hello world", 5, "Say…"},
		{"wide runes", "中文标题很长", 7, "中文标…"},
		{"one column", "Say hi", 1, "S"},
		{"no room", "Say hi", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ellipsize(tt.input, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, StringWidth(got), max(tt.width, 0))
		})
	}
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		col      int
		expected string
	}{
		{"No tabs", "return nil", 0, "return nil"},
		{"Leading tab", "\treturn", 0, "    return"},
		{"Tab after text", "ab\tc", 0, "ab  c"},
		{"Offset column", "\tx", 2, "  x"},
		{"Two tabs", "\t\t}", 0, "        }"},
		{"Wide rune before tab", "中\tx", 0, "中  x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandTabs(tt.input, tt.col, 4)
			if got != tt.expected {
				t.Errorf("ExpandTabs(%q, %d) = %q, want %q", tt.input, tt.col, got, tt.expected)
			}
		})
	}
}
