package slides

import (
	"testing"
)

func TestSanitize_Fences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json fence with newlines",
			input: "```json\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "leading fence only",
			input: "```json {\"a\":1}",
			want:  `{"a":1}`,
		},
		{
			name:  "trailing fence only",
			input: "{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "no fences",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "fence with surrounding whitespace",
			input: "  ```json\n  {\"a\":1}  \n```  ",
			want:  `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitize_BraceBounding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "leading prose",
			input: `Here is the JSON you asked for: {"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "trailing prose",
			input: `{"a":1} I hope this helps!`,
			want:  `{"a":1}`,
		},
		{
			name:  "prose on both sides",
			input: `noise{"a":{"b":2}}trailing`,
			want:  `{"a":{"b":2}}`,
		},
		{
			name:  "no braces passes through",
			input: `just some text`,
			want:  `just some text`,
		},
		{
			name:  "only opening brace passes through",
			input: `{"a":1`,
			want:  `{"a":1`,
		},
		{
			name:  "closing brace before opening passes through",
			input: `} then {`,
			want:  `} then {`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitize_UnicodeEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "truncated escape loses backslash",
			input: `\u12 foo`,
			want:  `u12 foo`,
		},
		{
			name:  "valid escape untouched",
			input: "\\u1234 foo",
			want:  "\\u1234 foo",
		},
		{
			name:  "escape at end of string",
			input: `foo\u12`,
			want:  `foou12`,
		},
		{
			name:  "bare backslash-u",
			input: `\u`,
			want:  `u`,
		},
		{
			name:  "non-hex after escape",
			input: `\uzzzz`,
			want:  `uzzzz`,
		},
		{
			name:  "mixed valid and invalid",
			input: "{\"t\":\"\\u00e9 and \\u12\"}",
			want:  "{\"t\":\"\\u00e9 and u12\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitize_ControlCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "C0 control removed, tab kept",
			input: "{\"a\":\"x\x01\ty\"}",
			want:  "{\"a\":\"x\ty\"}",
		},
		{
			name:  "newline and carriage return kept",
			input: "{\"a\":\"x\r\ny\"}",
			want:  "{\"a\":\"x\r\ny\"}",
		},
		{
			name:  "vertical tab and form feed removed",
			input: "{\"a\":\"x\x0b\x0cy\"}",
			want:  "{\"a\":\"xy\"}",
		},
		{
			name:  "DEL and C1 range removed",
			input: "{\"a\":\"x\x7f\u0085\u009fy\"}",
			want:  "{\"a\":\"xy\"}",
		},
		{
			name:  "printable unicode preserved",
			input: "{\"a\":\"café ✓\"}",
			want:  "{\"a\":\"café ✓\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}
