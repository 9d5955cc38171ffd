package utils

import (
	"testing"
)

func TestParseStringAs_String(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple string", input: "hello world", want: "hello world"},
		{name: "empty string", input: "", want: ""},
		{name: "string with special characters", input: "hello\nworld\t!", want: "hello\nworld\t!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[string](tt.input)
			if err != nil {
				t.Fatalf("ParseStringAs() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStringAs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseStringAs_Bool(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{name: "true", input: "true", want: true},
		{name: "false", input: "false", want: false},
		{name: "1 as true", input: "1", want: true},
		{name: "invalid bool", input: "not a bool", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[bool](tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStringAs() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseStringAs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseStringAs_Numeric(t *testing.T) {
	intVal, err := ParseStringAs[int]("42")
	if err != nil || intVal != 42 {
		t.Errorf("ParseStringAs[int](42) = %v, %v", intVal, err)
	}

	floatVal, err := ParseStringAs[float64]("3.14")
	if err != nil || floatVal != 3.14 {
		t.Errorf("ParseStringAs[float64](3.14) = %v, %v", floatVal, err)
	}

	uintVal, err := ParseStringAs[uint]("7")
	if err != nil || uintVal != 7 {
		t.Errorf("ParseStringAs[uint](7) = %v, %v", uintVal, err)
	}

	if _, err := ParseStringAs[int]("not a number"); err == nil {
		t.Error("ParseStringAs[int] expected error for non-numeric input")
	}
}

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestParseStringAs_Struct(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    person
		wantErr bool
	}{
		{
			name:  "valid JSON",
			input: `{"name":"John","age":30}`,
			want:  person{Name: "John", Age: 30},
		},
		{
			name:  "repairable JSON with single quotes",
			input: `{name: 'John', age: 30}`,
			want:  person{Name: "John", Age: 30},
		},
		{
			name:  "repairable JSON with trailing comma",
			input: `{"name":"John","age":30,}`,
			want:  person{Name: "John", Age: 30},
		},
		{
			name:    "type mismatch survives repair and fails",
			input:   `{"name":"John","age":"not a number"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[person](tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStringAs() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseStringAs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseStringAs_Slice(t *testing.T) {
	got, err := ParseStringAs[[]int]("[1,2,3]")
	if err != nil {
		t.Fatalf("ParseStringAs() error = %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("ParseStringAs() = %v, want [1 2 3]", got)
	}
}
