package value

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{"nothing", Nothing{}, "nothing"},
		{"nil", nil, "nothing"},
		{"int", NewInt(-42), "-42"},
		{"decimal whole", NewDecimal(3, 1), "3.0"},
		{"decimal half", NewDecimal(7, 2), "3.5"},
		{"decimal third", NewDecimal(1, 3), "0.3333333333"},
		{"filesize", Filesize(100), "100 B"},
		{"string", String("hi"), "hi"},
		{"line", Line("hi"), "hi"},
		{"path", Path("/tmp"), "/tmp"},
		{"bool", False, "false"},
		{"date", NewDate(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)), "2020-01-02T03:04:05Z"},
		{"duration", Duration(90 * time.Second), "1m30s"},
		{"binary", Binary{0xde, 0xad}, "0xdead"},
		{"uuid", Uuid(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")), "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"row", NewRow(Entry{"name", String("a")}, Entry{"size", NewInt(1)}), `{name: "a", size: 1}`},
		{"table", Table{NewInt(1), Line("x"), Table{}}, `[1, "x", []]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}
