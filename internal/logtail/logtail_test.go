package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "amphibians.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFileIsEmpty(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Read() = %v, want no lines", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Line
	}{
		{
			name:  "full entry",
			input: `time="2026-10-18T09:12:01Z" level=warning msg="refresh failed" error="dial tcp: refused" kind=transport refresh_id=abc`,
			want: Line{
				Time:    "2026-10-18T09:12:01Z",
				Level:   "warning",
				Message: "refresh failed",
				Fields: []Field{
					{Key: "error", Value: "dial tcp: refused"},
					{Key: "kind", Value: "transport"},
					{Key: "refresh_id", Value: "abc"},
				},
			},
		},
		{
			name:  "escaped quotes",
			input: `level=info msg="say \"hi\""`,
			want:  Line{Level: "info", Message: `say "hi"`},
		},
		{
			name:  "plain text",
			input: "panic: something odd",
			want:  Line{Message: "panic: something odd"},
		},
		{
			name:  "unterminated quote",
			input: `level=info msg="oops`,
			want:  Line{Message: `level=info msg="oops`},
		},
		{
			name:  "empty",
			input: "",
			want:  Line{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			tt.want.Raw = tt.input
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
