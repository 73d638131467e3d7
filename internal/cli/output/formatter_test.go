package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"plain", FormatPlain, false},
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
		{"PLAIN", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFormatterTypes(t *testing.T) {
	if _, ok := NewFormatter(FormatPlain).(*PlainFormatter); !ok {
		t.Error("plain format should yield PlainFormatter")
	}
	if _, ok := NewFormatter(FormatTable).(*TableFormatter); !ok {
		t.Error("table format should yield TableFormatter")
	}
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("json format should yield JSONFormatter")
	}
	if _, ok := NewFormatter(FormatYAML).(*YAMLFormatter); !ok {
		t.Error("yaml format should yield YAMLFormatter")
	}
}

func TestPlainFormatterPairs(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
		want  string
	}{
		{"empty", []Pair{}, "{}\n"},
		{"single", []Pair{{"a", "1"}}, "{a:1}\n"},
		{"ordered", []Pair{{"b", "2"}, {"a", "1"}}, "{b:2, a:1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := (&PlainFormatter{}).Format(buf, tt.pairs); err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Format() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPlainFormatterString(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&PlainFormatter{}).Format(buf, "hello"); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("Format() = %q, want %q", buf.String(), "hello\n")
	}
}

func TestJSONFormatterPairs(t *testing.T) {
	buf := &bytes.Buffer{}
	pairs := []Pair{{"a", "1"}, {"b", "2"}}
	if err := (&JSONFormatter{}).Format(buf, pairs); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var decoded []Pair
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0] != pairs[0] || decoded[1] != pairs[1] {
		t.Errorf("round-trip = %v, want %v", decoded, pairs)
	}
}

func TestYAMLFormatterPairs(t *testing.T) {
	buf := &bytes.Buffer{}
	pairs := []Pair{{"a", "1"}}
	if err := (&YAMLFormatter{}).Format(buf, pairs); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var decoded []Pair
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != pairs[0] {
		t.Errorf("round-trip = %v, want %v", decoded, pairs)
	}
}

func TestTableFormatterPairs(t *testing.T) {
	buf := &bytes.Buffer{}
	pairs := []Pair{{"a", "1"}, {"bb", "22"}}
	if err := (&TableFormatter{}).Format(buf, pairs); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("table has %d lines, want 3: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "KEY") {
		t.Errorf("missing header row: %q", lines[0])
	}
	if !strings.Contains(lines[1], "a") || !strings.Contains(lines[1], "1") {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestTableFormatterUnsupported(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&TableFormatter{}).Format(buf, 42); err == nil {
		t.Error("Format(int) should fail for table output")
	}
}
