package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

const testRoster = `
members:
  - name: Alon
    name_localized: אלון
    is_child: true
places:
  - key: kindergarten
    name: Kindergarten
    name_localized: גן
    driving_time_from_home: 10
    requires_driving: true
`

func run(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte(testRoster), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--roster", path, "--now", "2024-05-01T10:00:00Z", "--tz", "UTC"}, args...))
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}

	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	return got, nil
}

func TestParseCommand(t *testing.T) {
	got, err := run(t, "parse", "לקחת את אלון לגן מחר")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got["timeBucket"] != "tomorrow" || got["requiresDriving"] != true || got["specificDate"] != "2024-05-02" {
		t.Errorf("task = %v", got)
	}
}

func TestEditCommand(t *testing.T) {
	got, err := run(t, "edit", "--tag", "2", "--value", `"P3"`, "Buy milk today P1")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got["rawText"] != "Buy milk today P3" {
		t.Errorf("rawText = %v", got["rawText"])
	}

	if _, err := run(t, "edit", "--tag", "9", "--value", `"P3"`, "Buy milk today P1"); err == nil {
		t.Error("unknown tag should fail")
	}
}
