package cmd

import (
	"encoding/json"
	"testing"

	"scalpel/internal/yamlpatch"
)

func TestList(t *testing.T) {
	app, out, _ := setupTestApp(t, testConfig)

	cmd := newListCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	want := "port = 8000\n" +
		"listen = false\n" +
		"ssl.enabled = false\n" +
		"ssl.keyPath = ./certs/privkey.pem\n" +
		"description = |\n"
	if got := out.String(); got != want {
		t.Errorf("list =\n%s\nwant\n%s", got, want)
	}
}

func TestList_JSON(t *testing.T) {
	app, out, _ := setupTestApp(t, "port: 8000\n")
	app.JSON = true

	cmd := newListCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list --json failed: %v", err)
	}

	var entries []yamlpatch.Entry
	if err := json.Unmarshal(out.Bytes(), &entries); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(entries) != 1 || entries[0] != (yamlpatch.Entry{Key: "port", Value: "8000", Line: 1}) {
		t.Errorf("entries = %+v", entries)
	}
}

func TestList_JSON_Empty(t *testing.T) {
	app, out, _ := setupTestApp(t, "# nothing here\n")
	app.JSON = true

	cmd := newListCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list --json failed: %v", err)
	}
	if got := out.String(); got != "[]\n" {
		t.Errorf("list --json = %q, want %q", got, "[]\n")
	}
}
