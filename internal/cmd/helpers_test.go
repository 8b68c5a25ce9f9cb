package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scalpel/internal/config"
	"scalpel/internal/yamlpatch"
)

const testConfig = `# server
port: 8000
listen: false
ssl:
  enabled: false # https
  keyPath: "./certs/privkey.pem"
description: |
  port: 1
whitelist:
  - 127.0.0.1
`

// setupTestApp writes content to a fresh config.yaml and returns an App
// pointing at it along with its stdout and stderr buffers.
func setupTestApp(t *testing.T, content string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	var out, errOut bytes.Buffer
	logger := newLogger(&errOut, false)
	app := &App{
		Engine: yamlpatch.New(yamlpatch.Options{Path: path, Logger: logger}),
		Paths:  config.Paths{InstallDir: dir, ConfigFile: path},
		Logger: logger,
		In:     strings.NewReader(""),
		Out:    &out,
		Err:    &errOut,
	}
	return app, &out, &errOut
}

func readConfig(t *testing.T, app *App) string {
	t.Helper()
	data, err := os.ReadFile(app.Paths.ConfigFile)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	return string(data)
}
