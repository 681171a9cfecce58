package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir      string
	configPath   string
	snapshotPath string
	dbPath       string
}

const testSnapshot = `{
	"profile": {
		"user": {"id": "u1", "email": "user@example.com"},
		"addons": [
			{
				"manifest": {"id": "org.cinemeta", "version": "3.0.0", "name": "Cinemeta", "logo": null, "types": ["movie", "series"]},
				"transportUrl": "https://cinemeta.example/manifest.json",
				"flags": {"official": true, "protected": false}
			}
		]
	},
	"libraryItems": [
		{"_id": "tt1", "name": "One", "type": "movie", "poster": null, "removed": false, "temp": false, "_ctime": null, "_mtime": "2024-01-02T00:00:00Z", "state": {"timeOffset": 0, "duration": 0, "timesWatched": 2, "lastWatched": "2024-01-02T00:00:00Z", "videoId": null}}
	],
	"notifications": {"items": {}, "lastUpdated": null, "created": "2024-01-01T00:00:00Z"},
	"board": {
		"selected": null,
		"catalogs": [
			{
				"request": {"base": "https://cinemeta.example/manifest.json", "path": {"resource": "catalog", "type": "movie", "id": "top", "extra": []}},
				"content": {"type": "Ready", "content": [{"id": "tt1", "type": "movie", "name": "One"}, {"id": "tt2", "type": "movie", "name": "Two"}]}
			},
			{
				"request": {"base": "https://cinemeta.example/manifest.json", "path": {"resource": "catalog", "type": "series", "id": "top", "extra": []}},
				"content": {"type": "Loading"}
			}
		]
	},
	"installedAddons": {
		"selected": null,
		"selectable": {"types": []},
		"catalog": [
			{
				"manifest": {"id": "org.cinemeta", "version": "3.0.0", "name": "Cinemeta", "logo": null, "types": ["movie", "series"]},
				"transportUrl": "https://cinemeta.example/manifest.json"
			}
		]
	}
}`

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	snapshotPath := filepath.Join(base, "snapshot.json")
	if err := os.WriteFile(snapshotPath, []byte(testSnapshot), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	dbPath := filepath.Join(base, "library.db")
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(
		"[paths]\nsnapshot = %q\nlibrary_db = %q\nlog_dir = %q\n\n[render]\nformat = \"json\"\n",
		snapshotPath, dbPath, filepath.Join(base, "logs"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{
		baseDir:      base,
		configPath:   configPath,
		snapshotPath: snapshotPath,
		dbPath:       dbPath,
	}
}

func runCLI(t *testing.T, configPath string, args []string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
