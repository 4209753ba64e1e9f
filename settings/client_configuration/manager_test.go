package client_configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"labbot/infrastructure/settings"
)

func withConfigPath(t *testing.T, path string) {
	t.Helper()
	t.Setenv(EnvConfigPath, path)
}

func createTempConfigFile(t *testing.T, data interface{}) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), "labbot_configuration.json")
	content, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return filePath
}

func TestManagerCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labbot_configuration.json")
	withConfigPath(t, path)

	configuration, err := NewManager().Configuration()
	if err != nil {
		t.Fatalf("Configuration() returned error: %v", err)
	}
	if configuration.Control.Host != settings.DefaultHost {
		t.Fatalf("expected default host, got %q", configuration.Control.Host)
	}

	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("expected configuration file to be created: %v", statErr)
	}
}

func TestManagerReadsExistingConfiguration(t *testing.T) {
	control := settings.Default()
	control.Host = "lab.example.org"
	control.Insecure = false
	path := createTempConfigFile(t, Configuration{Control: control})
	withConfigPath(t, path)

	configuration, err := NewManager().Configuration()
	if err != nil {
		t.Fatalf("Configuration() returned error: %v", err)
	}
	if configuration.Control.Host != "lab.example.org" {
		t.Fatalf("expected configured host, got %q", configuration.Control.Host)
	}
	if configuration.Control.Insecure {
		t.Fatal("expected strict mode to survive the round trip")
	}
}

func TestManagerRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labbot_configuration.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	withConfigPath(t, path)

	if _, err := NewManager().Configuration(); err == nil {
		t.Fatal("expected an error for malformed configuration")
	}
}

func TestManagerRejectsInvalidSettings(t *testing.T) {
	control := settings.Default()
	control.Port = 0
	path := createTempConfigFile(t, Configuration{Control: control})
	withConfigPath(t, path)

	if _, err := NewManager().Configuration(); err == nil {
		t.Fatal("expected an error for out-of-range port")
	}
}

func TestResolverPrefersEnvOverride(t *testing.T) {
	withConfigPath(t, "/tmp/custom-labbot.json")

	path, err := newClientResolver().resolve()
	if err != nil {
		t.Fatalf("resolve() returned error: %v", err)
	}
	if path != "/tmp/custom-labbot.json" {
		t.Fatalf("expected env override, got %q", path)
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labbot_configuration.json")

	want := defaultConfiguration()
	want.Control.MaxAgeSeconds = 30
	if err := newWriter(path).write(want); err != nil {
		t.Fatalf("write() returned error: %v", err)
	}

	got, err := newReader(path).read()
	if err != nil {
		t.Fatalf("read() returned error: %v", err)
	}
	if got.Control.MaxAgeSeconds != 30 {
		t.Fatalf("expected MaxAgeSeconds to round trip, got %d", got.Control.MaxAgeSeconds)
	}
}
