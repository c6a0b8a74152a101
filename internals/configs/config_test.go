package configs

import (
	"os"
	"testing"
)

func TestGetEnvDefault(t *testing.T) {
	if got := GetEnv("KEY_YANG_TIDAK_ADA", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetEnvSet(t *testing.T) {
	t.Setenv("PORT", "8081")
	if got := GetEnv("PORT", "5001"); got != "8081" {
		t.Fatalf("expected 8081, got %q", got)
	}
}

func TestUploadDirDefault(t *testing.T) {
	t.Setenv("UPLOAD_DIR", "placeholder") // daftarkan restore
	os.Unsetenv("UPLOAD_DIR")
	if got := UploadDir(); got != "uploads" {
		t.Fatalf("expected default uploads dir, got %q", got)
	}
}

func TestUploadDirOverride(t *testing.T) {
	t.Setenv("UPLOAD_DIR", "/tmp/arsip")
	if got := UploadDir(); got != "/tmp/arsip" {
		t.Fatalf("expected override, got %q", got)
	}
}
