package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")

	content := `# Test env file
KEY1=value1
KEY2="quoted value"
KEY3='single quoted'
# Comment
KEY4=value4
`
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	os.Unsetenv("KEY1")
	os.Unsetenv("KEY2")
	os.Unsetenv("KEY3")
	os.Unsetenv("KEY4")

	if err := loadEnvFile(envFile); err != nil {
		t.Fatalf("loadEnvFile failed: %v", err)
	}

	if os.Getenv("KEY1") != "value1" {
		t.Errorf("KEY1 not set correctly: %s", os.Getenv("KEY1"))
	}
	if os.Getenv("KEY2") != "quoted value" {
		t.Errorf("KEY2 not set correctly: %s", os.Getenv("KEY2"))
	}
	if os.Getenv("KEY3") != "single quoted" {
		t.Errorf("KEY3 not set correctly: %s", os.Getenv("KEY3"))
	}
	if os.Getenv("KEY4") != "value4" {
		t.Errorf("KEY4 not set correctly: %s", os.Getenv("KEY4"))
	}
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")

	content := `EXISTING_KEY=new_value`
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	os.Setenv("EXISTING_KEY", "original_value")
	defer os.Unsetenv("EXISTING_KEY")

	if err := loadEnvFile(envFile); err != nil {
		t.Fatalf("loadEnvFile failed: %v", err)
	}

	if os.Getenv("EXISTING_KEY") != "original_value" {
		t.Errorf("existing env var was overridden: %s", os.Getenv("EXISTING_KEY"))
	}
}

func TestResolveEnvWithAliases(t *testing.T) {
	os.Unsetenv("PDFX_ANTHROPIC_API_KEY")
	os.Setenv("ANTHROPIC_API_KEY", "sk-test-123")
	defer os.Unsetenv("ANTHROPIC_API_KEY")

	if got := ResolveEnvWithAliases("PDFX_ANTHROPIC_API_KEY"); got != "sk-test-123" {
		t.Errorf("alias not resolved, got %q", got)
	}

	os.Setenv("PDFX_ANTHROPIC_API_KEY", "sk-canonical")
	defer os.Unsetenv("PDFX_ANTHROPIC_API_KEY")

	if got := ResolveEnvWithAliases("PDFX_ANTHROPIC_API_KEY"); got != "sk-canonical" {
		t.Errorf("canonical key should win, got %q", got)
	}
}
