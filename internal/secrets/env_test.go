package secrets_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/signalnine/benchwrap/internal/secrets"
)

func TestParseEnvFile(t *testing.T) {
	content := `# API credentials
OPENAI_API_KEY=sk-test-123
export HF_TOKEN="hf-quoted"
ANTHROPIC_API_KEY='single-quoted'

not a pair
`
	path := filepath.Join(t.TempDir(), "secrets.env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := secrets.ParseEnvFile(path)
	if err != nil {
		t.Fatalf("ParseEnvFile: %v", err)
	}
	want := []string{
		"OPENAI_API_KEY=sk-test-123",
		"HF_TOKEN=hf-quoted",
		"ANTHROPIC_API_KEY=single-quoted",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseEnvFile = %v, want %v", got, want)
	}
}

func TestParseEnvFileMissing(t *testing.T) {
	if _, err := secrets.ParseEnvFile(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("expected error for missing file")
	}
}
