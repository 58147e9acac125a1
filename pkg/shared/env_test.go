package shared

import (
	"os"
	"path/filepath"
	"testing"
)

const testPrivateKey = "302e020100300506032b65700422042091132178e72057a1d7528025956fe39b0b847f200ab59b2fdd367017f3087137"

var operatorEnvKeys = []string{
	"HEDERA_NETWORK",
	"NETWORK",
	"HEDERA_ACCOUNT_ID",
	"HEDERA_OPERATOR_ID",
	"ACCOUNT_ID",
	"OPERATOR_ID",
	"HEDERA_PRIVATE_KEY",
	"HEDERA_OPERATOR_KEY",
	"PRIVATE_KEY",
	"OPERATOR_KEY",
}

func TestIsValidEnvKey(t *testing.T) {
	valid := []string{"A", "ABC", "a_b", "MY_VAR", "A1", "_LEADING_UNDERSCORE", "MNEMONIC"}
	for _, key := range valid {
		if !isValidEnvKey(key) {
			t.Fatalf("expected %q to be valid", key)
		}
	}

	invalid := []string{"", "1ABC", "A B", "A-B", "A.B", "A=B"}
	for _, key := range invalid {
		if isValidEnvKey(key) {
			t.Fatalf("expected %q to be invalid", key)
		}
	}
}

func TestParseDotEnvLine(t *testing.T) {
	cases := []struct {
		line  string
		key   string
		value string
		ok    bool
	}{
		{"MNEMONIC=word word", "MNEMONIC", "word word", true},
		{"export FUNDER_ACCOUNT_ID=0.0.2", "FUNDER_ACCOUNT_ID", "0.0.2", true},
		{`QUOTED="a b c"`, "QUOTED", "a b c", true},
		{"SINGLE='x'", "SINGLE", "x", true},
		{"EMPTY=", "EMPTY", "", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"NOEQUALS", "", "", false},
		{"=nokey", "", "", false},
		{"1BAD=value", "", "", false},
	}

	for _, tc := range cases {
		key, value, ok := parseDotEnvLine(tc.line)
		if ok != tc.ok || key != tc.key || value != tc.value {
			t.Fatalf("parseDotEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.line, key, value, ok, tc.key, tc.value, tc.ok)
		}
	}
}

func TestFirstNonEmptyEnv(t *testing.T) {
	t.Setenv("_TEST_FIRST_A", "   ")
	t.Setenv("_TEST_FIRST_B", "hello")

	if result := firstNonEmptyEnv("_TEST_FIRST_A", "_TEST_FIRST_B"); result != "hello" {
		t.Fatalf("expected 'hello', got %q", result)
	}
	if result := firstNonEmptyEnv("_TEST_NONEXISTENT_1"); result != "" {
		t.Fatalf("expected empty string, got %q", result)
	}
}

func TestScopedEnv(t *testing.T) {
	t.Setenv("_TEST_SCOPED", "plain")
	t.Setenv("LOCAL__TEST_SCOPED", "")

	if result := scopedEnv("local", "_TEST_SCOPED"); result != "plain" {
		t.Fatalf("expected unscoped fallback, got %q", result)
	}

	t.Setenv("LOCAL__TEST_SCOPED", "scoped")
	if result := scopedEnv("local", "_TEST_SCOPED"); result != "scoped" {
		t.Fatalf("expected scoped value, got %q", result)
	}
	if result := scopedEnv("", "_TEST_SCOPED"); result != "plain" {
		t.Fatalf("expected unscoped value without network, got %q", result)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# funder\n_TEST_DOTENV_LOAD=loaded_value\nexport _TEST_DOTENV_EXPORT=\"exported\"\n"
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	defer os.Unsetenv("_TEST_DOTENV_LOAD")
	defer os.Unsetenv("_TEST_DOTENV_EXPORT")

	if !loadDotEnvFile(envPath) {
		t.Fatal("expected loadDotEnvFile to return true")
	}
	if os.Getenv("_TEST_DOTENV_LOAD") != "loaded_value" {
		t.Fatalf("expected 'loaded_value', got %q", os.Getenv("_TEST_DOTENV_LOAD"))
	}
	if os.Getenv("_TEST_DOTENV_EXPORT") != "exported" {
		t.Fatalf("expected 'exported', got %q", os.Getenv("_TEST_DOTENV_EXPORT"))
	}
}

func TestLoadDotEnvFileKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	t.Setenv("_TEST_DOTENV_PREEXIST", "original")
	if err := os.WriteFile(envPath, []byte("_TEST_DOTENV_PREEXIST=overridden\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	loadDotEnvFile(envPath)
	if os.Getenv("_TEST_DOTENV_PREEXIST") != "original" {
		t.Fatalf("expected 'original', got %q", os.Getenv("_TEST_DOTENV_PREEXIST"))
	}
}

func TestLoadDotEnvFileNonexistent(t *testing.T) {
	if loadDotEnvFile(filepath.Join(t.TempDir(), "missing.env")) {
		t.Fatal("expected false for nonexistent file")
	}
}

func TestFindDotEnvWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	envPath := filepath.Join(root, ".env")
	if err := os.WriteFile(envPath, []byte("X=1\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	if found := findDotEnv([]string{nested}); found != envPath {
		t.Fatalf("expected %q, got %q", envPath, found)
	}
}
