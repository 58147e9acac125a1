package shared

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

var dotenvLoadOnce sync.Once

// loadDotEnvIfPresent loads the nearest .env walking up from the working
// directory, then from this source file. Variables already set win.
func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		roots := make([]string, 0, 2)
		if cwd, err := os.Getwd(); err == nil {
			roots = append(roots, cwd)
		}
		if _, currentFile, _, ok := runtime.Caller(0); ok {
			roots = append(roots, filepath.Dir(currentFile))
		}

		if path := findDotEnv(roots); path != "" {
			loadDotEnvFile(path)
		}
	})
}

func findDotEnv(roots []string) string {
	seen := make(map[string]struct{})
	for _, root := range roots {
		for current := root; ; {
			candidate := filepath.Join(current, ".env")
			if _, visited := seen[candidate]; !visited {
				seen[candidate] = struct{}{}
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate
				}
			}

			parent := filepath.Dir(current)
			if parent == current {
				break
			}
			current = parent
		}
	}
	return ""
}

func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseDotEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}
		if err := os.Setenv(key, value); err == nil {
			loadedAny = true
		}
	}

	return loadedAny
}

func parseDotEnvLine(raw string) (string, string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if !isValidEnvKey(key) {
		return "", "", false
	}

	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		if (character >= 'A' && character <= 'Z') ||
			(character >= 'a' && character <= 'z') ||
			(index > 0 && character >= '0' && character <= '9') ||
			character == '_' {
			continue
		}
		return false
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}

// scopedEnv prefers NETWORK_KEY (for example TESTNET_MNEMONIC) over the
// unscoped keys.
func scopedEnv(network string, keys ...string) string {
	prefix := strings.ToUpper(strings.TrimSpace(network))
	if prefix != "" {
		scoped := make([]string, 0, len(keys))
		for _, key := range keys {
			scoped = append(scoped, prefix+"_"+key)
		}
		if value := firstNonEmptyEnv(scoped...); value != "" {
			return value
		}
	}
	return firstNonEmptyEnv(keys...)
}
