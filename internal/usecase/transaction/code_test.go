package transaction

import (
	"regexp"
	"testing"
)

var codePattern = regexp.MustCompile(`^RKB\d{14}[0-9A-HJKMNP-TV-Z]{6}$`)

func TestGenerateCodeFormat(t *testing.T) {
	code := GenerateCode()
	if !codePattern.MatchString(code) {
		t.Fatalf("code %q does not match expected format", code)
	}
}

func TestGenerateCodeUniqueWithinSecond(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateCode()
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
}
