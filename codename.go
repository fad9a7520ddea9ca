package main

import (
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// generateCodename derives a codename from a random UUID.
// Format: "IMF-" + 10 uppercase alphanumerics, e.g. IMF-4G7JXVA34R.
func generateCodename() string {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(uuid.NewString()))
	var b strings.Builder
	for _, r := range encoded {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == 10 {
			break
		}
	}
	return "IMF-" + strings.ToUpper(b.String())
}
