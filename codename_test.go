package main

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var codenameRE = regexp.MustCompile(`^IMF-[A-Z0-9]{10}$`)

func TestGenerateCodenameFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		assert.Regexp(t, codenameRE, generateCodename())
	}
}

func TestGenerateCodenameUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		cn := generateCodename()
		assert.False(t, seen[cn], "codename collision: %s", cn)
		seen[cn] = true
	}
}
