package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", RoleUser, true},
		{"user", RoleUser, true},
		{"USER", RoleUser, true},
		{"agent", RoleUser, true},
		{"STANDARD", RoleUser, true},
		{" user ", RoleUser, true},
		{"admin", RoleAdmin, true},
		{"ADMIN", RoleAdmin, true},
		{"Administrator", RoleAdmin, true},
		{"wizard", "", false},
		{"root", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeRole(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestValidGadgetStatus(t *testing.T) {
	for _, s := range GadgetStatuses {
		assert.True(t, ValidGadgetStatus(s))
	}
	assert.False(t, ValidGadgetStatus("available"))
	assert.False(t, ValidGadgetStatus(""))
	assert.False(t, ValidGadgetStatus("LOST"))
}
