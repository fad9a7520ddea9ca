package main

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateConfirmationCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestConfirmationCodeStashAndConsume(t *testing.T) {
	const gadgetID = "b3b3c6a0-0000-0000-0000-000000000001"

	_, ok := lookupConfirmationCode(gadgetID)
	assert.False(t, ok)

	stashConfirmationCode(gadgetID, "123456")
	code, ok := lookupConfirmationCode(gadgetID)
	require.True(t, ok)
	assert.Equal(t, "123456", code)

	consumeConfirmationCode(gadgetID)
	_, ok = lookupConfirmationCode(gadgetID)
	assert.False(t, ok, "a consumed code must not be reusable")
}

func TestConfirmationCodesAreKeyedPerGadget(t *testing.T) {
	stashConfirmationCode("gadget-a", "111111")
	stashConfirmationCode("gadget-b", "222222")

	a, ok := lookupConfirmationCode("gadget-a")
	require.True(t, ok)
	b, ok := lookupConfirmationCode("gadget-b")
	require.True(t, ok)
	assert.Equal(t, "111111", a)
	assert.Equal(t, "222222", b)
}

func TestConfirmationCodeExpires(t *testing.T) {
	codeCache.Set("gadget-ttl", "654321", 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	_, ok := lookupConfirmationCode("gadget-ttl")
	assert.False(t, ok)
}
