package main

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// codeCache holds pending self-destruct confirmation codes, keyed by gadget
// id so concurrent sequences for different gadgets do not clobber each other.
// Entries expire after confirmationCodeTTL; the expiry check also runs lazily
// on read.
var codeCache = cache.New(confirmationCodeTTL, time.Minute)

// generateConfirmationCode returns a cryptographically random 6-digit decimal
// code in [100000, 999999].
func generateConfirmationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", internalError("failed to generate confirmation code")
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

func stashConfirmationCode(gadgetID, code string) {
	codeCache.Set(gadgetID, code, confirmationCodeTTL)
}

func lookupConfirmationCode(gadgetID string) (string, bool) {
	v, ok := codeCache.Get(gadgetID)
	if !ok {
		return "", false
	}
	code, ok := v.(string)
	return code, ok
}

// consumeConfirmationCode removes a pending code; each code confirms at most
// one destruction.
func consumeConfirmationCode(gadgetID string) {
	codeCache.Delete(gadgetID)
}
