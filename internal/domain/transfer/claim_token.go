package transfer

import (
	"crypto/rand"
	"errors"
	"strings"
)

const (
	// TokenLength is fixed; tokens travel through email links and may be
	// typed by hand.
	TokenLength = 12

	// tokenAlphabet omits 0/O/1/I/L to avoid transcription ambiguity.
	tokenAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

var (
	ErrInvalidToken = errors.New("invalid claim token")
)

// ClaimToken is the single credential of a deferred transfer: unguessable,
// redeemable once, never rotated.
type ClaimToken struct {
	value string
}

func NewClaimToken() (ClaimToken, error) {
	buf := make([]byte, TokenLength)
	if _, err := rand.Read(buf); err != nil {
		return ClaimToken{}, err
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return ClaimToken{value: string(buf)}, nil
}

// ParseClaimToken normalizes user input (trim, uppercase) and validates shape
// before any store lookup, so malformed tokens never touch the database.
func ParseClaimToken(s string) (ClaimToken, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != TokenLength {
		return ClaimToken{}, ErrInvalidToken
	}
	for _, r := range s {
		if !strings.ContainsRune(tokenAlphabet, r) {
			return ClaimToken{}, ErrInvalidToken
		}
	}
	return ClaimToken{value: s}, nil
}

func (t ClaimToken) Value() string {
	return t.value
}

func (t ClaimToken) IsZero() bool {
	return t.value == ""
}
