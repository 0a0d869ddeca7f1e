// Package verify derives the verification token printed on every report.
//
// The token is a SHA-256 digest of "<entity>|<audit date>". It lets two
// reports for the same audit be recognized as such. It is NOT a signature:
// no secret is involved and anyone can recompute it, so it only hints at
// tampering and proves nothing about who produced a report.
package verify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Separator joins the identity fields before hashing.
const Separator = "|"

// TokenLength is the length of a token in hex characters.
const TokenLength = sha256.Size * 2

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrVerificationUnavailable indicates the digest could not be computed.
// A report must not be finalized without its token.
const ErrVerificationUnavailable = constError("verification unavailable")

// Digester computes a one-way digest. Implementations may block; callers
// wait for the result before laying out any page.
type Digester interface {
	Digest(ctx context.Context, data []byte) ([]byte, error)
}

// DigesterFunc adapts a function to the Digester interface.
type DigesterFunc func(ctx context.Context, data []byte) ([]byte, error)

// Digest calls f.
func (f DigesterFunc) Digest(ctx context.Context, data []byte) ([]byte, error) {
	return f(ctx, data)
}

// SHA256 is the default Digester.
type SHA256 struct{}

// Digest returns the SHA-256 sum of data.
func (SHA256) Digest(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	return sum[:], nil
}

// Payload returns the bytes that are hashed for a token.
func Payload(entityName, auditDate string) []byte {
	return []byte(entityName + Separator + auditDate)
}

// Token computes the hex verification token for an entity and audit date.
// A nil digester uses SHA256. Any digester failure, or an empty digest, is
// reported as ErrVerificationUnavailable.
func Token(ctx context.Context, d Digester, entityName, auditDate string) (string, error) {
	if d == nil {
		d = SHA256{}
	}
	sum, err := d.Digest(ctx, Payload(entityName, auditDate))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrVerificationUnavailable, err)
	}
	if len(sum) == 0 {
		return "", fmt.Errorf("%w: empty digest", ErrVerificationUnavailable)
	}
	return hex.EncodeToString(sum), nil
}

// Short returns the first n characters of token for compact display.
func Short(token string, n int) string {
	if n <= 0 || n >= len(token) {
		return token
	}
	return token[:n]
}
