package verification

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// GenerateCode returns a random numeric code of the given length, left-padded
// with zeros so short draws keep their length.
func GenerateCode(length int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generating code: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n), nil
}

// Hasher computes keyed hashes of verification codes. The secret is injected
// at construction; the raw code is never persisted anywhere.
type Hasher struct {
	secret []byte
}

func NewHasher(secret string) *Hasher {
	return &Hasher{secret: []byte(secret)}
}

func (h *Hasher) Hash(code string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(code))

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether code hashes to digest. Comparison is constant-time.
func (h *Hasher) Verify(code, digest string) bool {
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(code))

	return hmac.Equal(mac.Sum(nil), want)
}
