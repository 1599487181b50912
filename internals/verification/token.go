package verification

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strconv"
)

// emailTokenBytes is the entropy of an email verification token. 20 bytes
// gives 160 bits, encoded as 40 lowercase hex characters.
const emailTokenBytes = 20

// GenerateEmailToken returns a fresh opaque email verification token.
func GenerateEmailToken() (string, error) {
	b := make([]byte, emailTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateMobileCode returns a 6-digit code drawn uniformly from
// 100000-999999 using crypto/rand.
func GenerateMobileCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
