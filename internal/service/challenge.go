package service

import (
	"crypto/rand"
	"encoding/base32"

	"athletehub/internal/utils"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

// CodeLength is the length of the short verification code, and of the
// token suffix it is derived from.
const CodeLength = 6

// HOTPChallengeIssuer builds one-time challenges: a 6-digit HOTP code
// from a throwaway random secret, appended to an opaque random prefix
// to form the full token. ShortCode(token) == code by construction.
type HOTPChallengeIssuer struct {
	// PrefixSize is the random prefix length in bytes before base64
	// encoding. Zero means the default.
	PrefixSize int
}

func (g HOTPChallengeIssuer) NewChallenge() (string, string, error) {
	secret := make([]byte, 20)
	if _, err := rand.Read(secret); err != nil {
		return "", "", err
	}
	code, err := hotp.GenerateCodeCustom(
		base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret),
		0,
		hotp.ValidateOpts{Digits: otp.DigitsSix, Algorithm: otp.AlgorithmSHA1},
	)
	if err != nil {
		return "", "", err
	}

	size := g.PrefixSize
	if size == 0 {
		size = 24
	}
	prefix, err := utils.GenerateRandomToken(size)
	if err != nil {
		return "", "", err
	}
	return prefix + code, code, nil
}

// ShortCode derives the typeable code from a full token: its last six
// characters. This mirrors the emailed deep link, where a user who
// only read the code off a phone and a user who clicked the link both
// redeem the same challenge.
func ShortCode(token string) string {
	if len(token) < CodeLength {
		return token
	}
	return token[len(token)-CodeLength:]
}
