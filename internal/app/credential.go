package app

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	credentialAlgo   = "pbkdf2_sha256"
	credentialRounds = 120000
	saltLen          = 16
	keyLen           = 32
)

// HashPassword derives a one-way credential from a password. The stored
// form is "pbkdf2_sha256$rounds$salt_b64$hash_b64" so existing records
// from the original service remain verifiable.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	dk := pbkdf2.Key([]byte(password), salt, credentialRounds, keyLen, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s",
		credentialAlgo,
		credentialRounds,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(dk),
	), nil
}

// VerifyPassword reports whether password matches the stored credential.
// Malformed or empty stored values verify as false.
func VerifyPassword(password, stored string) bool {
	algo, rounds, salt, expected, err := parseCredential(stored)
	if err != nil || algo != credentialAlgo {
		return false
	}
	actual := pbkdf2.Key([]byte(password), salt, rounds, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(actual, expected) == 1
}

func parseCredential(stored string) (algo string, rounds int, salt, hash []byte, err error) {
	parts := strings.SplitN(stored, "$", 4)
	if len(parts) != 4 {
		return "", 0, nil, nil, errors.New("malformed credential")
	}
	rounds, err = strconv.Atoi(parts[1])
	if err != nil || rounds <= 0 {
		return "", 0, nil, nil, errors.New("malformed credential rounds")
	}
	salt, err = base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", 0, nil, nil, err
	}
	hash, err = base64.StdEncoding.DecodeString(parts[3])
	if err != nil || len(hash) == 0 {
		return "", 0, nil, nil, errors.New("malformed credential hash")
	}
	return parts[0], rounds, salt, hash, nil
}
