// Package password provides argon2id password hashing in the standard
// PHC string format ($argon2id$v=19$m=...,t=...,p=...$salt$hash).
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const algorithmID = "argon2id"

var (
	// ErrInvalidParams indicates hashing parameters below the accepted minimums.
	ErrInvalidParams = errors.New("invalid argon2 parameters")

	// ErrMalformedHash indicates an encoded hash that cannot be parsed.
	ErrMalformedHash = errors.New("malformed password hash")
)

// Params configures the argon2id key derivation.
type Params struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams returns the parameters used in production
// (second OWASP recommendation: m=19456, t=2, p=1).
func DefaultParams() Params {
	return Params{
		Memory:      19 * 1024,
		Time:        2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Hasher hashes and verifies passwords. Configured once at startup and
// safe for concurrent use.
type Hasher struct {
	params Params
}

// New creates a Hasher after validating the parameters.
func New(p Params) (*Hasher, error) {
	if p.Memory < 8*1024 || p.Time < 1 || p.Parallelism < 1 ||
		p.SaltLength < 16 || p.KeyLength < 16 {
		return nil, ErrInvalidParams
	}
	return &Hasher{params: p}, nil
}

// Hash derives a key from the password with a random salt and returns
// the PHC-encoded string.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey(
		[]byte(password),
		salt,
		h.params.Time,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether the password matches the encoded hash.
// The comparison is constant-time; parameters are taken from the hash
// itself so old hashes keep verifying after a parameter change.
func (h *Hasher) Verify(password, encodedHash string) (bool, error) {
	p, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(password),
		salt,
		p.Time,
		p.Memory,
		p.Parallelism,
		uint32(len(key)),
	)

	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

func decodeHash(encoded string) (Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != algorithmID {
		return Params{}, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Params{}, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return Params{}, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Parallelism); err != nil {
		return Params{}, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, ErrMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, ErrMalformedHash
	}

	return p, salt, key, nil
}
