// Package wallet handles the signing credential: parsing the base58 secret
// key, deriving the public address, and validating destination addresses.
package wallet

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"strings"

	"github.com/mr-tron/base58/base58"
)

var (
	ErrInvalidSecret  = errors.New("invalid secret key")
	ErrInvalidAddress = errors.New("invalid address")
)

const (
	// Base58 addresses of 32-byte public keys fall in this range.
	minAddressLen = 32
	maxAddressLen = 44
)

// Credential is a signing-capable secret: a 64-byte ed25519 keypair in the
// seed||publickey layout used by ledger wallets. The zero value is invalid.
type Credential struct {
	priv ed25519.PrivateKey
}

// Parse decodes a base58-encoded 64-byte secret key. The embedded public key
// half must match the key derived from the seed half.
func Parse(secret string) (Credential, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return Credential{}, ErrInvalidSecret
	}
	raw, err := base58.Decode(secret)
	if err != nil {
		return Credential{}, ErrInvalidSecret
	}
	if len(raw) != ed25519.PrivateKeySize {
		return Credential{}, ErrInvalidSecret
	}
	priv := ed25519.PrivateKey(append([]byte(nil), raw...))
	derived := ed25519.NewKeyFromSeed(priv.Seed())
	if !bytes.Equal(derived[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return Credential{}, ErrInvalidSecret
	}
	return Credential{priv: priv}, nil
}

func (c Credential) IsZero() bool {
	return len(c.priv) == 0
}

// Address returns the base58 encoding of the credential's public key. This is
// the address the ledger sees as the owner of anything the credential signs.
func (c Credential) Address() string {
	if c.IsZero() {
		return ""
	}
	pub := c.priv.Public().(ed25519.PublicKey)
	return base58.Encode(pub)
}

// Secret re-encodes the full keypair as base58 for handing to a transaction
// builder. Never log the returned value.
func (c Credential) Secret() string {
	if c.IsZero() {
		return ""
	}
	return base58.Encode(c.priv)
}

// ValidateAddress rejects strings that cannot be a base58 public key address:
// empty input, characters outside the base58 alphabet (0, O, I and l are
// excluded by the alphabet), or an implausible length.
func ValidateAddress(addr string) error {
	if addr == "" {
		return ErrInvalidAddress
	}
	if len(addr) < minAddressLen || len(addr) > maxAddressLen {
		return ErrInvalidAddress
	}
	for _, r := range addr {
		if !isBase58Rune(r) {
			return ErrInvalidAddress
		}
	}
	return nil
}

func isBase58Rune(r rune) bool {
	switch {
	case r >= '1' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z':
		return r != 'I' && r != 'O'
	case r >= 'a' && r <= 'z':
		return r != 'l'
	}
	return false
}
