package wallet

import (
	"crypto/ed25519"
	"errors"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// FromMnemonic derives a credential from a BIP-39 mnemonic. The first 32
// bytes of the BIP-39 seed become the ed25519 seed, so the same phrase always
// yields the same address.
func FromMnemonic(mnemonic string) (Credential, error) {
	mnemonic = strings.TrimSpace(mnemonic)
	if mnemonic == "" {
		return Credential{}, ErrInvalidMnemonic
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return Credential{}, ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, "")
	priv := ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])
	return Credential{priv: priv}, nil
}

// NewMnemonic generates a fresh 24-word mnemonic for a new credential.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// ValidateMnemonic reports whether the phrase is a well-formed BIP-39 mnemonic.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(strings.TrimSpace(mnemonic))
}
