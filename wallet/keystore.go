package wallet

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Passphrase-encrypted envelope for keeping a credential at rest. The secret
// key never touches disk in the clear.

const (
	keystoreVersion = 1
	keystoreSalt    = 16
	keystorePrefix  = "CNFTKS1\n"
)

var (
	ErrKeystoreAuthFailed = errors.New("keystore authentication failed")
	ErrKeystoreInvalid    = errors.New("keystore envelope is invalid")
)

type keystoreEnvelope struct {
	Version     uint32 `json:"version"`
	KDF         string `json:"kdf"`
	KDFTime     uint32 `json:"kdf_time"`
	KDFMemoryKB uint32 `json:"kdf_memory_kb"`
	KDFThreads  uint8  `json:"kdf_threads"`
	Salt        []byte `json:"salt"`
	Nonce       []byte `json:"nonce"`
	Ciphertext  []byte `json:"ciphertext"`
}

// EncryptCredential seals a credential under a passphrase (argon2id +
// XChaCha20-Poly1305) and returns the serialized envelope.
func EncryptCredential(cred Credential, passphrase string) ([]byte, error) {
	if cred.IsZero() {
		return nil, ErrInvalidSecret
	}
	if strings.TrimSpace(passphrase) == "" {
		return nil, ErrKeystoreInvalid
	}

	salt := make([]byte, keystoreSalt)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key := keystoreKey(passphrase, salt)
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	plaintext := []byte(cred.Secret())
	defer zeroBytes(plaintext)
	env := keystoreEnvelope{
		Version:     keystoreVersion,
		KDF:         "argon2id",
		KDFTime:     2,
		KDFMemoryKB: 64 * 1024,
		KDFThreads:  1,
		Salt:        salt,
		Nonce:       nonce,
		Ciphertext:  aead.Seal(nil, nonce, plaintext, nil),
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	return append([]byte(keystorePrefix), raw...), nil
}

// DecryptCredential opens an envelope produced by EncryptCredential. A wrong
// passphrase is reported as ErrKeystoreAuthFailed, not as a malformed secret.
func DecryptCredential(data []byte, passphrase string) (Credential, error) {
	if !strings.HasPrefix(string(data), keystorePrefix) {
		return Credential{}, ErrKeystoreInvalid
	}
	var env keystoreEnvelope
	if err := json.Unmarshal(data[len(keystorePrefix):], &env); err != nil {
		return Credential{}, ErrKeystoreInvalid
	}
	if env.Version != keystoreVersion || env.KDF != "argon2id" {
		return Credential{}, ErrKeystoreInvalid
	}
	if len(env.Nonce) != chacha20poly1305.NonceSizeX {
		return Credential{}, ErrKeystoreInvalid
	}
	key := keystoreKey(passphrase, env.Salt)
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return Credential{}, err
	}
	plaintext, err := aead.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return Credential{}, ErrKeystoreAuthFailed
	}
	defer zeroBytes(plaintext)
	return Parse(string(plaintext))
}

func keystoreKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 2, 64*1024, 1, chacha20poly1305.KeySize)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
