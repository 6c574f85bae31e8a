// Package builder defines the transaction-building capability the
// orchestration layer depends on. Implementations encode and sign the
// ledger-native instructions; this package owns only the contract.
package builder

import (
	"cnft/go-client/wallet"
)

// Program addresses and tree geometry the reference builder is wired for.
// Implementations are expected to honor these unless told otherwise.
const (
	BubblegumProgram = "BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY"
	NoopProgram      = "noopb9bkMVfRPU8AsbpTUg8AQkHtKwMYZiFUjNRtMmV"

	TreeMaxDepth      = 14
	TreeMaxBufferSize = 64
)

// CreateTreeResult carries the serialized transaction plus the address the
// builder assigned to the new Merkle tree. The address is decided at build
// time, not by the submission response.
type CreateTreeResult struct {
	Tx   []byte
	Tree string
}

type MintParams struct {
	Tree   string
	Name   string
	Symbol string
	URI    string
	// Creator receives the royalty share expressed in basis points.
	Creator            string
	RoyaltyBasisPoints uint16
}

type TransferParams struct {
	To          string
	AssetID     string
	LeafID      uint64
	DataHash    string
	CreatorHash string
	// Root and Proof must come from the same proof query, unmodified.
	Root  string
	Proof []string
	Tree  string
}

// Builder encodes and signs domain instructions. Implementations are expected
// to be deterministic apart from signing randomness and the blockhash they
// pick up; each Build* call fetches a fresh blockhash, which is why a failed
// submission requires a rebuild rather than a resend.
type Builder interface {
	BuildCreateTree(cred wallet.Credential) (CreateTreeResult, error)
	BuildMint(cred wallet.Credential, p MintParams) ([]byte, error)
	BuildTransfer(cred wallet.Credential, p TransferParams) ([]byte, error)
}

// BuildError wraps any failure inside a Builder implementation. The
// orchestration layer never interprets builder internals beyond this.
type BuildError struct {
	Op    string
	Cause error
}

func (e *BuildError) Error() string {
	return "build " + e.Op + " failed: " + e.Cause.Error()
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
