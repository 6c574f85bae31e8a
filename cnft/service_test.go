package cnft

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"testing"

	"github.com/mr-tron/base58/base58"

	"cnft/go-client/builder"
	"cnft/go-client/conn"
	"cnft/go-client/wallet"
)

type fakeRPC struct {
	submitSig string
	submitErr error
	assetBody []byte
	assetErr  error
	proofBody []byte
	proofErr  error

	submitCalls int
	assetCalls  int
	proofCalls  int
	lastTx      []byte
}

func (f *fakeRPC) Submit(ctx context.Context, tx []byte) (string, error) {
	f.submitCalls++
	f.lastTx = append([]byte(nil), tx...)
	if f.submitErr != nil {
		return "", f.submitErr
	}
	return f.submitSig, nil
}

func (f *fakeRPC) GetAssetBatch(ctx context.Context, ids []string) ([]byte, error) {
	f.assetCalls++
	if f.assetErr != nil {
		return nil, f.assetErr
	}
	return f.assetBody, nil
}

func (f *fakeRPC) GetAssetProofBatch(ctx context.Context, ids []string) ([]byte, error) {
	f.proofCalls++
	if f.proofErr != nil {
		return nil, f.proofErr
	}
	return f.proofBody, nil
}

type fakeBuilder struct {
	treeResult  builder.CreateTreeResult
	treeErr     error
	mintTx      []byte
	mintErr     error
	transferTx  []byte
	transferErr error

	lastTransfer builder.TransferParams
}

func (f *fakeBuilder) BuildCreateTree(cred wallet.Credential) (builder.CreateTreeResult, error) {
	if f.treeErr != nil {
		return builder.CreateTreeResult{}, f.treeErr
	}
	return f.treeResult, nil
}

func (f *fakeBuilder) BuildMint(cred wallet.Credential, p builder.MintParams) ([]byte, error) {
	if f.mintErr != nil {
		return nil, f.mintErr
	}
	return f.mintTx, nil
}

func (f *fakeBuilder) BuildTransfer(cred wallet.Credential, p builder.TransferParams) ([]byte, error) {
	f.lastTransfer = p
	if f.transferErr != nil {
		return nil, f.transferErr
	}
	return f.transferTx, nil
}

func testCredential(t *testing.T, seedByte byte) wallet.Credential {
	t.Helper()
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = seedByte
	}
	priv := ed25519.NewKeyFromSeed(seed)
	cred, err := wallet.Parse(base58.Encode(priv))
	if err != nil {
		t.Fatalf("parse test credential: %v", err)
	}
	return cred
}

func testDeps(t *testing.T, rpc *fakeRPC, b *fakeBuilder) Deps {
	t.Helper()
	ctx := conn.New()
	if err := ctx.Initialize(testCredential(t, 7), "https://rpc.example.test"); err != nil {
		t.Fatalf("initialize connection: %v", err)
	}
	return Deps{Conn: ctx, RPC: rpc, Builder: b}
}

func assetBodyJSON(assetID, owner string) []byte {
	return fmt.Appendf(nil, `{
		"jsonrpc": "2.0",
		"id": "test",
		"result": [{
			"id": %q,
			"ownership": {"owner": %q},
			"compression": {
				"creator_hash": "6YdZ6b9aL1gLuWzkSDn55VZDnTwK9nWyHYbLLRZ8tG3Q",
				"data_hash": "8vLQu9XFDAbQwMvHTtBY4DP1jmLwkyincPJkUkEkYuAK",
				"leaf_id": 42,
				"tree": "5yVDhnRZbVWkPUQTR8VcdvYmnZdAZRgYrqjgchnNJqCf"
			}
		}]
	}`, assetID, owner)
}

func proofBodyJSON(assetID string) []byte {
	return fmt.Appendf(nil, `{
		"jsonrpc": "2.0",
		"id": "test",
		"result": {%q: {
			"root": "3S8qoStXMhfUkNfLADjhb7sQcX6qQQbnMwyMLZiBz8Cj",
			"proof": [
				"2h5Yz5hbuhyVtBYbzQ1V1FY9sRqxYDZ4V5zrZDy71BqJ",
				"4dJqTgAJhnrYnHkP5TrEJSyvQpzseKkzzDJ6ZDvMCW8p"
			]
		}}
	}`, assetID)
}
