package cnft

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cnft/go-client/builder"
	"cnft/go-client/conn"
)

func mintParams() builder.MintParams {
	return builder.MintParams{
		Tree:               "5yVDhnRZbVWkPUQTR8VcdvYmnZdAZRgYrqjgchnNJqCf",
		Name:               "Test Asset",
		Symbol:             "TST",
		URI:                "https://meta.example.test/1.json",
		Creator:            "BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY",
		RoyaltyBasisPoints: 500,
	}
}

func TestMintReturnsSignature(t *testing.T) {
	rpc := &fakeRPC{submitSig: "MINTSIG"}
	b := &fakeBuilder{mintTx: []byte("mint-tx")}
	svc := NewMintService(testDeps(t, rpc, b))

	sig, err := svc.Mint(context.Background(), mintParams())
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if sig != "MINTSIG" {
		t.Fatalf("unexpected signature %q", sig)
	}
	if string(rpc.lastTx) != "mint-tx" {
		t.Fatal("submitted bytes should be the built transaction")
	}
}

func TestMintRequiresInitializedConnection(t *testing.T) {
	svc := NewMintService(Deps{Conn: conn.New(), RPC: &fakeRPC{}, Builder: &fakeBuilder{}})
	if _, err := svc.Mint(context.Background(), mintParams()); !errors.Is(err, conn.ErrNotInitialized) {
		t.Fatalf("want ErrNotInitialized, got %v", err)
	}
}

func TestMintSubmitFailureCarriesParams(t *testing.T) {
	rpc := &fakeRPC{submitErr: errors.New("node rejected")}
	b := &fakeBuilder{mintTx: []byte("mint-tx")}
	svc := NewMintService(testDeps(t, rpc, b))

	_, err := svc.Mint(context.Background(), mintParams())
	var submitErr *SubmitError
	if !errors.As(err, &submitErr) {
		t.Fatalf("want *SubmitError, got %v", err)
	}
	if !strings.Contains(submitErr.Detail, "Test Asset") || !strings.Contains(submitErr.Detail, "TST") {
		t.Fatalf("detail should carry the originating params, got %q", submitErr.Detail)
	}
	if !errors.Is(err, rpc.submitErr) {
		t.Fatal("original submit error should stay in the chain")
	}
}

func TestMintWrapsBuilderFailure(t *testing.T) {
	b := &fakeBuilder{mintErr: errors.New("malformed tree address")}
	rpc := &fakeRPC{}
	svc := NewMintService(testDeps(t, rpc, b))

	_, err := svc.Mint(context.Background(), mintParams())
	var buildErr *builder.BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("want *builder.BuildError, got %v", err)
	}
	if rpc.submitCalls != 0 {
		t.Fatal("nothing should be submitted when the build fails")
	}
}
