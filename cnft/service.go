// Package cnft orchestrates the compressed-NFT workflows: tree creation,
// minting and transfer. Services are stateless between invocations; the only
// shared state is the injected connection context.
package cnft

import (
	"context"
	"log/slog"

	"cnft/go-client/builder"
	"cnft/go-client/conn"
	"cnft/go-client/internal/platform/secretlog"
)

// RPCClient is the slice of the rpc client the workflows need. A test double
// can stand in without touching orchestration logic.
type RPCClient interface {
	Submit(ctx context.Context, tx []byte) (string, error)
	GetAssetBatch(ctx context.Context, ids []string) ([]byte, error)
	GetAssetProofBatch(ctx context.Context, ids []string) ([]byte, error)
}

// Deps are the injected collaborators every workflow shares.
type Deps struct {
	Conn    *conn.Context
	RPC     RPCClient
	Builder builder.Builder
	Logger  *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return slog.New(secretlog.Wrap(logger.Handler()))
}
