package cnft

import (
	"context"
	"fmt"
	"log/slog"

	"cnft/go-client/builder"
)

// MintService mints compressed assets into an existing tree.
type MintService struct {
	deps Deps
	log  *slog.Logger
}

func NewMintService(deps Deps) *MintService {
	return &MintService{deps: deps, log: deps.logger()}
}

// Mint builds and submits a mint transaction and returns the signature.
// Parameters are passed through opaque; the builder enforces address and
// metadata validity. Submission failures come back as *SubmitError with the
// originating parameters attached for diagnostics.
func (s *MintService) Mint(ctx context.Context, p builder.MintParams) (string, error) {
	cred, err := s.deps.Conn.Credential()
	if err != nil {
		return "", err
	}

	tx, err := s.deps.Builder.BuildMint(cred, p)
	if err != nil {
		return "", asBuildError("mint", err)
	}

	signature, err := s.deps.RPC.Submit(ctx, tx)
	if err != nil {
		submitErr := &SubmitError{
			Op:     "mint",
			Detail: fmt.Sprintf("tree=%s name=%q symbol=%q uri=%s royalty_bp=%d", p.Tree, p.Name, p.Symbol, p.URI, p.RoyaltyBasisPoints),
			Cause:  err,
		}
		s.log.Warn("mint submit failed", "tree", p.Tree, "error", submitErr.Error())
		return "", submitErr
	}

	s.log.Info("asset minted", "tree", p.Tree)
	return signature, nil
}
