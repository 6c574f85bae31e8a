package cnft

import (
	"context"
	"errors"
	"log/slog"

	"cnft/go-client/builder"
	"cnft/go-client/pkg/models"
)

// TreeService creates Merkle trees for compressed assets.
type TreeService struct {
	deps Deps
	log  *slog.Logger
}

func NewTreeService(deps Deps) *TreeService {
	return &TreeService{deps: deps, log: deps.logger()}
}

// CreateTree builds, signs and submits a tree-creation transaction. The
// returned tree address is the one assigned at build time; the submission
// response only contributes the signature. A failed submission is classified
// (insufficient funds, expired blockhash, unknown) and the whole sequence
// must be restarted by the caller: a fresh build picks up a fresh blockhash.
func (s *TreeService) CreateTree(ctx context.Context) (models.TreeResult, error) {
	cred, err := s.deps.Conn.Credential()
	if err != nil {
		return models.TreeResult{}, err
	}

	built, err := s.deps.Builder.BuildCreateTree(cred)
	if err != nil {
		return models.TreeResult{}, asBuildError("create_tree", err)
	}

	signature, err := s.deps.RPC.Submit(ctx, built.Tx)
	if err != nil {
		classified := classifySubmitFailure(err)
		s.log.Warn("tree creation submit failed", "tree", built.Tree, "error", classified.Error())
		return models.TreeResult{}, classified
	}

	s.log.Info("tree created", "tree", built.Tree)
	return models.TreeResult{Tree: built.Tree, Signature: signature}, nil
}

// asBuildError guarantees builder failures surface as *builder.BuildError
// regardless of how the implementation reported them.
func asBuildError(op string, err error) error {
	var buildErr *builder.BuildError
	if errors.As(err, &buildErr) {
		return err
	}
	return &builder.BuildError{Op: op, Cause: err}
}
