package cnft

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cnft/go-client/builder"
	"cnft/go-client/wallet"
)

// TransferService moves a compressed asset to a new owner. One call walks
// the whole verification protocol: validate arguments, fetch the asset
// record, verify ownership, fetch the Merkle proof, build and submit. Nothing
// is cached between calls; a failed transfer is restarted from scratch so
// that asset state and proof are re-fetched, never reused.
type TransferService struct {
	deps Deps
	log  *slog.Logger
}

func NewTransferService(deps Deps) *TransferService {
	return &TransferService{deps: deps, log: deps.logger()}
}

// Transfer sends the asset to toAddress and returns the submission signature.
//
// The proof/root pair fetched mid-flow is a snapshot: any tree mutation that
// lands between the proof query and the submission invalidates it. Such a
// race surfaces as *SubmitError; the caller retries by calling Transfer
// again, which re-reads everything.
func (s *TransferService) Transfer(ctx context.Context, assetID, toAddress string) (string, error) {
	// Argument checks fail fast, before any network call.
	if strings.TrimSpace(assetID) == "" {
		return "", fmt.Errorf("%w: asset id is empty", ErrInvalidArgument)
	}
	if err := wallet.ValidateAddress(toAddress); err != nil {
		return "", fmt.Errorf("%w: destination address", ErrInvalidArgument)
	}
	cred, err := s.deps.Conn.Credential()
	if err != nil {
		return "", err
	}

	rawAsset, err := s.deps.RPC.GetAssetBatch(ctx, []string{assetID})
	if err != nil {
		return "", fmt.Errorf("fetch asset %s: %w", assetID, err)
	}
	asset, err := firstAsset(rawAsset)
	if err != nil {
		return "", fmt.Errorf("asset %s: %w", assetID, err)
	}

	// Ownership is checked before the proof query to save the round trip.
	if assetOwner(asset) != cred.Address() {
		s.log.Warn("transfer rejected", "asset_id", assetID, "owner", assetOwner(asset))
		return "", fmt.Errorf("asset %s: %w", assetID, ErrNotOwner)
	}

	rawProof, err := s.deps.RPC.GetAssetProofBatch(ctx, []string{assetID})
	if err != nil {
		return "", fmt.Errorf("fetch proof for %s: %w", assetID, err)
	}
	proof, err := assetProof(rawProof, assetID)
	if err != nil {
		return "", fmt.Errorf("asset %s: %w", assetID, err)
	}
	comp, err := assetCompression(asset)
	if err != nil {
		return "", fmt.Errorf("asset %s: %w", assetID, err)
	}

	tx, err := s.deps.Builder.BuildTransfer(cred, builder.TransferParams{
		To:          toAddress,
		AssetID:     assetID,
		LeafID:      comp.LeafID,
		DataHash:    comp.DataHash,
		CreatorHash: comp.CreatorHash,
		Root:        proof.Root,
		Proof:       proof.Proof,
		Tree:        comp.Tree,
	})
	if err != nil {
		return "", asBuildError("transfer", err)
	}

	signature, err := s.deps.RPC.Submit(ctx, tx)
	if err != nil {
		submitErr := &SubmitError{
			Op:     "transfer",
			Detail: fmt.Sprintf("asset=%s; possible causes: insufficient funds, proof went stale since fetch, concurrent transfer of the same asset", assetID),
			Cause:  err,
		}
		s.log.Warn("transfer submit failed", "asset_id", assetID, "error", err.Error())
		return "", submitErr
	}

	s.log.Info("asset transferred", "asset_id", assetID, "to", toAddress)
	return signature, nil
}
