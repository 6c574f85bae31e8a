package cnft

import (
	"github.com/tidwall/gjson"

	"cnft/go-client/pkg/models"
)

// Field extraction from raw DAS responses. The rpc layer hands bodies over
// undecoded; only the fields named here are consumed.

// firstAsset returns the first entry of a getAssetBatch result list. The
// orchestration layer always queries a single id, so the first entry is the
// only one expected.
func firstAsset(raw []byte) (gjson.Result, error) {
	list := gjson.GetBytes(raw, "result")
	if !list.IsArray() {
		return gjson.Result{}, ErrAssetNotFound
	}
	items := list.Array()
	if len(items) == 0 || items[0].Type == gjson.Null {
		return gjson.Result{}, ErrAssetNotFound
	}
	return items[0], nil
}

func assetOwner(asset gjson.Result) string {
	return asset.Get("ownership.owner").String()
}

// assetCompression pulls the compression block out of an asset record. Any
// missing field means the asset is not a compressed asset, or the response is
// malformed; either way the transfer cannot proceed.
func assetCompression(asset gjson.Result) (models.Compression, error) {
	comp := asset.Get("compression")
	if !comp.Exists() {
		return models.Compression{}, ErrNotCompressed
	}
	creatorHash := comp.Get("creator_hash")
	dataHash := comp.Get("data_hash")
	leafID := comp.Get("leaf_id")
	tree := comp.Get("tree")
	if !creatorHash.Exists() || !dataHash.Exists() || !leafID.Exists() || !tree.Exists() {
		return models.Compression{}, ErrNotCompressed
	}
	if creatorHash.String() == "" || dataHash.String() == "" || tree.String() == "" {
		return models.Compression{}, ErrNotCompressed
	}
	return models.Compression{
		CreatorHash: creatorHash.String(),
		DataHash:    dataHash.String(),
		LeafID:      leafID.Uint(),
		Tree:        tree.String(),
	}, nil
}

// assetProof extracts the proof/root pair keyed by asset id from a
// getAssetProofBatch response. Root and path come from the same snapshot and
// are passed through unmodified.
func assetProof(raw []byte, assetID string) (models.AssetProof, error) {
	entry := gjson.GetBytes(raw, "result").Get(assetID)
	if !entry.Exists() || entry.Type == gjson.Null {
		return models.AssetProof{}, ErrProofUnavailable
	}
	root := entry.Get("root")
	proof := entry.Get("proof")
	if !root.Exists() || root.String() == "" || !proof.IsArray() {
		return models.AssetProof{}, ErrProofUnavailable
	}
	path := make([]string, 0, len(proof.Array()))
	for _, node := range proof.Array() {
		path = append(path, node.String())
	}
	return models.AssetProof{Root: root.String(), Proof: path}, nil
}
