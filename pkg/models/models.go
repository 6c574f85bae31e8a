package models

// AssetRecord is the slice of a DAS asset lookup the transfer flow needs.
// It is rebuilt from the RPC response on every transfer attempt and never cached.
type AssetRecord struct {
	ID          string      `json:"id"`
	Owner       string      `json:"owner"`
	Compression Compression `json:"compression"`
}

type Compression struct {
	CreatorHash string `json:"creator_hash"`
	DataHash    string `json:"data_hash"`
	LeafID      uint64 `json:"leaf_id"`
	Tree        string `json:"tree"`
}

// AssetProof is a snapshot of the Merkle path for one asset. Root and Proof
// come from the same query response; the pair is only valid together and can
// be invalidated by any tree mutation that lands before submission.
type AssetProof struct {
	Root  string   `json:"root"`
	Proof []string `json:"proof"`
}

// TreeResult is the outcome of a successful tree creation: the address the
// builder assigned to the new Merkle tree and the submission signature.
type TreeResult struct {
	Tree      string `json:"tree"`
	Signature string `json:"signature"`
}
