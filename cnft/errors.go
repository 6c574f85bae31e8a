package cnft

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrNotOwner         = errors.New("credential does not own the asset")
	ErrProofUnavailable = errors.New("asset proof unavailable")
	ErrNotCompressed    = errors.New("asset is not a compressed asset")

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrExpiredBlockhash  = errors.New("blockhash expired")
	ErrUnknownSubmit     = errors.New("unclassified submit failure")
)

// SubmitError is a submission failure wrapped with the context that produced
// it. Detail carries diagnostics (asset id, mint parameters) and guidance on
// the likely cause; Cause is the rpc-layer error untouched.
type SubmitError struct {
	Op     string
	Detail string
	Cause  error
}

func (e *SubmitError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s submit failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s submit failed (%s): %v", e.Op, e.Detail, e.Cause)
}

func (e *SubmitError) Unwrap() error {
	return e.Cause
}
