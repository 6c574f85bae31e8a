package cnft

import (
	"fmt"
	"strings"
)

// Submit failures reach us as message text, not structured codes, so tree
// creation classifies them by substring. The table is brittle on purpose and
// should be swapped for program error codes if the RPC ever exposes them.
//
//	"0x1"          program-level insufficient funds (custom program error)
//	"insufficient" node-side lamport balance message
//	"blockhash"    the blockhash baked in at build time is no longer recent
var submitFailureMarkers = []struct {
	marker string
	kind   error
}{
	{"0x1", ErrInsufficientFunds},
	{"insufficient", ErrInsufficientFunds},
	{"blockhash", ErrExpiredBlockhash},
}

// classifySubmitFailure maps a submit error onto the taxonomy above. The
// original rpc error stays in the chain for errors.As inspection.
func classifySubmitFailure(err error) error {
	msg := strings.ToLower(err.Error())
	for _, entry := range submitFailureMarkers {
		if strings.Contains(msg, strings.ToLower(entry.marker)) {
			return fmt.Errorf("%w: %w", entry.kind, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrUnknownSubmit, err)
}
