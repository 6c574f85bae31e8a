package conn

import "cnft/go-client/wallet"

// The original library keeps one connection per node process. The default
// Context mirrors that; code that wants isolation (tests, embedders running
// several endpoints) should construct its own Context and inject it.
var defaultContext = New()

// Default returns the process-wide Context.
func Default() *Context {
	return defaultContext
}

// Initialize initializes the process-wide Context.
func Initialize(credential wallet.Credential, endpoint string) error {
	return defaultContext.Initialize(credential, endpoint)
}

// Credential reads the credential from the process-wide Context.
func Credential() (wallet.Credential, error) {
	return defaultContext.Credential()
}

// Endpoint reads the endpoint from the process-wide Context.
func Endpoint() (string, error) {
	return defaultContext.Endpoint()
}
