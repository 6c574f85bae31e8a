// Package conn holds the process-wide connection state: the signing
// credential and the RPC endpoint it pairs with. The state is write-once;
// changing either value requires a fresh process lifetime.
package conn

import (
	"errors"
	"net/url"
	"strings"
	"sync"

	"cnft/go-client/wallet"
)

var (
	ErrNotInitialized     = errors.New("connection is not initialized")
	ErrAlreadyInitialized = errors.New("connection is already initialized")
	ErrInvalidEndpoint    = errors.New("invalid rpc endpoint")
)

// Context carries one credential + endpoint pair. Initialization is mutually
// exclusive across concurrent first-callers: exactly one succeeds, the rest
// get ErrAlreadyInitialized. Reads after a successful Initialize see an
// immutable snapshot.
type Context struct {
	mu          sync.RWMutex
	initialized bool
	credential  wallet.Credential
	endpoint    string
}

func New() *Context {
	return &Context{}
}

// Initialize stores the credential and endpoint. It succeeds exactly once per
// Context; any later call fails and leaves the original values untouched.
func (c *Context) Initialize(credential wallet.Credential, endpoint string) error {
	if credential.IsZero() {
		return wallet.ErrInvalidSecret
	}
	if err := validateEndpoint(endpoint); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return ErrAlreadyInitialized
	}
	c.credential = credential
	c.endpoint = strings.TrimSpace(endpoint)
	c.initialized = true
	return nil
}

func (c *Context) Credential() (wallet.Credential, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return wallet.Credential{}, ErrNotInitialized
	}
	return c.credential, nil
}

func (c *Context) Endpoint() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return "", ErrNotInitialized
	}
	return c.endpoint, nil
}

func validateEndpoint(endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return ErrInvalidEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return ErrInvalidEndpoint
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidEndpoint
	}
	return nil
}
