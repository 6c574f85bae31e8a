// Package rpc is the JSON-RPC client for the configured node endpoint:
// transaction submission plus the batched DAS asset and proof queries.
// It classifies failures into typed errors and never retries.
package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cnft/go-client/internal/platform/ratelimiter"
	"cnft/go-client/internal/platform/secretlog"
)

const (
	methodSendTransaction    = "sendTransaction"
	methodGetAssetBatch      = "getAssetBatch"
	methodGetAssetProofBatch = "getAssetProofBatch"

	defaultTimeout = 30 * time.Second

	maxResponseBytes int64 = 4 << 20 // 4 MiB
)

type Config struct {
	Endpoint string
	// Timeout bounds every call including body read; defaults to 30s. The
	// protocol itself defines no deadline, so the transport must.
	Timeout time.Duration
	// RPS/Burst enable a per-method client-side token bucket when both are
	// set. Zero values disable limiting.
	RPS    float64
	Burst  int
	Logger *slog.Logger
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *ratelimiter.MethodLimiter
	logger     *slog.Logger
}

func New(cfg Config) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, ErrInvalidEndpoint
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    ratelimiter.New(cfg.RPS, cfg.Burst),
		logger:     slog.New(secretlog.Wrap(logger.Handler())),
	}, nil
}

// Submit sends serialized transaction bytes via sendTransaction and returns
// the signature from the result field.
func (c *Client) Submit(ctx context.Context, tx []byte) (string, error) {
	params := []any{
		base64.StdEncoding.EncodeToString(tx),
		map[string]string{"encoding": "base64"},
	}
	result, _, err := c.call(ctx, methodSendTransaction, 1, params)
	if err != nil {
		return "", err
	}
	var signature string
	if err := json.Unmarshal(result, &signature); err != nil {
		return "", ErrMalformedResponse
	}
	return signature, nil
}

// GetAssetBatch runs a DAS getAssetBatch query and returns the decoded JSON
// body unmodified for the caller to pick fields out of.
func (c *Client) GetAssetBatch(ctx context.Context, ids []string) ([]byte, error) {
	_, raw, err := c.call(ctx, methodGetAssetBatch, "test", map[string][]string{"ids": ids})
	return raw, err
}

// GetAssetProofBatch runs a DAS getAssetProofBatch query; same contract as
// GetAssetBatch.
func (c *Client) GetAssetProofBatch(ctx context.Context, ids []string) ([]byte, error) {
	_, raw, err := c.call(ctx, methodGetAssetProofBatch, "test", map[string][]string{"ids": ids})
	return raw, err
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// call performs one HTTP POST and classifies the outcome. On success it
// returns both the result field and the full response body.
func (c *Client) call(ctx context.Context, method string, id any, params any) (json.RawMessage, []byte, error) {
	started := time.Now()
	result, raw, err := c.doCall(ctx, method, id, params)
	requestDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
	requestsTotal.WithLabelValues(method, classifyOutcome(err)).Inc()
	if err != nil {
		c.logger.Warn("rpc call failed",
			"method", method, "latency_ms", time.Since(started).Milliseconds(), "error", err.Error())
	} else {
		c.logger.Debug("rpc call ok",
			"method", method, "latency_ms", time.Since(started).Milliseconds())
	}
	return result, raw, err
}

func (c *Client) doCall(ctx context.Context, method string, id any, params any) (json.RawMessage, []byte, error) {
	if !c.limiter.Allow(method, time.Now()) {
		return nil, nil, ErrRateLimited
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, nil, &NetworkError{Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, &HTTPError{Status: resp.StatusCode, Body: string(raw)}
	}

	var decoded rpcResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, nil, ErrMalformedResponse
	}
	if len(decoded.Error) > 0 && string(decoded.Error) != "null" {
		return nil, nil, &PayloadError{Payload: decoded.Error}
	}
	return decoded.Result, raw, nil
}

func classifyOutcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	var (
		httpErr    *HTTPError
		payloadErr *PayloadError
		netErr     *NetworkError
	)
	switch {
	case errors.As(err, &httpErr):
		return outcomeHTTP
	case errors.As(err, &payloadErr):
		return outcomePayload
	case errors.As(err, &netErr):
		return outcomeNetwork
	case errors.Is(err, ErrMalformedResponse):
		return outcomeMalformed
	case errors.Is(err, ErrRateLimited):
		return outcomeLimited
	}
	return "error"
}
