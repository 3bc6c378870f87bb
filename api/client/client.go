package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/ion-oset/electorate-vanadium-core/api/codec"
	"github.com/ion-oset/electorate-vanadium-core/api/common"
)

var Logger = common.GetLogger("client")

// Client talks to the data server's HTTP API. Requests are distributed
// round-robin over the configured endpoints and retried on connection
// errors.
//
// Thread-safety: a Client is safe for concurrent use.
type Client struct {
	config  common.ClientConfig
	codec   codec.ICodec
	client  *http.Client
	urls    []*url.URL
	counter uint32
}

// NewClient creates a client for the given endpoints. The codec must match
// the one the server was started with.
func NewClient(config common.ClientConfig, c codec.ICodec) (*Client, error) {
	if len(config.Endpoints) == 0 {
		return nil, fmt.Errorf("at least one endpoint is required")
	}

	// Parse each server URL
	parsedURLs := make([]*url.URL, len(config.Endpoints))
	for i, server := range config.Endpoints {
		parsedURL, err := url.Parse(server)
		if err != nil {
			return nil, err
		}
		parsedURLs[i] = parsedURL
	}

	connsPerEndpoint := config.ConnectionsPerEndpoint
	if connsPerEndpoint < 1 {
		connsPerEndpoint = 1
	}

	timeout := time.Duration(config.TimeoutSecond) * time.Second

	// Create client with pooled transport
	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: connsPerEndpoint,
			IdleConnTimeout:     timeout,
		},
		Timeout: timeout,
	}

	return &Client{
		config: config,
		codec:  c,
		client: httpClient,
		urls:   parsedURLs,
	}, nil
}

// --------------------------------------------------------------------------
// Store Operations
// --------------------------------------------------------------------------

// Lookup returns the value stored under key in the dataset. The boolean
// reports whether the key was present.
func (c *Client) Lookup(dataset, key string) ([]byte, bool, error) {
	resp, err := c.invoke(dataset, common.NewLookupRequest(key))
	if err != nil {
		return nil, false, err
	}
	return resp.Value, resp.Ok, nil
}

// Insert stores value under key, never overwriting. An empty key asks the
// server to generate one. It returns the effective key, with false if the
// key was already taken.
func (c *Client) Insert(dataset, key string, value []byte) (string, bool, error) {
	resp, err := c.invoke(dataset, common.NewInsertRequest(key, value))
	if err != nil {
		return "", false, err
	}
	return resp.Key, resp.Ok, nil
}

// Update replaces the value under an existing key and returns the new
// value, with false if the key was absent. It never creates entries.
func (c *Client) Update(dataset, key string, value []byte) ([]byte, bool, error) {
	resp, err := c.invoke(dataset, common.NewUpdateRequest(key, value))
	if err != nil {
		return nil, false, err
	}
	return resp.Value, resp.Ok, nil
}

// Upsert stores value under key unconditionally and returns the effective
// key. An empty key asks the server to generate one.
func (c *Client) Upsert(dataset, key string, value []byte) (string, error) {
	resp, err := c.invoke(dataset, common.NewUpsertRequest(key, value))
	if err != nil {
		return "", err
	}
	return resp.Key, nil
}

// Remove deletes the entry under key and returns the removed value, with
// false if the key was absent.
func (c *Client) Remove(dataset, key string) ([]byte, bool, error) {
	resp, err := c.invoke(dataset, common.NewRemoveRequest(key))
	if err != nil {
		return nil, false, err
	}
	return resp.Value, resp.Ok, nil
}

// Keys returns a snapshot of all keys in the dataset.
func (c *Client) Keys(dataset string) ([]string, error) {
	resp, err := c.invoke(dataset, common.NewKeysRequest())
	if err != nil {
		return nil, err
	}
	return resp.Keys, nil
}

// Values returns a snapshot of all values in the dataset.
func (c *Client) Values(dataset string) ([][]byte, error) {
	resp, err := c.invoke(dataset, common.NewValuesRequest())
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// --------------------------------------------------------------------------
// Service Operations
// --------------------------------------------------------------------------

// Healthy checks the health endpoint of the next endpoint in round-robin
// order.
func (c *Client) Healthy() error {
	idx := atomic.AddUint32(&c.counter, 1) % uint32(len(c.urls))
	resp, err := c.client.Get(c.urls[idx].String() + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http error: %s", resp.Status)
	}
	return nil
}

// Close releases idle connections. The client must not be used afterwards.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// invoke sends one request message to a dataset and returns the decoded
// response. It checks for protocol-level errors and that the response type
// echoes the request type.
func (c *Client) invoke(dataset string, req *common.Message) (*common.Message, error) {
	// Encode the request
	reqBytes, err := c.codec.Encode(*req)
	if err != nil {
		return nil, err
	}

	// Select the next endpoint via round-robin
	idx := atomic.AddUint32(&c.counter, 1) % uint32(len(c.urls))
	requestURL := fmt.Sprintf("%s/%s", c.urls[idx].String(), url.PathEscape(dataset))

	// Send the request with retries. Each attempt consumes the body
	// reader, so the request is rebuilt per try.
	attempts := c.config.RetryCount
	if attempts < 1 {
		attempts = 1
	}

	var httpResponse *http.Response
	for i := 0; i < attempts; i++ {
		var httpRequest *http.Request
		httpRequest, err = http.NewRequest(http.MethodPost, requestURL, bytes.NewReader(reqBytes))
		if err != nil {
			return nil, err
		}
		httpRequest.Header.Set("Content-Type", c.codec.ContentType())

		httpResponse, err = c.client.Do(httpRequest)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := httpResponse.Body.Close(); err != nil {
			Logger.Errorf("Failed to close response body: %v", err)
		}
	}()

	// Check if the response status code is OK
	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http error: %s", httpResponse.Status)
	}

	// Read the response body
	respBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, err
	}

	// Decode the response
	resp := &common.Message{}
	if err := c.codec.Decode(respBytes, resp); err != nil {
		return nil, fmt.Errorf("client: failed to decode response: %s", err)
	}

	// Check if the response is an error response
	if resp.MsgType == common.MsgTError || resp.Err != "" {
		return nil, fmt.Errorf("client: server error: %s", resp.Err)
	}

	// Check if the type of the response is the expected type
	if resp.MsgType != req.MsgType {
		return nil, fmt.Errorf("client: unexpected message type: %s, expected %s", resp.MsgType, req.MsgType)
	}

	return resp, nil
}
