package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BrokerIdentity is the profile payload the OAuth broker returns for a
// transient session id.
type BrokerIdentity struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// BrokerClient talks to the external OAuth broker that turns the transient
// session id from the login redirect into a verified identity.
type BrokerClient struct {
	url        string
	httpClient *http.Client
}

// NewBrokerClient creates a broker client for the given session-data URL.
func NewBrokerClient(url string) *BrokerClient {
	return &BrokerClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Exchange resolves a transient session id to the authenticated identity.
// Any failure (transport, non-200, bad payload) is returned as an error;
// callers surface it as an authentication failure without broker internals.
func (c *BrokerClient) Exchange(ctx context.Context, sessionID string) (*BrokerIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("broker returned status %d", resp.StatusCode)
	}

	var identity BrokerIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, err
	}
	if identity.Email == "" {
		return nil, fmt.Errorf("broker response missing email")
	}

	return &identity, nil
}
