// Package client calls the extraction and chat endpoints the way the UI does:
// blank input and empty vendor lists never reach the network, extraction
// failures become an ExtractionError with retry guidance and chat failures
// become a fixed apology.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github/itish2003/eventvendors/models"
)

const (
	// ExtractionFailedMessage is shown when extraction cannot be completed.
	ExtractionFailedMessage = "Unable to analyze the text. Retry or enter the details manually."
	// NoVendorsMessage answers chat questions asked before any vendor is saved.
	NoVendorsMessage = "You haven't saved any vendors yet. Add some to get started!"
	// ChatFailedMessage replaces the answer when the chat request fails.
	ChatFailedMessage = "Sorry, something went wrong while processing your request."
)

// ExtractionError is returned by Extract for every transport or backend failure.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string { return ExtractionFailedMessage }

func (e *ExtractionError) Unwrap() error { return e.Err }

// Client talks to the AI endpoints of a vendor book backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for baseURL. A nil httpClient gets one without a timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Extract sends rawText to /api/extract. Blank text returns (nil, nil) without a request.
func (c *Client) Extract(ctx context.Context, rawText string) (*models.ExtractionResponse, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, nil
	}

	var result models.ExtractionResponse
	if err := c.post(ctx, "/api/extract", models.ExtractRequest{Text: rawText}, &result); err != nil {
		log.Printf("CLIENT: Extraction failed: %v", err)
		return nil, &ExtractionError{Err: err}
	}
	return &result, nil
}

// Chat asks /api/chat about vendors. It never fails: an empty list and any
// error are answered with fixed messages.
func (c *Client) Chat(ctx context.Context, query string, vendors []models.Vendor) string {
	if len(vendors) == 0 {
		return NoVendorsMessage
	}

	var result models.ChatResponse
	if err := c.post(ctx, "/api/chat", models.NewChatRequest(query, vendors), &result); err != nil {
		log.Printf("CLIENT: Chat failed: %v", err)
		return ChatFailedMessage
	}
	return result.Response
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s returned status %d, body: %s", path, resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
