package httpjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "hindidrill/internal/platform/errors"
)

// maxBody caps how much of a response body is decoded.
const maxBody = 8 << 20

// Get issues a GET for url and decodes the JSON body into out. Any non-2xx
// status is reported as *apperrors.StatusError.
func Get(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return &apperrors.StatusError{URL: url, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
