// package judge0 is the HTTP adapter for the external batch code runner.
package judge0

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"gitlab.com/algoarena.net/internal/config"
	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	"gitlab.com/algoarena.net/internal/domain"
	"gitlab.com/algoarena.net/internal/static/errs"
)

const pollFields = "status_id,stdout,stderr,compile_output,time,memory"

var _ secondary.RunnerClient = (*Client)(nil)

// Client submits and polls batches against a Judge0-compatible endpoint.
// Every call is bounded by the configured timeout; a timeout is a transport
// failure, never a verdict.
type Client struct {
	cfg        *config.Judge0Config
	httpClient *http.Client
	logger     primary.Logger
}

func NewClient(cfg *config.Judge0Config, logger primary.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type wireUnit struct {
	SourceCode     string `json:"source_code"`
	LanguageID     int    `json:"language_id"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output"`
}

type wireBatch struct {
	Submissions []wireUnit `json:"submissions"`
}

type wireToken struct {
	Token string `json:"token"`
}

type wireResult struct {
	StatusID      int     `json:"status_id"`
	Stdout        *string `json:"stdout"`
	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compile_output"`
	Time          *string `json:"time"`
	Memory        *int    `json:"memory"`
}

type wirePoll struct {
	Submissions []wireResult `json:"submissions"`
}

// SubmitBatch posts the batch and returns one handle per unit, preserving
// unit order. Any transport or non-2xx failure maps to RunnerUnavailable;
// the caller decides whether retrying is safe.
func (c *Client) SubmitBatch(ctx context.Context, req domain.BatchRequest) ([]domain.ExecutionHandle, error) {
	payload := wireBatch{Submissions: make([]wireUnit, len(req.Units))}
	for i, u := range req.Units {
		payload.Submissions[i] = wireUnit{
			SourceCode:     u.SourceCode,
			LanguageID:     u.LanguageID,
			Stdin:          u.Stdin,
			ExpectedOutput: u.ExpectedOutput,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch payload: %w", err)
	}

	endpoint := c.cfg.BaseURL + "/submissions/batch?base64_encoded=true"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build batch request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Runner batch submit failed", "error", err)
		return nil, fmt.Errorf("%w: %v", errs.RunnerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Runner batch submit rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", errs.RunnerUnavailable, resp.StatusCode)
	}

	var tokens []wireToken
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		c.logger.Error("Failed to decode runner tokens", "error", err)
		return nil, fmt.Errorf("%w: %v", errs.RunnerUnavailable, err)
	}

	if len(tokens) != len(req.Units) {
		return nil, fmt.Errorf("%w: runner returned %d handles for %d units",
			errs.RunnerUnavailable, len(tokens), len(req.Units))
	}

	handles := make([]domain.ExecutionHandle, len(tokens))
	for i, t := range tokens {
		handles[i] = domain.ExecutionHandle{Token: t.Token}
	}
	return handles, nil
}

// PollBatch fetches the current status of every handle, preserving handle
// order. A failed poll leaves the caller free to retry later; nothing is
// consumed on the runner side.
func (c *Client) PollBatch(ctx context.Context, handles []domain.ExecutionHandle) ([]domain.RawResult, error) {
	tokens := make([]string, len(handles))
	for i, h := range handles {
		tokens[i] = h.Token
	}

	query := url.Values{}
	query.Set("tokens", strings.Join(tokens, ","))
	query.Set("base64_encoded", "true")
	query.Set("fields", pollFields)
	endpoint := c.cfg.BaseURL + "/submissions/batch?" + query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build poll request: %w", err)
	}
	c.setAuthHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Runner batch poll failed", "error", err)
		return nil, fmt.Errorf("%w: %v", errs.RunnerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Runner batch poll rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", errs.RunnerUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.RunnerUnavailable, err)
	}

	var poll wirePoll
	if err := json.Unmarshal(raw, &poll); err != nil {
		c.logger.Error("Failed to decode runner poll response", "error", err)
		return nil, fmt.Errorf("%w: %v", errs.RunnerUnavailable, err)
	}

	if len(poll.Submissions) != len(handles) {
		return nil, fmt.Errorf("%w: runner returned %d results for %d handles",
			errs.RunnerUnavailable, len(poll.Submissions), len(handles))
	}

	results := make([]domain.RawResult, len(poll.Submissions))
	for i, r := range poll.Submissions {
		results[i] = domain.RawResult{
			StatusID:      r.StatusID,
			Stdout:        decodeField(r.Stdout),
			Stderr:        decodeField(r.Stderr),
			CompileOutput: decodeField(r.CompileOutput),
			Time:          r.Time,
			Memory:        r.Memory,
		}
	}
	return results, nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	if c.cfg.APIKey != "" {
		req.Header.Set("x-rapidapi-key", c.cfg.APIKey)
	}
	if c.cfg.APIHost != "" {
		req.Header.Set("x-rapidapi-host", c.cfg.APIHost)
	}
}

// decodeField base64-decodes an optional wire field. A value that does not
// decode is passed through untouched rather than dropped.
func decodeField(field *string) *string {
	if field == nil {
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(*field))
	if err != nil {
		return field
	}
	s := string(decoded)
	return &s
}
