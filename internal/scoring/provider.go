package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Scores are the externally computed per-item signals this core consumes:
// an ML-predicted effectiveness score and a fairness-risk (bias) score,
// both in [0,1].
type Scores struct {
	Effectiveness float64 `json:"effectiveness_score"`
	Bias          float64 `json:"bias_score"`
}

// Provider is the effectiveness/bias scoring collaborator. A slow or
// unavailable provider must never block a selection decision: callers wrap
// lookups in a short timeout and fall back to the item's catalog values.
type Provider interface {
	ItemScores(ctx context.Context, itemID string) (Scores, error)
}

// DefaultLookupTimeout bounds a single provider lookup.
const DefaultLookupTimeout = 150 * time.Millisecond

// HTTPProvider fetches scores from the scoring service over HTTP.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a provider for the scoring service at baseURL.
// The HTTP client carries its own overall timeout as a second line of
// defense behind the per-lookup context deadline.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ItemScores fetches the scores for one item id.
func (p *HTTPProvider) ItemScores(ctx context.Context, itemID string) (Scores, error) {
	u := fmt.Sprintf("%s/v1/items/%s/scores", p.baseURL, url.PathEscape(itemID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Scores{}, fmt.Errorf("build scores request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Scores{}, fmt.Errorf("fetch scores for %s: %w", itemID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Scores{}, fmt.Errorf("scoring service returned %d for %s", resp.StatusCode, itemID)
	}

	var s Scores
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return Scores{}, fmt.Errorf("decode scores for %s: %w", itemID, err)
	}
	return s, nil
}

// StaticProvider serves scores from a fixed map. Used by tests and the
// simulation harness.
type StaticProvider struct {
	ByID map[string]Scores
	Err  error
}

// ItemScores returns the configured scores, or an error when the id is
// unknown or the provider is configured to fail.
func (p *StaticProvider) ItemScores(ctx context.Context, itemID string) (Scores, error) {
	if p.Err != nil {
		return Scores{}, p.Err
	}
	s, ok := p.ByID[itemID]
	if !ok {
		return Scores{}, fmt.Errorf("no scores for item %s", itemID)
	}
	return s, nil
}
