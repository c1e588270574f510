package megaverse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rocketscienceinc/megaverse-builder/internal/apperror"
	"github.com/rocketscienceinc/megaverse-builder/internal/entity"
)

var errMissingGoal = errors.New("response has no goal field")

type limiter interface {
	Wait(ctx context.Context) error
}

type Config struct {
	BaseURL     string
	CandidateID string
	Timeout     time.Duration
}

// Client talks to the megaverse REST API on behalf of a single candidate.
type Client struct {
	logger  *slog.Logger
	http    *http.Client
	limiter limiter

	baseURL     string
	candidateID string
}

func New(logger *slog.Logger, conf Config, limiter limiter) *Client {
	return &Client{
		logger:  logger.With("component", "megaverse-client"),
		http:    &http.Client{Timeout: conf.Timeout},
		limiter: limiter,

		baseURL:     strings.TrimRight(conf.BaseURL, "/"),
		candidateID: conf.CandidateID,
	}
}

// WithHTTPClient - replaces the underlying HTTP client, used by tests.
func (that *Client) WithHTTPClient(client *http.Client) *Client {
	that.http = client
	return that
}

// GetGoal - fetches the goal map of the candidate.
func (that *Client) GetGoal(ctx context.Context) (entity.Grid, error) {
	endpoint := fmt.Sprintf("%s/map/%s/goal", that.baseURL, url.PathEscape(that.candidateID))

	outcome, err := that.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goal: %w", err)
	}

	if !outcome.OK() {
		return nil, fmt.Errorf("%w: goal returned %d: %s", apperror.ErrUnexpectedStatus, outcome.StatusCode, outcome.Body)
	}

	var response goalResponse
	if err = json.Unmarshal([]byte(outcome.Body), &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal goal: %w", err)
	}

	if response.Goal == nil {
		return nil, fmt.Errorf("failed to unmarshal goal: %w", errMissingGoal)
	}

	return response.Goal, nil
}

func (that *Client) CreatePolyanet(ctx context.Context, row, column int) (entity.Outcome, error) {
	return that.create(ctx, polyanetsEndpoint, createRequest{
		Row:    row,
		Column: column,
	})
}

func (that *Client) CreateSoloon(ctx context.Context, row, column int, color string) (entity.Outcome, error) {
	return that.create(ctx, soloonsEndpoint, createRequest{
		Row:    row,
		Column: column,
		Color:  strings.ToLower(color),
	})
}

func (that *Client) CreateCometh(ctx context.Context, row, column int, direction string) (entity.Outcome, error) {
	return that.create(ctx, comethsEndpoint, createRequest{
		Row:       row,
		Column:    column,
		Direction: strings.ToLower(direction),
	})
}

func (that *Client) create(ctx context.Context, endpoint string, payload createRequest) (entity.Outcome, error) {
	payload.CandidateID = that.candidateID

	body, err := json.Marshal(payload)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to marshal %s request: %w", endpoint, err)
	}

	outcome, err := that.do(ctx, http.MethodPost, that.baseURL+"/"+endpoint, body)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to create %s: %w", endpoint, err)
	}

	return outcome, nil
}

// do - sends one request through the limiter and reads the whole response.
func (that *Client) do(ctx context.Context, method, endpoint string, body []byte) (entity.Outcome, error) {
	log := that.logger.With("method", method, "url", endpoint)

	if err := that.limiter.Wait(ctx); err != nil {
		return entity.Outcome{}, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := that.http.Do(req)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug("received response", "status", resp.StatusCode)

	return entity.Outcome{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}, nil
}
