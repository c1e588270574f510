package megaverse

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/megaverse-builder/internal/apperror"
	"github.com/rocketscienceinc/megaverse-builder/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCandidateID = "6a1c24e3-d2d3-4936-bf58-a49c1eeec715"

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]any
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest

	status int
	body   string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	var body map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone(), Body: body})
	f.mu.Unlock()

	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(f.body))
}

func (f *fakeAPI) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedRequest(nil), f.requests...)
}

type countingLimiter struct {
	calls int
}

func (l *countingLimiter) Wait(ctx context.Context) error {
	l.calls++
	return ctx.Err()
}

func newTestClient(t *testing.T, api *fakeAPI) (*Client, *countingLimiter) {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	limiter := &countingLimiter{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := New(logger, Config{
		BaseURL:     server.URL + "/api/",
		CandidateID: testCandidateID,
		Timeout:     5 * time.Second,
	}, limiter).WithHTTPClient(server.Client())

	return client, limiter
}

func TestClient_GetGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the goal grid", func(t *testing.T) {
		// Given: an API that serves a 2x2 goal
		api := &fakeAPI{status: http.StatusOK, body: `{"goal":[["SPACE","POLYANET"],["RED_SOLOON","UP_COMETH"]]}`}
		client, limiter := newTestClient(t, api)

		// When: the goal is fetched
		grid, err := client.GetGoal(ctx)

		// Then: the grid is decoded from the goal field of a GET on the candidate map
		require.NoError(t, err)
		assert.Equal(t, entity.Grid{{"SPACE", "POLYANET"}, {"RED_SOLOON", "UP_COMETH"}}, grid)
		require.Len(t, api.recorded(), 1)
		assert.Equal(t, http.MethodGet, api.recorded()[0].Method)
		assert.Equal(t, "/api/map/"+testCandidateID+"/goal", api.recorded()[0].Path)
		assert.Equal(t, 1, limiter.calls)
	})

	t.Run("Non-OK status fails", func(t *testing.T) {
		// Given: an API that rejects the candidate
		api := &fakeAPI{status: http.StatusNotFound, body: `{"error":true,"message":"candidate not found"}`}
		client, _ := newTestClient(t, api)

		// When: the goal is fetched
		grid, err := client.GetGoal(ctx)

		// Then: ErrUnexpectedStatus carries the body
		require.ErrorIs(t, err, apperror.ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "candidate not found")
		assert.Nil(t, grid)
	})

	t.Run("Malformed body fails", func(t *testing.T) {
		api := &fakeAPI{status: http.StatusOK, body: `not json`}
		client, _ := newTestClient(t, api)

		grid, err := client.GetGoal(ctx)

		require.Error(t, err)
		assert.Nil(t, grid)
	})

	t.Run("Body without goal field fails", func(t *testing.T) {
		api := &fakeAPI{status: http.StatusOK, body: `{"map":[]}`}
		client, _ := newTestClient(t, api)

		grid, err := client.GetGoal(ctx)

		require.ErrorIs(t, err, errMissingGoal)
		assert.Nil(t, grid)
	})
}

func TestClient_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Polyanet sends candidate, row and column", func(t *testing.T) {
		// Given: an API that accepts everything
		api := &fakeAPI{status: http.StatusOK, body: `{}`}
		client, limiter := newTestClient(t, api)

		// When: a polyanet is created
		outcome, err := client.CreatePolyanet(ctx, 2, 8)

		// Then: a JSON POST reaches the polyanets endpoint
		require.NoError(t, err)
		assert.True(t, outcome.OK())
		require.Len(t, api.recorded(), 1)

		request := api.recorded()[0]
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/api/polyanets", request.Path)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
		assert.Equal(t, map[string]any{"candidateId": testCandidateID, "row": float64(2), "column": float64(8)}, request.Body)
		assert.Equal(t, 1, limiter.calls)
	})

	t.Run("Soloon color is lower-cased", func(t *testing.T) {
		api := &fakeAPI{status: http.StatusOK, body: `{}`}
		client, _ := newTestClient(t, api)

		_, err := client.CreateSoloon(ctx, 1, 0, "RED")

		require.NoError(t, err)
		require.Len(t, api.recorded(), 1)
		assert.Equal(t, "/api/soloons", api.recorded()[0].Path)
		assert.Equal(t, map[string]any{"candidateId": testCandidateID, "row": float64(1), "column": float64(0), "color": "red"}, api.recorded()[0].Body)
	})

	t.Run("Cometh direction is lower-cased", func(t *testing.T) {
		api := &fakeAPI{status: http.StatusOK, body: `{}`}
		client, _ := newTestClient(t, api)

		_, err := client.CreateCometh(ctx, 2, 1, "Up")

		require.NoError(t, err)
		require.Len(t, api.recorded(), 1)
		assert.Equal(t, "/api/comeths", api.recorded()[0].Path)
		assert.Equal(t, map[string]any{"candidateId": testCandidateID, "row": float64(2), "column": float64(1), "direction": "up"}, api.recorded()[0].Body)
	})

	t.Run("Non-OK status is an outcome, not an error", func(t *testing.T) {
		// Given: an API that rate limits the caller
		api := &fakeAPI{status: http.StatusTooManyRequests, body: `Too Many Requests`}
		client, _ := newTestClient(t, api)

		// When: a polyanet is created
		outcome, err := client.CreatePolyanet(ctx, 0, 0)

		// Then: the outcome reports the failure with the raw body
		require.NoError(t, err)
		assert.False(t, outcome.OK())
		assert.Equal(t, http.StatusTooManyRequests, outcome.StatusCode)
		assert.Equal(t, "Too Many Requests", outcome.Body)
	})

	t.Run("Unreachable API is an error", func(t *testing.T) {
		// Given: a client pointing at a closed server
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		client := New(logger, Config{BaseURL: server.URL, CandidateID: testCandidateID, Timeout: time.Second}, &countingLimiter{})

		// When: a polyanet is created
		_, err := client.CreatePolyanet(ctx, 0, 0)

		// Then: the transport error is returned
		require.Error(t, err)
	})

	t.Run("Cancelled context stops before sending", func(t *testing.T) {
		api := &fakeAPI{status: http.StatusOK, body: `{}`}
		client, _ := newTestClient(t, api)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := client.CreatePolyanet(cancelled, 0, 0)

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, api.recorded())
	})
}
