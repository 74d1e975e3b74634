package predict

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimind/unimind/internal/store"
	"github.com/unimind/unimind/internal/survey"
)

func testClient(serverURL string) *Client {
	cfg := DefaultConfig()
	cfg.BaseURL = serverURL
	return NewClient(cfg)
}

func TestScoreSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]float64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/predict", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_, _ = w.Write([]byte(`{"prediction":1,"probability_positive":0.82,"probability_negative":0.18}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	result, err := client.Score(context.Background(), survey.DefaultForm(), "token-123")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Prediction)
	assert.InDelta(t, 0.82, result.ProbabilityPositive, 1e-9)
	assert.InDelta(t, 0.18, result.ProbabilityNegative, 1e-9)
	assert.Equal(t, "Bearer token-123", gotAuth)

	// The outbound payload uses the service's field names.
	assert.Contains(t, gotBody, "Stress_Level")
	assert.Contains(t, gotBody, "GPA")
	assert.Len(t, gotBody, 9)
}

func TestScoreOmitsAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"prediction":0,"probability_positive":0.1,"probability_negative":0.9}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Score(context.Background(), survey.DefaultForm(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestScoreServerError(t *testing.T) {
	t.Run("with error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"missing required field"}`))
		}))
		defer server.Close()

		_, err := testClient(server.URL).Score(context.Background(), survey.DefaultForm(), "")
		var serverErr *ErrServer
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, http.StatusBadRequest, serverErr.StatusCode)
		assert.Equal(t, "missing required field", serverErr.Message)
	})

	t.Run("without error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}))
		defer server.Close()

		_, err := testClient(server.URL).Score(context.Background(), survey.DefaultForm(), "")
		var serverErr *ErrServer
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, "Server error occurred", serverErr.Message)
	})
}

func TestScoreSchemaError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"missing fields", `{"prediction":1}`},
		{"wrong types", `{"prediction":"yes","probability_positive":0.5,"probability_negative":0.5}`},
		{"out of range", `{"prediction":1,"probability_positive":1.5,"probability_negative":0.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := testClient(server.URL).Score(context.Background(), survey.DefaultForm(), "")
			var schemaErr *ErrSchema
			require.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestScoreTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"prediction":0,"probability_positive":0.1,"probability_negative":0.9}`))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	cfg.Timeout = 20 * time.Millisecond
	client := NewClient(cfg)

	_, err := client.Score(context.Background(), survey.DefaultForm(), "")
	var timeoutErr *ErrTimeout
	require.ErrorAs(t, err, &timeoutErr)
}

func TestScoreNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	_, err := testClient(server.URL).Score(context.Background(), survey.DefaultForm(), "")
	var netErr *ErrNetwork
	require.ErrorAs(t, err, &netErr)
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/health", r.URL.Path)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		status := testClient(server.URL).Health(context.Background())
		assert.Equal(t, StatusOK, status.Status)
	})

	t.Run("offline on connection failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		status := testClient(server.URL).Health(context.Background())
		assert.Equal(t, StatusOffline, status.Status)
	})

	t.Run("offline on non-200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		status := testClient(server.URL).Health(context.Background())
		assert.Equal(t, StatusOffline, status.Status)
	})
}

type fakeEventRepo struct {
	events []store.PredictionEventData
	err    error
}

func (f *fakeEventRepo) AppendPrediction(_ context.Context, data store.PredictionEventData) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, data)
	return nil
}

func TestLoggingScorerRecordsEvents(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockScorer(
		MockScore{Result: &Result{Prediction: 1, ProbabilityPositive: 0.75, ProbabilityNegative: 0.25}},
		MockScore{Err: &ErrNetwork{Err: errors.New("refused")}},
	)
	scorer := WithLogging(mock, "https://api.unimind.app/api/predict", repo)

	_, err := scorer.Score(context.Background(), survey.DefaultForm(), "")
	require.NoError(t, err)

	_, err = scorer.Score(context.Background(), survey.DefaultForm(), "")
	require.Error(t, err)

	require.Len(t, repo.events, 2)
	assert.True(t, repo.events[0].Success)
	assert.Equal(t, "Very High", repo.events[0].RiskLevel)
	assert.Equal(t, "https://api.unimind.app/api/predict", repo.events[0].Endpoint)
	assert.False(t, repo.events[1].Success)
	assert.NotEmpty(t, repo.events[1].ErrorMessage)
	assert.Empty(t, repo.events[1].RiskLevel)
}

func TestLoggingScorerSurvivesRepoFailure(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("db closed")}
	mock := NewMockScorer(MockScore{Result: &Result{ProbabilityPositive: 0.1, ProbabilityNegative: 0.9}})
	scorer := WithLogging(mock, "endpoint", repo)

	res, err := scorer.Score(context.Background(), survey.DefaultForm(), "")
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestMockScorerFIFO(t *testing.T) {
	mock := NewMockScorer(
		MockScore{Result: &Result{Prediction: 1, ProbabilityPositive: 0.8, ProbabilityNegative: 0.2}},
		MockScore{Err: &ErrTimeout{Err: errors.New("deadline")}},
	)

	res, err := mock.Score(context.Background(), survey.DefaultForm(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Prediction)

	_, err = mock.Score(context.Background(), survey.DefaultForm(), "t2")
	var timeoutErr *ErrTimeout
	require.ErrorAs(t, err, &timeoutErr)

	// Exhausted queue degrades to a network error.
	_, err = mock.Score(context.Background(), survey.DefaultForm(), "")
	var netErr *ErrNetwork
	require.ErrorAs(t, err, &netErr)

	assert.Equal(t, 3, mock.CallCount())
	assert.Equal(t, "t1", mock.Calls[0].Token)
}
