package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testOptions 把等待和超时压到毫秒级，重试预算保持缺省的 2
func testOptions(baseURL string) Options {
	return Options{
		BaseURL:      baseURL,
		Timeout:      2 * time.Second,
		ProbeTimeout: 500 * time.Millisecond,
		RetryCount:   2,
		RetryWait:    5 * time.Millisecond,
	}
}

func TestFetchEvents_RetriesThenSucceeds(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&attempts, 1)
		if n <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[{"id":"ev-1","category":"安全隐患","status":"0"}]}`))
	}))
	defer srv.Close()

	c := NewEventsClient(testOptions(srv.URL), zap.NewNop())
	events, err := c.FetchEvents(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ev-1", events[0].ID)
	// 失败两次后第三次成功：预算 2 刚好够用
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestFetchEvents_ExhaustsRetryBudget(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewEventsClient(testOptions(srv.URL), zap.NewNop())
	_, err := c.FetchEvents(context.Background(), "")

	require.Error(t, err)
	// 首次 + 2 次重试 = 3 次请求
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestFetchEvents_ForwardsAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[]}`))
	}))
	defer srv.Close()

	c := NewEventsClient(testOptions(srv.URL), zap.NewNop())
	events, err := c.FetchEvents(context.Background(), "Bearer t-1")

	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, "Bearer t-1", gotAuth)
}

func TestFetchEvents_MissingEventsFieldIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewEventsClient(testOptions(srv.URL), zap.NewNop())
	_, err := c.FetchEvents(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestDeleteImage_PassesThroughUpstreamOutcome(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/events-db/ev-1/images/m-2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"image not found"}`))
	}))
	defer srv.Close()

	c := NewEventsClient(testOptions(srv.URL), zap.NewNop())
	res, err := c.DeleteImage(context.Background(), "ev-1", "m-2")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.JSONEq(t, `{"detail":"image not found"}`, string(res.Body))
	// 删除不重试，上游拒绝是终态
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestDeleteImage_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 直接关掉，模拟连不上

	c := NewEventsClient(testOptions(srv.URL), zap.NewNop())
	_, err := c.DeleteImage(context.Background(), "ev-1", "m-2")
	assert.Error(t, err)
}

func TestProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[]}`))
	}))
	defer srv.Close()

	c := NewEventsClient(testOptions(srv.URL), zap.NewNop())
	code, err := c.Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)

	srv.Close()
	_, err = c.Probe(context.Background())
	assert.Error(t, err)
}
