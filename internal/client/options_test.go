package client

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTimeout_LeavesSharedClientUntouched(t *testing.T) {
	shared := &http.Client{Timeout: 30 * time.Second}

	b, err := newBase("http://localhost:8080", WithHTTPClient(shared), WithTimeout(time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, shared.Timeout)
	assert.Equal(t, time.Millisecond, b.httpClient.Timeout)
	assert.NotSame(t, shared, b.httpClient)
}

func TestWithTimeout_OrderIndependent(t *testing.T) {
	shared := &http.Client{}

	b, err := newBase("http://localhost:8080", WithTimeout(time.Millisecond), WithHTTPClient(shared))
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, b.httpClient.Timeout)
	assert.Zero(t, shared.Timeout)
}

func TestWithHTTPClient_KeepsOwnTimeout(t *testing.T) {
	b, err := newBase("http://localhost:8080", WithHTTPClient(&http.Client{Timeout: 3 * time.Second}))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, b.httpClient.Timeout)

	b, err = newBase("http://localhost:8080", WithHTTPClient(http.DefaultClient), WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Zero(t, http.DefaultClient.Timeout)
	assert.Equal(t, time.Second, b.httpClient.Timeout)
}
