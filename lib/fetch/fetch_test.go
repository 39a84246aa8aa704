package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/dictionary/apple", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>apple</body></html>"))
	})
	mux.HandleFunc("/dictionary/zzznotaword", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/dictionary/blocked", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/dictionary/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second * 2)
		w.Write([]byte("too late"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestGetClassification(t *testing.T) {
	server := testServer(t)
	client, err := NewClient(ClientOptions{Timeout: time.Millisecond * 500})
	require.NoError(t, err)

	ctx := context.Background()

	page, err := client.get(ctx, server.URL+"/dictionary/apple")
	require.NoError(t, err)
	require.Contains(t, string(page.Body), "apple")

	_, err = client.get(ctx, server.URL+"/dictionary/zzznotaword")
	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, ErrorNotFound, ferr.Kind)
	require.Equal(t, 404, ferr.Status)

	_, err = client.get(ctx, server.URL+"/dictionary/blocked")
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, ErrorBlocked, ferr.Kind)

	_, err = client.get(ctx, server.URL+"/dictionary/slow")
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, ErrorTimeout, ferr.Kind)
}

func TestGetNetworkFailure(t *testing.T) {
	client, err := NewClient(ClientOptions{Timeout: time.Second})
	require.NoError(t, err)

	// a port nothing is listening on
	_, err = client.get(context.Background(), "http://127.0.0.1:1/dictionary/apple")
	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	require.Contains(t, []ErrorKind{ErrorNetwork, ErrorTimeout}, ferr.Kind)
}

func TestBrowserHeaders(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("user-agent")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{UserAgent: "Mozilla/5.0 test-browser"})
	require.NoError(t, err)

	_, err = client.get(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "Mozilla/5.0 test-browser", gotUserAgent)
}
