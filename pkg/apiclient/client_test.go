package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

type capturedRequest struct {
	method      string
	path        string
	query       map[string][]string
	header      http.Header
	body        []byte
	contentType string
}

// captureServer records the request and replies with the given status and
// JSON body.
func captureServer(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.Query()
		captured.header = r.Header.Clone()
		captured.contentType = r.Header.Get("Content-Type")
		captured.body, _ = io.ReadAll(r.Body)

		if response != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func newClient(t *testing.T, baseURL string, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()
	client, err := apiclient.New(baseURL, opts...)
	require.NoError(t, err)
	return client
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	t.Parallel()

	withSlash := newClient(t, "http://localhost:5000/api/")
	withoutSlash := newClient(t, "http://localhost:5000/api")

	assert.Equal(t, "http://localhost:5000/api/", withSlash.BaseURL())
	assert.Equal(t, "http://localhost:5000/api/", withoutSlash.BaseURL())
}

func TestNew_RejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := apiclient.New("")
	assert.Error(t, err)

	_, err = apiclient.New("ftp://example.com")
	assert.Error(t, err)
}

func TestDo_DefaultsToGETWithoutContentType(t *testing.T) {
	t.Parallel()

	server, captured := captureServer(t, http.StatusOK, `{}`)
	client := newClient(t, server.URL)

	_, err := client.Do(context.Background(), apiclient.Request{Path: "/tickets"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Empty(t, captured.contentType)
	assert.Equal(t, "application/json", captured.header.Get("Accept"))
	assert.NotEmpty(t, captured.header.Get("X-Request-ID"))
}

func TestDo_LeadingSlashesStripped(t *testing.T) {
	t.Parallel()

	server, captured := captureServer(t, http.StatusOK, `{}`)
	client := newClient(t, server.URL+"/api")

	_, err := client.Do(context.Background(), apiclient.Request{Path: "//tickets/7"})
	require.NoError(t, err)

	assert.Equal(t, "/api/tickets/7", captured.path)
}

func TestDo_QueryParams(t *testing.T) {
	t.Parallel()

	server, captured := captureServer(t, http.StatusOK, `[]`)
	client := newClient(t, server.URL)

	_, err := client.Do(context.Background(), apiclient.Request{
		Path: "/tickets",
		Params: map[string]any{
			"status":     2,
			"search":     "printer down",
			"escalated":  true,
			"customerId": nil,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, captured.query["status"])
	assert.Equal(t, []string{"printer down"}, captured.query["search"])
	assert.Equal(t, []string{"true"}, captured.query["escalated"])
	_, present := captured.query["customerId"]
	assert.False(t, present, "nil params must be omitted, not sent empty")
}

func TestDo_JSONBodySerializedExactly(t *testing.T) {
	t.Parallel()

	server, captured := captureServer(t, http.StatusCreated, `{"id":1}`)
	client := newClient(t, server.URL)

	payload := map[string]any{"email": "a@b.com", "password": "secret"}
	_, err := client.Do(context.Background(), apiclient.Request{
		Path:   "/auth/login",
		Method: http.MethodPost,
		Body:   payload,
	})
	require.NoError(t, err)

	expected, _ := json.Marshal(payload)
	assert.JSONEq(t, string(expected), string(captured.body))
	assert.Equal(t, "application/json", captured.contentType)
}

func TestDo_ExplicitContentTypeWins(t *testing.T) {
	t.Parallel()

	server, captured := captureServer(t, http.StatusOK, `{}`)
	client := newClient(t, server.URL)

	header := http.Header{}
	header.Set("Content-Type", "application/vnd.helpdesk+json")
	_, err := client.Do(context.Background(), apiclient.Request{
		Path:   "/tickets",
		Method: http.MethodPost,
		Body:   map[string]string{"title": "x"},
		Header: header,
	})
	require.NoError(t, err)

	assert.Equal(t, "application/vnd.helpdesk+json", captured.contentType)
}

func TestDo_MultipartBodyPassedThrough(t *testing.T) {
	t.Parallel()

	server, captured := captureServer(t, http.StatusOK, `{}`)
	client := newClient(t, server.URL)

	form := apiclient.NewFormData()
	require.NoError(t, form.AddField("userId", "7"))
	require.NoError(t, form.AddFile("file", "crash.log", strings.NewReader("stack trace")))

	_, err := client.Do(context.Background(), apiclient.Request{
		Path:   "/attachments/upload/42",
		Method: http.MethodPost,
		Body:   form,
	})
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(captured.contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	assert.NotEmpty(t, params["boundary"])
	assert.Contains(t, string(captured.body), "stack trace")
	assert.Contains(t, string(captured.body), `filename="crash.log"`)
}

func TestDo_RawReaderBodyNotForcedToJSON(t *testing.T) {
	t.Parallel()

	server, captured := captureServer(t, http.StatusOK, `{}`)
	client := newClient(t, server.URL)

	_, err := client.Do(context.Background(), apiclient.Request{
		Path:   "/attachments/raw",
		Method: http.MethodPost,
		Body:   strings.NewReader("binary-ish bytes"),
	})
	require.NoError(t, err)

	assert.Empty(t, captured.contentType)
	assert.Equal(t, "binary-ish bytes", string(captured.body))
}

func TestDo_BearerTokenInjection(t *testing.T) {
	t.Parallel()

	server, captured := captureServer(t, http.StatusOK, `{}`)
	client := newClient(t, server.URL, apiclient.WithTokenProvider(func() (string, bool) {
		return "abc123", true
	}))

	_, err := client.Do(context.Background(), apiclient.Request{Path: "/auth/me"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", captured.header.Get("Authorization"))
}

func TestDo_NoTokenNoAuthorizationHeader(t *testing.T) {
	t.Parallel()

	server, captured := captureServer(t, http.StatusOK, `{}`)
	client := newClient(t, server.URL)

	_, err := client.Do(context.Background(), apiclient.Request{Path: "/health"})
	require.NoError(t, err)

	assert.Empty(t, captured.header.Get("Authorization"))
}

func TestSetTokenProvider_NextCallSeesSwap(t *testing.T) {
	t.Parallel()

	server, captured := captureServer(t, http.StatusOK, `{}`)
	client := newClient(t, server.URL)

	_, err := client.Do(context.Background(), apiclient.Request{Path: "/tickets"})
	require.NoError(t, err)
	assert.Empty(t, captured.header.Get("Authorization"))

	client.SetTokenProvider(func() (string, bool) { return "fresh", true })

	_, err = client.Do(context.Background(), apiclient.Request{Path: "/tickets"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh", captured.header.Get("Authorization"))
}

func TestDo_ServerMessageWinsInErrorEnvelope(t *testing.T) {
	t.Parallel()

	server, _ := captureServer(t, http.StatusUnauthorized, `{"message":"token expired"}`)
	client := newClient(t, server.URL)

	_, err := client.Do(context.Background(), apiclient.Request{Path: "/auth/me"})
	require.Error(t, err)

	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "token expired", apiErr.Message)
	assert.JSONEq(t, `{"message":"token expired"}`, string(apiErr.Details))
	assert.True(t, apiclient.IsAuthError(err))
}

func TestDo_StatusTextFallbackWhenNoServerMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	client := newClient(t, server.URL)

	_, err := client.Do(context.Background(), apiclient.Request{Path: "/tickets/999"})
	require.Error(t, err)

	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Not Found", apiErr.Message)
	assert.Empty(t, apiErr.Details)
	assert.True(t, apiclient.IsNotFound(err))
}

func TestDo_UnparseableJSONYieldsNilPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("this is not json"))
	}))
	t.Cleanup(server.Close)
	client := newClient(t, server.URL)

	payload, err := client.Do(context.Background(), apiclient.Request{Path: "/tickets"})
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestDo_NonJSONResponseYieldsNilPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>warning page</html>"))
	}))
	t.Cleanup(server.Close)
	client := newClient(t, server.URL)

	payload, err := client.Do(context.Background(), apiclient.Request{Path: "/health"})
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestDo_TransportFailure(t *testing.T) {
	t.Parallel()

	// A closed server guarantees a connection error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	client := newClient(t, server.URL)

	_, err := client.Do(context.Background(), apiclient.Request{Path: "/tickets"})
	require.Error(t, err)

	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "request failed", apiErr.Message)
	assert.Empty(t, apiErr.Details)
}

func TestCall_DecodesTypedPayload(t *testing.T) {
	t.Parallel()

	server, _ := captureServer(t, http.StatusOK, `{"id":7,"fullName":"Amy Lee"}`)
	client := newClient(t, server.URL)

	type user struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
	}

	got, err := apiclient.Call[user](context.Background(), client, apiclient.Request{Path: "/auth/me"})
	require.NoError(t, err)
	assert.Equal(t, user{ID: 7, FullName: "Amy Lee"}, got)
}

func TestCall_EmptyPayloadZeroValue(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)
	client := newClient(t, server.URL)

	got, err := apiclient.Call[map[string]string](context.Background(), client, apiclient.Request{
		Path:   "/attachments/5",
		Method: http.MethodDelete,
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}
