package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinflow/internal/domain"
)

func newTestClient(endpoint string) *Client {
	return NewClient(Config{
		Endpoint: endpoint,
		Model:    "gpt-4o-mini",
		APIKey:   "test-key",
	})
}

func chatBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(b)
}

func TestGenerate_ParsesStrictJSON(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, chatBody(`{"title":"10 Cozy Kitchens","description":"Warm ideas for small spaces.","alt_text":"A bright kitchen with wooden shelves"}`))
	}))
	defer srv.Close()

	md, err := newTestClient(srv.URL).Generate(context.Background(), Request{
		ArticleTitle:   "Cozy Kitchens",
		ArticleContent: "<p>content</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "10 Cozy Kitchens", md.Title)
	assert.Equal(t, "Warm ideas for small spaces.", md.Description)
	assert.Equal(t, "A bright kitchen with wooden shelves", md.AltText)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestGenerate_NonJSONContentFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatBody("Sure! Here is a title for your pin:"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), Request{})

	var ue *domain.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Message, "did not return JSON")
}

func TestGenerate_PartialMetadataFails(t *testing.T) {
	// Missing alt_text: the response is not partially accepted.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatBody(`{"title":"T","description":"D"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), Request{})

	var ue *domain.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Message, "incomplete")
}

func TestGenerate_UpstreamErrorCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), Request{})

	var ue *domain.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Message, "rate limited")
}

func TestGenerate_FeedbackReachesPrompt(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotPrompt = payload.Messages[len(payload.Messages)-1].Content
		fmt.Fprint(w, chatBody(`{"title":"T","description":"D","alt_text":"A"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), Request{
		Feedback: "make it shorter",
	})
	require.NoError(t, err)
	assert.Contains(t, gotPrompt, "make it shorter")
}

func TestGenerate_Misconfigured(t *testing.T) {
	c := NewClient(Config{})
	_, err := c.Generate(context.Background(), Request{})
	assert.Error(t, err)
}
