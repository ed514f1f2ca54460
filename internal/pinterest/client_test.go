package pinterest

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

func TestAuthCodeURL_CarriesState(t *testing.T) {
	c := NewClient(Config{
		ClientID:    "client-1",
		RedirectURL: "https://app.example.com/pinterest/callback",
	})

	u := c.AuthCodeURL("csrf-token-123")
	assert.Contains(t, u, "state=csrf-token-123")
	assert.Contains(t, u, "client_id=client-1")
}

func TestExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.Form.Get("grant_type"))
		assert.Equal(t, "the-code", r.Form.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"at-1","refresh_token":"rt-1","token_type":"bearer","expires_in":3600}`)
	}))
	defer srv.Close()

	c := NewClient(Config{ClientID: "id", ClientSecret: "secret", TokenURL: srv.URL})

	token, err := c.Exchange(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "at-1", token.AccessToken)
	assert.Equal(t, "rt-1", token.RefreshToken)
}

func TestExchange_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(Config{ClientID: "id", ClientSecret: "secret", TokenURL: srv.URL})

	_, err := c.Exchange(context.Background(), "bad-code")
	var ue *domain.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "pinterest oauth", ue.Service)
}

func TestPublish(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pins", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "board-9", payload["board_id"])
		media := payload["media_source"].(map[string]any)
		assert.Equal(t, "image_url", media["source_type"])

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"817239"}`)
	}))
	defer srv.Close()

	c := NewClient(Config{APIBase: srv.URL})

	res, err := c.Publish(context.Background(), "token-1", PublishRequest{
		BoardID:  "board-9",
		Title:    "A pin",
		MediaURL: "https://cdn.example.com/a.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "817239", res.PinID)
	assert.Equal(t, "https://www.pinterest.com/pin/817239/", res.URL)
}

func TestPublish_UpstreamMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"code":403,"message":"Board not accessible"}`)
	}))
	defer srv.Close()

	c := NewClient(Config{APIBase: srv.URL})

	_, err := c.Publish(context.Background(), "token-1", PublishRequest{BoardID: "b"})
	var ue *domain.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "Board not accessible", ue.Message)
}

func TestPublish_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c := NewClient(Config{APIBase: srv.URL})
	_, err := c.Publish(context.Background(), "t", PublishRequest{})
	assert.Error(t, err)
}
