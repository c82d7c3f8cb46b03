package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConversationOpensWithWelcome(t *testing.T) {
	svc := NewService(&MockProvider{}, discard())
	msgs := svc.Messages("tok")
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.NotEmpty(t, msgs[0].Text)
}

func TestSendAppendsImageBubble(t *testing.T) {
	mock := &MockProvider{Result: Image{Data: []byte{1, 2, 3}, MimeType: "image/png"}}
	svc := NewService(mock, discard())

	msgs := svc.Send(context.Background(), "tok", "draw a cat", nil)
	require.Len(t, msgs, 3) // welcome, user, bot
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, "draw a cat", msgs[1].Text)
	assert.Equal(t, RoleBot, msgs[2].Role)
	assert.True(t, strings.HasPrefix(msgs[2].ImageURL, "data:image/png;base64,"))

	require.Len(t, mock.Requests, 1)
	assert.Equal(t, "draw a cat", mock.Requests[0].Prompt)
}

func TestSendFailureAppendsErrorBubble(t *testing.T) {
	mock := &MockProvider{Err: errors.New("quota exceeded")}
	svc := NewService(mock, discard())

	msgs := svc.Send(context.Background(), "tok", "draw a dog", nil)
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleBot, msgs[2].Role)
	assert.Empty(t, msgs[2].ImageURL)
	assert.NotEmpty(t, msgs[2].Text)

	// conversation remains usable after a failure
	mock.Err = nil
	mock.Result = Image{Data: []byte("img")}
	msgs = svc.Send(context.Background(), "tok", "try again", nil)
	require.Len(t, msgs, 5)
	assert.Equal(t, RoleBot, msgs[4].Role)
	assert.NotEmpty(t, msgs[4].ImageURL)
}

func TestConversationsAreIsolatedPerToken(t *testing.T) {
	svc := NewService(&MockProvider{Result: Image{Data: []byte("x")}}, discard())

	svc.Send(context.Background(), "a", "one", nil)
	msgsB := svc.Messages("b")
	require.Len(t, msgsB, 1)

	svc.Reset("a")
	require.Len(t, svc.Messages("a"), 1)
}

func TestHTTPProvider(t *testing.T) {
	t.Run("success round trip", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `"prompt":"a sunset"`)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"image":{"data":"aGVsbG8=","mime_type":"image/png"}}`))
		}))
		defer srv.Close()

		p := NewHTTPProvider(srv.URL, "secret", time.Second)
		img, err := p.Generate(context.Background(), Request{Prompt: "a sunset"})
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), img.Data)
		assert.Equal(t, "image/png", img.MimeType)
	})

	t.Run("error payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"unsupported prompt"}`))
		}))
		defer srv.Close()

		p := NewHTTPProvider(srv.URL, "", time.Second)
		_, err := p.Generate(context.Background(), Request{Prompt: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported prompt")
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		p := NewHTTPProvider(srv.URL, "", time.Second)
		_, err := p.Generate(context.Background(), Request{Prompt: "x"})
		require.Error(t, err)
	})

	t.Run("missing image data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		p := NewHTTPProvider(srv.URL, "", time.Second)
		_, err := p.Generate(context.Background(), Request{Prompt: "x"})
		require.Error(t, err)
	})
}
