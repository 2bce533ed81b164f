package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-devicechat-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeChatService struct {
	chunks     []dto.StreamChunk
	gotMessage string
}

func (f *fakeChatService) Relay(_ context.Context, message string, emit func(dto.StreamChunk) error) error {
	f.gotMessage = message
	for _, c := range f.chunks {
		if err := emit(c); err != nil {
			return err
		}
	}
	return nil
}

func newTestApp(svc *fakeChatService) *fiber.App {
	app := fiber.New()
	NewChatController(svc, nopLogger{}).RegisterRoutes(app)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestChatStreamsFilteredChunks(t *testing.T) {
	svc := &fakeChatService{chunks: []dto.StreamChunk{
		{Text: "Hello"},
		{Text: " world"},
	}}
	app := newTestApp(svc)

	resp := postChat(t, app, `{"message": "cek status dev01"}`)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-ndjson", resp.Header.Get("Content-Type"))
	assert.Equal(t, "cek status dev01", svc.gotMessage)

	var lines []dto.StreamChunk
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		if scanner.Text() == "" {
			continue
		}
		var chunk dto.StreamChunk
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &chunk))
		lines = append(lines, chunk)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, lines, 2)
	assert.Equal(t, "Hello", lines[0].Text)
	assert.Equal(t, " world", lines[1].Text)
}

func TestChatErrorChunkKeepsStatusOK(t *testing.T) {
	svc := &fakeChatService{chunks: []dto.StreamChunk{
		{Error: "AI backend error: model crashed"},
	}}
	app := newTestApp(svc)

	resp := postChat(t, app, `{"message": "cek status dev01"}`)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var chunk dto.StreamChunk
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(raw))), &chunk))
	assert.Empty(t, chunk.Text)
	assert.Contains(t, chunk.Error, "model crashed")
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	for name, body := range map[string]string{
		"missing field":   `{}`,
		"empty string":    `{"message": ""}`,
		"whitespace only": `{"message": "   "}`,
		"malformed json":  `{"message`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := &fakeChatService{}
			app := newTestApp(svc)

			resp := postChat(t, app, body)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			assert.Equal(t, "message must not be empty", payload["error"])
			assert.Empty(t, svc.gotMessage, "service must not be called for invalid input")
		})
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(&fakeChatService{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
