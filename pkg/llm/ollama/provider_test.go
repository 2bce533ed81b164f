package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-devicechat-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func ndjsonServer(t *testing.T, lines []string, capture *ollamaGenerateRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.Header().Set("Content-Type", "application/x-ndjson")
		for _, line := range lines {
			_, _ = w.Write([]byte(line + "\n"))
		}
	}))
}

func drain(t *testing.T, ch <-chan llm.StreamEvent) []llm.StreamEvent {
	t.Helper()
	var out []llm.StreamEvent
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-time.After(5 * time.Second):
			t.Fatal("stream did not close")
		}
	}
}

func TestStreamDeliversFragmentsInOrder(t *testing.T) {
	var got ollamaGenerateRequest
	srv := ndjsonServer(t, []string{
		`{"model":"deepseek-r1:1.5b","response":"<think>reason","done":false}`,
		`{"model":"deepseek-r1:1.5b","response":"ing</think>Hello","done":false}`,
		`{"model":"deepseek-r1:1.5b","response":" world","done":false}`,
		`{"model":"deepseek-r1:1.5b","response":"","done":true}`,
	}, &got)
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "deepseek-r1:1.5b", 5*time.Second, nopLogger{})
	ch, err := p.Stream(context.Background(), "why is dev01 down")
	require.NoError(t, err)

	events := drain(t, ch)
	var texts []string
	for _, ev := range events {
		require.NoError(t, ev.Err)
		texts = append(texts, ev.Text)
	}
	assert.Equal(t, []string{"<think>reason", "ing</think>Hello", " world", ""}, texts)

	assert.Equal(t, "deepseek-r1:1.5b", got.Model)
	assert.Equal(t, "why is dev01 down", got.Prompt)
	assert.True(t, got.Stream)
}

func TestStreamSkipsUndecodableChunks(t *testing.T) {
	srv := ndjsonServer(t, []string{
		`{"response":"one","done":false}`,
		`this is not json`,
		`{"response":"two","done":true}`,
	}, nil)
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "deepseek-r1:1.5b", 5*time.Second, nopLogger{})
	ch, err := p.Stream(context.Background(), "q")
	require.NoError(t, err)

	events := drain(t, ch)
	require.Len(t, events, 2)
	assert.Equal(t, "one", events[0].Text)
	assert.Equal(t, "two", events[1].Text)
}

func TestStreamForwardsBackendErrorChunk(t *testing.T) {
	srv := ndjsonServer(t, []string{
		`{"response":"before","done":false}`,
		`{"error":"model ran out of memory"}`,
		`{"response":"after","done":true}`,
	}, nil)
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "deepseek-r1:1.5b", 5*time.Second, nopLogger{})
	ch, err := p.Stream(context.Background(), "q")
	require.NoError(t, err)

	events := drain(t, ch)
	require.Len(t, events, 3)
	assert.Equal(t, "before", events[0].Text)
	require.Error(t, events[1].Err)
	assert.Contains(t, events[1].Err.Error(), "model ran out of memory")
	assert.Equal(t, "after", events[2].Text)
}

func TestStreamUnreachableBackend(t *testing.T) {
	p := NewOllamaProvider("http://127.0.0.1:1", "deepseek-r1:1.5b", time.Second, nopLogger{})

	ch, err := p.Stream(context.Background(), "q")
	require.Error(t, err)
	assert.Nil(t, ch)
}

func TestStreamNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model 'missing' not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "missing", 5*time.Second, nopLogger{})

	_, err := p.Stream(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestStreamStopsOnContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		for i := 0; i < 1000; i++ {
			_, err := w.Write([]byte(`{"response":"x","done":false}` + "\n"))
			if err != nil {
				return
			}
			flusher.Flush()
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	p := NewOllamaProvider(srv.URL, "deepseek-r1:1.5b", 5*time.Second, nopLogger{})
	ch, err := p.Stream(ctx, "q")
	require.NoError(t, err)

	<-ch
	cancel()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream did not close after cancel")
		}
	}
}

func TestGenerate(t *testing.T) {
	srv := ndjsonServer(t, []string{
		`{"model":"deepseek-r1:1.5b","response":"full answer","done":true}`,
	}, nil)
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "deepseek-r1:1.5b", 5*time.Second, nopLogger{})

	out, err := p.Generate(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "full answer", out)
}

func TestGenerateBackendError(t *testing.T) {
	srv := ndjsonServer(t, []string{`{"error":"boom"}`}, nil)
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "deepseek-r1:1.5b", 5*time.Second, nopLogger{})

	_, err := p.Generate(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestModelOverrideOption(t *testing.T) {
	var got ollamaGenerateRequest
	srv := ndjsonServer(t, []string{`{"response":"ok","done":true}`}, &got)
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "deepseek-r1:1.5b", 5*time.Second, nopLogger{})

	_, err := p.Generate(context.Background(), "q", llm.WithModel("llama3"))
	require.NoError(t, err)
	assert.Equal(t, "llama3", got.Model)
}
