package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// FakeOpenAIServer answers every chat-completion request with a fixed
// reply and counts the calls so tests can assert the provider was, or
// was not, invoked.
type FakeOpenAIServer struct {
	s *httptest.Server

	mu    sync.Mutex
	calls int
	reply string
}

func NewFakeOpenAIServer() *FakeOpenAIServer {
	f := &FakeOpenAIServer{
		reply: "Generated text for testing.",
	}
	f.s = httptest.NewServer(http.HandlerFunc(f.completionHandler))
	return f
}

func (f *FakeOpenAIServer) Close() {
	f.s.Close()
}

// URL returns the base URL to give textgen.NewForTest.
func (f *FakeOpenAIServer) URL() string {
	return f.s.URL + "/v1"
}

func (f *FakeOpenAIServer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeOpenAIServer) SetReply(reply string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply = reply
}

func (f *FakeOpenAIServer) completionHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls++
	reply := f.reply
	f.mu.Unlock()

	resp := map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]string{
					"role":    "assistant",
					"content": reply,
				},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]int{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
