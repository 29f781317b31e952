// Package telegramtest provides an in-process fake of the Telegram Bot API for
// tests that drive a real go-telegram bot instance.
package telegramtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
)

// Token is the bot token used by bots created with Server.Bot.
const Token = "123456:TEST"

// pollDelay stands in for long polling so a running bot does not spin.
const pollDelay = 20 * time.Millisecond

// Call is a single Bot API method invocation received by the fake server.
type Call struct {
	Method string
	Params url.Values
}

// Server records Bot API calls and answers them with minimal successful results.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	calls       []Call
	failMethods map[string]bool
	nextID      int
}

// NewServer starts a fake Bot API server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{failMethods: make(map[string]bool), nextID: 100}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Bot creates a bot bound to the fake server. GetMe is skipped.
func (s *Server) Bot(t testing.TB, opts ...bot.Option) *bot.Bot {
	t.Helper()

	opts = append(opts, bot.WithServerURL(s.URL), bot.WithSkipGetMe())
	b, err := bot.New(Token, opts...)
	if err != nil {
		t.Fatalf("failed to create bot against fake server: %v", err)
	}
	return b
}

// FailMethod makes every later call of method return a Bot API error.
func (s *Server) FailMethod(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failMethods[method] = true
}

// Calls returns the recorded calls of method, in arrival order.
func (s *Server) Calls(method string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Call
	for _, c := range s.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// SentTexts returns the text of every sendMessage call.
func (s *Server) SentTexts() []string {
	var texts []string
	for _, c := range s.Calls("sendMessage") {
		texts = append(texts, c.Params.Get("text"))
	}
	return texts
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	method := path.Base(r.URL.Path)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		_ = r.ParseForm()
	}

	params := url.Values{}
	for k, v := range r.Form {
		params[k] = v
	}

	s.mu.Lock()
	s.calls = append(s.calls, Call{Method: method, Params: params})
	fail := s.failMethods[method]
	s.nextID++
	messageID := s.nextID
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if fail {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":          false,
			"error_code":  http.StatusBadRequest,
			"description": "Bad Request: forced failure for " + method,
		})
		return
	}

	var result any = true
	switch method {
	case "getUpdates":
		select {
		case <-r.Context().Done():
		case <-time.After(pollDelay):
		}
		result = []any{}
	case "getMe":
		result = map[string]any{"id": 123456, "is_bot": true, "first_name": "Test", "username": "test_bot"}
	case "sendMessage":
		chatID, _ := strconv.ParseInt(params.Get("chat_id"), 10, 64)
		result = map[string]any{
			"message_id": messageID,
			"date":       0,
			"chat":       map[string]any{"id": chatID, "type": "private"},
			"text":       params.Get("text"),
		}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": result})
}
