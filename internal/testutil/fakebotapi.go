// Package testutil provides testing utilities.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
)

// TestToken is the bot token FakeBotAPI.Bot uses.
const TestToken = "123456:TEST-TOKEN"

// Call is one Bot API request seen by FakeBotAPI.
type Call struct {
	Method string
	Form   url.Values
}

// FakeBotAPI is an httptest server speaking enough of the Telegram Bot API
// for go-telegram/bot to send messages, resolve chats and publish commands.
type FakeBotAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	calls    []Call
	failures map[string]string // method -> error description
	notify   chan Call
}

// NewFakeBotAPI starts a fake Bot API server that is closed when t ends.
func NewFakeBotAPI(t *testing.T) *FakeBotAPI {
	t.Helper()

	f := &FakeBotAPI{
		failures: make(map[string]string),
		notify:   make(chan Call, 128),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

// URL returns the server base URL.
func (f *FakeBotAPI) URL() string { return f.server.URL }

// Bot returns a go-telegram/bot client pointed at the fake server.
func (f *FakeBotAPI) Bot(t *testing.T, opts ...bot.Option) *bot.Bot {
	t.Helper()

	opts = append([]bot.Option{bot.WithSkipGetMe(), bot.WithServerURL(f.server.URL)}, opts...)
	b, err := bot.New(TestToken, opts...)
	if err != nil {
		t.Fatalf("failed to create bot against fake API: %v", err)
	}
	return b
}

// Fail makes every later call to method return a Bot API error.
func (f *FakeBotAPI) Fail(method, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method] = description
}

// Calls returns the recorded requests for method, oldest first.
func (f *FakeBotAPI) Calls(method string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Call
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// WaitForCall blocks until a request for method arrives or timeout passes.
func (f *FakeBotAPI) WaitForCall(t *testing.T, method string, timeout time.Duration) Call {
	t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case c := <-f.notify:
			if c.Method == method {
				return c
			}
		case <-deadline:
			t.Fatalf("no %s call within %s", method, timeout)
			return Call{}
		}
	}
}

func (f *FakeBotAPI) serve(w http.ResponseWriter, r *http.Request) {
	// Bodies are multipart; ParseMultipartForm falls back to url-encoded.
	_ = r.ParseMultipartForm(1 << 20)

	call := Call{Method: path.Base(r.URL.Path), Form: cloneValues(r.PostForm)}

	// Polls are not recorded. The short wait stands in for long polling so a
	// running listener does not spin.
	if call.Method == "getUpdates" {
		select {
		case <-time.After(20 * time.Millisecond):
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"ok":true,"result":[]}`)
		case <-r.Context().Done():
		}
		return
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	failure, failing := f.failures[call.Method]
	f.mu.Unlock()

	select {
	case f.notify <- call:
	default:
	}

	w.Header().Set("Content-Type", "application/json")
	if failing {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, `{"ok":false,"error_code":400,"description":%q}`, failure)
		return
	}

	fmt.Fprintf(w, `{"ok":true,"result":%s}`, resultFor(call))
}

func resultFor(call Call) string {
	switch call.Method {
	case "sendMessage":
		chatID := call.Form.Get("chat_id")
		if chatID == "" {
			chatID = "0"
		}
		return fmt.Sprintf(`{"message_id":1,"date":1700000000,"chat":{"id":%s,"type":"group"},"text":%q}`,
			chatID, call.Form.Get("text"))
	case "getChat":
		chatID := call.Form.Get("chat_id")
		if chatID == "" {
			chatID = "0"
		}
		return fmt.Sprintf(`{"id":%s,"type":"group","title":"fake","accent_color_id":0,"max_reaction_count":0}`, chatID)
	case "getMe":
		return `{"id":42,"is_bot":true,"first_name":"Legends","username":"legends_test_bot"}`
	default:
		return "true"
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
