package textgen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goliatone/go-sitegen/internal/textgen"
)

func chatReply(content string) string {
	reply := map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"content": content}},
		},
	}
	out, _ := json.Marshal(reply)
	return string(out)
}

func testClient(serverURL string) *textgen.Client {
	return textgen.New(textgen.Config{
		Endpoint: serverURL,
		Attempts: 3,
		Backoff:  time.Millisecond,
	})
}

func TestGeneratePageCopy(t *testing.T) {
	content := `{"heroTitle":"Spin Big","heroSubtitle":"Win today","ctaText":"Join Now","sections":[{"title":"Slots","content":"Great slots.","hasCTA":true}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(content)))
	}))
	defer server.Close()

	pageCopy, err := testClient(server.URL).GeneratePageCopy(context.Background(), "LuckySpin", "lucky.example", "Casino", "https://go.example")
	if err != nil {
		t.Fatalf("generate copy: %v", err)
	}
	if pageCopy.HeroTitle != "Spin Big" {
		t.Fatalf("unexpected hero title %q", pageCopy.HeroTitle)
	}
	if len(pageCopy.Sections) != 1 || !pageCopy.Sections[0].HasCTA {
		t.Fatalf("unexpected sections %+v", pageCopy.Sections)
	}
}

func TestGeneratePageCopyStripsCodeFences(t *testing.T) {
	content := "```json\n{\"heroTitle\":\"Spin\",\"sections\":[{\"title\":\"A\",\"content\":\"B\"}],\"ctaText\":\"Go\"}\n```"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(content)))
	}))
	defer server.Close()

	pageCopy, err := testClient(server.URL).GeneratePageCopy(context.Background(), "LuckySpin", "lucky.example", "Casino", "")
	if err != nil {
		t.Fatalf("generate copy: %v", err)
	}
	if pageCopy.HeroTitle != "Spin" {
		t.Fatalf("code fences not stripped, got %+v", pageCopy)
	}
}

func TestGeneratePageCopyFallsBackToPlaceholder(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	pageCopy, err := testClient(server.URL).GeneratePageCopy(context.Background(), "LuckySpin", "lucky.example", "Casino", "")
	if err != nil {
		t.Fatalf("placeholder path should not error: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts got %d", calls.Load())
	}
	if len(pageCopy.Sections) != 6 {
		t.Fatalf("placeholder should carry 6 sections, got %d", len(pageCopy.Sections))
	}
	if !strings.Contains(pageCopy.HeroTitle, "LuckySpin") {
		t.Fatalf("placeholder hero should mention brand: %q", pageCopy.HeroTitle)
	}
	if !pageCopy.Sections[0].HasCTA || !pageCopy.Sections[5].HasCTA {
		t.Fatal("placeholder should pin CTA on first and last sections")
	}
}

func TestGenerateMetaFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply("not json at all")))
	}))
	defer server.Close()

	meta := testClient(server.URL).GenerateMeta(context.Background(), "LuckySpin", "lucky.example", "Casino")
	if meta.Title != "Casino - LuckySpin | lucky.example" {
		t.Fatalf("expected fallback meta, got %q", meta.Title)
	}
}

func TestCleanJSON(t *testing.T) {
	got := textgen.CleanJSON("```json\n{\"a\":1}\n```")
	if got != `{"a":1}` {
		t.Fatalf("unexpected cleaned JSON %q", got)
	}
}
