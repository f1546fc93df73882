package nasa

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// fakeAPI records every request and answers through handler.
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*url.URL
}

func newFakeAPI(handler http.HandlerFunc) *fakeAPI {
	f := &fakeAPI{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL)
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	return f
}

func (f *fakeAPI) client(opts ...Option) *Client {
	return New(append([]Option{WithBaseURL(f.URL), WithPageDelay(0)}, opts...)...)
}

func (f *fakeAPI) calls() []*url.URL {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*url.URL(nil), f.requests...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// hitsPage builds a search or album page with n items numbered from offset.
func hitsPage(totalHits, n, offset int, album string) map[string]any {
	items := make([]map[string]any, n)
	for i := range items {
		id := fmt.Sprintf("ID%05d", offset+i)
		data := map[string]any{
			"nasa_id":    id,
			"title":      "Item " + id,
			"media_type": "image",
		}
		if album != "" {
			data["album"] = []string{album}
		}
		items[i] = map[string]any{
			"href": "https://images-assets.example/" + id + "/collection.json",
			"data": []map[string]any{data},
		}
	}

	return map[string]any{
		"collection": map[string]any{
			"metadata": map[string]any{"total_hits": totalHits},
			"items":    items,
		},
	}
}
