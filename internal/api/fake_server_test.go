package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// fakeAPI serves canned storefront responses and records order requests.
type fakeAPI struct {
	mu sync.Mutex

	products   string
	categories string
	details    map[string]string

	orderStatus int
	orderBody   string
	orders      []recordedOrder
}

type recordedOrder struct {
	RequestID string
	Body      map[string]any
}

func (f *fakeAPI) start(t *testing.T) *httptest.Server {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/products", f.text(func() string { return f.products })).Methods(http.MethodGet)
	r.HandleFunc("/api/categories", f.text(func() string { return f.categories })).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", f.productDetail).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", f.createOrder).Methods(http.MethodPost)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func (f *fakeAPI) text(body func() string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body())
	}
}

func (f *fakeAPI) productDetail(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	body, ok := f.details[mux.Vars(r)["id"]]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"Product not found"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func (f *fakeAPI) createOrder(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.orders = append(f.orders, recordedOrder{RequestID: r.Header.Get("X-Request-ID"), Body: body})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.orderStatus)
	_, _ = io.WriteString(w, f.orderBody)
}

func (f *fakeAPI) recorded() []recordedOrder {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedOrder(nil), f.orders...)
}
