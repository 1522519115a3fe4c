package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	api "github.com/rogerio-castellano/inventory-rest/internal/http"
	"github.com/rogerio-castellano/inventory-rest/internal/repo"
)

type testServer struct {
	router   http.Handler
	products *repo.InMemoryProductInventory
	records  *repo.InMemoryRecordInventory
}

func newTestServer() *testServer {
	s := &testServer{
		products: repo.NewInMemoryProductInventory(),
		records:  repo.NewInMemoryRecordInventory(),
	}
	s.router = api.NewRouter(api.Deps{Products: s.products, Records: s.records})
	return s
}

func (s *testServer) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) doJSON(method, target string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
