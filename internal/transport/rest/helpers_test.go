package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
	"github.com/heartmarshall/authority-backend/pkg/ctxutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(authSvc *authorityServiceMock, adminSvc *adminServiceMock) http.Handler {
	log := discardLogger()
	return NewRouter(Handlers{
		Health:    NewHealthHandler(&dbPingerMock{}, nil, "test"),
		Normalize: NewNormalizeHandler(domain.NormalizeEntry),
		Authority: NewAuthorityHandler(authSvc, log),
		Admin:     NewAdminHandler(adminSvc, log),
	}, RouterOptions{})
}

// asRole marks the request as coming from an authenticated caller.
func asRole(req *http.Request, role string) *http.Request {
	ctx := ctxutil.WithUserID(req.Context(), uuid.New())
	ctx = ctxutil.WithRole(ctx, role)
	return req.WithContext(ctx)
}

func newJSONRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}
