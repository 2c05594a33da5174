package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sushihentaime/inkpost/internal/analyticsservice"
	"github.com/sushihentaime/inkpost/internal/blogservice"
	"github.com/sushihentaime/inkpost/internal/commentservice"
	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
	"github.com/sushihentaime/inkpost/internal/notificationservice"
	"github.com/sushihentaime/inkpost/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var envelope envelope
	err = json.Unmarshal(responseBody, &envelope)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, envelope
}

func newTestApplication(t *testing.T) (*application, *memdb.DB) {
	db := memdb.New()
	cache := common.NewCache(common.NoExpiration, 0)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	t.Cleanup(db.Reset)

	notifications := notificationservice.NewNotificationService(db, nil, logger)

	app := &application{
		ctx: ctx,
		config: &Config{
			Environment:    "testing",
			Version:        "1.0.0",
			TrustedOrigins: []string{"http://localhost:3000"},
		},
		logger:              logger,
		notificationService: notifications,
		userService:         userservice.NewUserService(db, cache, notifications),
		blogService:         blogservice.NewBlogService(db, notifications),
		commentService:      commentservice.NewCommentService(db, notifications),
		analyticsService:    analyticsservice.NewAnalyticsService(db),
	}

	return app, db
}

func (ts *testServer) do(t *testing.T, method, path string, userID *string, payload any) (int, http.Header, envelope) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("Authorization", "Bearer "+*userID)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string, userID *string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodGet, path, userID, nil)
}

func (ts *testServer) post(t *testing.T, path string, userID *string, payload any) (int, http.Header, envelope) {
	return ts.do(t, http.MethodPost, path, userID, payload)
}

func (ts *testServer) put(t *testing.T, path string, userID *string, payload any) (int, http.Header, envelope) {
	return ts.do(t, http.MethodPut, path, userID, payload)
}

func (ts *testServer) patch(t *testing.T, path string, userID *string, payload any) (int, http.Header, envelope) {
	return ts.do(t, http.MethodPatch, path, userID, payload)
}

func (ts *testServer) delete(t *testing.T, path string, userID *string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodDelete, path, userID, nil)
}

func strptr(s string) *string {
	return &s
}
