package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/ideawheel/internal/adapters/clock"
	httpadapter "github.com/randomtoy/ideawheel/internal/adapters/http"
	"github.com/randomtoy/ideawheel/internal/adapters/ideas"
	"github.com/randomtoy/ideawheel/internal/app"
	"github.com/randomtoy/ideawheel/internal/domain"
)

const maxTitle = 200

// eighthRNG lands every spin on 3*360 + 45 degrees with three-turn configs.
type eighthRNG struct{}

func (eighthRNG) Intn(int) int     { return 0 }
func (eighthRNG) Float64() float64 { return 0.125 }

type server struct {
	e     *echo.Echo
	clock *clock.Manual
}

func newServer(t *testing.T) *server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	store := ideas.NewMemoryStore()

	cfg := app.DefaultWheelConfig()
	cfg.MinRotations, cfg.MaxRotations = 3, 3
	wheel := app.NewWheel(clk, eighthRNG{}, nil, app.NewActiveIdeas(store), cfg, logger)
	board := app.NewBoard(store, wheel, clk, false, logger)

	e := echo.New()
	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))
	httpadapter.NewHandler(board).Register(e)
	return &server{e: e, clock: clk}
}

func (s *server) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *server) addIdeas(t *testing.T, titles ...string) []httpadapter.IdeaResponse {
	t.Helper()
	out := make([]httpadapter.IdeaResponse, len(titles))
	for i, title := range titles {
		rec := s.do(t, http.MethodPost, "/v1/ideas", `{"title":"`+title+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		out[i] = decode[httpadapter.IdeaResponse](t, rec)
	}
	return out
}

func TestHealthz(t *testing.T) {
	s := newServer(t)
	rec := s.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc123")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	assert.Equal(t, "abc123", rec.Header().Get("X-Request-Id"))
}

func TestSpin_EndToEnd(t *testing.T) {
	s := newServer(t)
	s.addIdeas(t, "A", "B", "C", "D")

	rec := s.do(t, http.MethodGet, "/v1/wheel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	wheel := decode[httpadapter.WheelResponse](t, rec)
	require.Len(t, wheel.Sections, 4)
	assert.Equal(t, 270.0, wheel.Sections[3].StartAngle)

	rec = s.do(t, http.MethodPost, "/v1/wheel/spin", "")
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, domain.PhaseWindUp, decode[httpadapter.WheelResponse](t, rec).Phase)

	rec = s.do(t, http.MethodPost, "/v1/wheel/spin", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	s.clock.Advance(300*time.Millisecond + 5*time.Second)

	wheel = decode[httpadapter.WheelResponse](t, s.do(t, http.MethodGet, "/v1/wheel", ""))
	assert.Equal(t, domain.PhaseIdle, wheel.Phase)
	require.NotNil(t, wheel.Selected)
	assert.Equal(t, "D", wheel.Selected.Label)
	assert.Equal(t, 1, wheel.SpinCount)

	history := decode[httpadapter.HistoryResponse](t, s.do(t, http.MethodGet, "/v1/wheel/history", ""))
	require.Len(t, history.Picks, 1)
	assert.Equal(t, "D", history.Picks[0].Label)
	assert.Equal(t, 3*360.0+45, history.Picks[0].Rotation)
}

func TestSpin_EmptyBoard(t *testing.T) {
	s := newServer(t)
	rec := s.do(t, http.MethodPost, "/v1/wheel/spin", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[httpadapter.ErrorResponse](t, rec).Error, "no items")
}

func TestIdeas_Lifecycle(t *testing.T) {
	s := newServer(t)
	added := s.addIdeas(t, "A", "B", "C")

	rec := s.do(t, http.MethodPatch, "/v1/ideas/"+added[0].ID, `{"title":"  A2 ","note":"n"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[httpadapter.IdeaResponse](t, rec)
	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, "n", updated.Note)

	rec = s.do(t, http.MethodPost, "/v1/ideas/"+added[1].ID+"/archive", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[httpadapter.IdeaResponse](t, rec).Archived)

	wheel := decode[httpadapter.WheelResponse](t, s.do(t, http.MethodGet, "/v1/wheel", ""))
	assert.Len(t, wheel.Sections, 2, "archived ideas leave the wheel")

	active := decode[httpadapter.IdeaListResponse](t, s.do(t, http.MethodGet, "/v1/ideas?archived=false", ""))
	assert.Len(t, active.Ideas, 2)
	archived := decode[httpadapter.IdeaListResponse](t, s.do(t, http.MethodGet, "/v1/ideas?archived=true", ""))
	require.Len(t, archived.Ideas, 1)
	assert.Equal(t, "B", archived.Ideas[0].Title)
	all := decode[httpadapter.IdeaListResponse](t, s.do(t, http.MethodGet, "/v1/ideas", ""))
	assert.Len(t, all.Ideas, 3)

	rec = s.do(t, http.MethodPost, "/v1/ideas/"+added[1].ID+"/restore", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[httpadapter.IdeaResponse](t, rec).Archived)

	rec = s.do(t, http.MethodPut, "/v1/ideas/order", `{"ids":["`+added[2].ID+`","`+added[1].ID+`","`+added[0].ID+`"]}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	wheel = decode[httpadapter.WheelResponse](t, s.do(t, http.MethodGet, "/v1/wheel", ""))
	require.Len(t, wheel.Sections, 3)
	assert.Equal(t, []string{"C", "B", "A2"}, []string{wheel.Sections[0].Label, wheel.Sections[1].Label, wheel.Sections[2].Label})

	rec = s.do(t, http.MethodDelete, "/v1/ideas/"+added[2].ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	wheel = decode[httpadapter.WheelResponse](t, s.do(t, http.MethodGet, "/v1/wheel", ""))
	assert.Len(t, wheel.Sections, 2)
}

func TestIdeas_TitleLimitCountsCharacters(t *testing.T) {
	s := newServer(t)

	wide := strings.Repeat("夢", maxTitle)
	rec := s.do(t, http.MethodPost, "/v1/ideas", `{"title":"`+wide+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, wide, decode[httpadapter.IdeaResponse](t, rec).Title)

	rec = s.do(t, http.MethodPost, "/v1/ideas", `{"title":"`+wide+`夢"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIdeas_Errors(t *testing.T) {
	s := newServer(t)
	added := s.addIdeas(t, "A", "B")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"empty title", http.MethodPost, "/v1/ideas", `{"title":"   "}`, http.StatusBadRequest},
		{"long title", http.MethodPost, "/v1/ideas", `{"title":"` + strings.Repeat("x", 201) + `"}`, http.StatusBadRequest},
		{"bad json", http.MethodPost, "/v1/ideas", `{"title":`, http.StatusBadRequest},
		{"update missing", http.MethodPatch, "/v1/ideas/missing", `{"title":"x"}`, http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/v1/ideas/missing", "", http.StatusNotFound},
		{"archive missing", http.MethodPost, "/v1/ideas/missing/archive", "", http.StatusNotFound},
		{"bad filter", http.MethodGet, "/v1/ideas?archived=maybe", "", http.StatusBadRequest},
		{"short order", http.MethodPut, "/v1/ideas/order", `{"ids":["` + added[0].ID + `"]}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decode[httpadapter.ErrorResponse](t, rec).Error)
		})
	}
}
