package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/wallmaze/api"
	apii "github.com/beka-birhanu/wallmaze/api/i"
	"github.com/beka-birhanu/wallmaze/api/identity"
	"github.com/beka-birhanu/wallmaze/infrastruture/token"
	"github.com/beka-birhanu/wallmaze/logger"
	"github.com/beka-birhanu/wallmaze/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	engine *gin.Engine
	bearer string
}

func newTestServer(t *testing.T, rows, cols int) *testServer {
	t.Helper()

	l, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)
	svc, err := service.NewMazeService(context.Background(), service.MazeConfig{Rows: rows, Cols: cols, Seed: 5, Logger: l})
	require.NoError(t, err)

	controller, err := NewMazeController(svc)
	require.NoError(t, err)

	ts := token.NewJwtService("secret", "wallmaze")
	tok, err := ts.Generate("editor", []string{identity.ScopeMazeWrite}, time.Minute)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Mode:                    gin.TestMode,
		Controllers:             []apii.Controller{controller},
		AuthorizationMiddleware: identity.Authoriz(ts, identity.ScopeMazeWrite),
	})
	return &testServer{engine: router.Engine(), bearer: "Bearer " + tok}
}

func (s *testServer) do(t *testing.T, method, path, body string, auth bool) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", s.bearer)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decodeCell(t *testing.T, rec *httptest.ResponseRecorder) SetCellResponse {
	t.Helper()
	var resp SetCellResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func sides(w WallsDTO) [4]bool {
	return [4]bool{*w.South, *w.East, *w.North, *w.West}
}

func TestNewMazeControllerRequiresService(t *testing.T) {
	_, err := NewMazeController(nil)
	assert.Error(t, err)
}

func TestMazeInfo(t *testing.T) {
	s := newTestServer(t, 3, 4)

	rec := s.do(t, http.MethodGet, "/maze", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MazeInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Rows)
	assert.Equal(t, 4, resp.Cols)
	assert.Contains(t, resp.Generators, "binary-tree")
}

func TestCellRoutes(t *testing.T) {
	s := newTestServer(t, 3, 3)

	t.Run("Read a corner", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/maze/cells/0/0", "", false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, [4]bool{false, false, true, true}, sides(decodeCell(t, rec).Walls))
	})

	t.Run("Out of range", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/maze/cells/3/0", "", false)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		rec = s.do(t, http.MethodGet, "/maze/cells/-1/0", "", false)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Bad coordinates", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/maze/cells/a/0", "", false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Write requires a token", func(t *testing.T) {
		body := `{"south":true,"east":true,"north":true,"west":true}`
		rec := s.do(t, http.MethodPut, "/maze/cells/1/1", body, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Write an interior cell", func(t *testing.T) {
		body := `{"south":true,"east":false,"north":true,"west":false}`
		rec := s.do(t, http.MethodPut, "/maze/cells/1/1", body, true)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeCell(t, rec)
		assert.True(t, resp.Applied)
		assert.Equal(t, [4]bool{true, false, true, false}, sides(resp.Walls))

		rec = s.do(t, http.MethodGet, "/maze/cells/2/1", "", false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *decodeCell(t, rec).Walls.North)
	})

	t.Run("Opening the boundary is reported", func(t *testing.T) {
		body := `{"south":true,"east":true,"north":false,"west":false}`
		rec := s.do(t, http.MethodPut, "/maze/cells/0/0", body, true)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeCell(t, rec)
		assert.False(t, resp.Applied)
		assert.Equal(t, [4]bool{true, true, true, true}, sides(resp.Walls))
	})

	t.Run("Missing side", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/maze/cells/1/1", `{"south":true}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBulkRoutes(t *testing.T) {
	s := newTestServer(t, 3, 3)

	rec := s.do(t, http.MethodPost, "/maze/fill", "", true)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodGet, "/maze/cells/1/1", "", false)
	assert.Equal(t, [4]bool{true, true, true, true}, sides(decodeCell(t, rec).Walls))

	rec = s.do(t, http.MethodPost, "/maze/clear", "", true)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodGet, "/maze/cells/1/1", "", false)
	assert.Equal(t, [4]bool{false, false, false, false}, sides(decodeCell(t, rec).Walls))

	rec = s.do(t, http.MethodPost, "/maze/randomize", "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodPost, "/maze/randomize", `{"seed":12}`, true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodPost, "/maze/randomize", `{"seed":"x"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/maze/generate", `{"generator":"binary-tree","seed":3}`, true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodPost, "/maze/generate", `{"generator":"kruskal"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodPost, "/maze/generate", `{}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/maze/fill", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRenderRoutes(t *testing.T) {
	s := newTestServer(t, 2, 2)

	rec := s.do(t, http.MethodGet, "/maze/ascii", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "+---+---+\n|       |\n+   +   +\n|       |\n+---+---+\n", rec.Body.String())

	rec = s.do(t, http.MethodGet, "/maze/png?cell=6&line=2", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())

	rec = s.do(t, http.MethodGet, "/maze/png?cell=x", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodGet, "/maze/png?cell=2&line=5", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodGet, "/maze/png?cell=5000", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodGet, "/maze/png?cell=4294967296&line=1", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for n := 0; n < 5; n++ {
		rec = s.do(t, http.MethodGet, "/maze/png?cell=x&line=y", "", false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid cell")
	}
}
