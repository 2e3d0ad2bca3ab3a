package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/notify"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-board/internal/viewmodel"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	board := usecase.NewBoardUseCase(logger, tictactoe.NewEngine(), notify.NewLocal[*viewmodel.View](logger))

	return NewRouter(logger, board)
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequestWithContext(context.Background(), method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) *viewmodel.View {
	t.Helper()

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var view viewmodel.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	return &view
}

func TestPing(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/ping", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestBoardAPI(t *testing.T) {
	t.Run("GET /board returns a fresh board", func(t *testing.T) {
		// Given: a new server
		router := newTestRouter(t)

		// When: the board is requested
		view := decodeView(t, doRequest(t, router, http.MethodGet, "/board", nil))

		// Then: X is to move
		assert.Equal(t, "Turn: X", view.StatusText)
		assert.Equal(t, entity.OutcomeInProgress, view.Outcome)
	})

	t.Run("POST /board/moves plays until a win", func(t *testing.T) {
		// Given: a new server
		router := newTestRouter(t)

		// When: X completes the left column
		var view *viewmodel.View
		for _, cell := range []int{0, 1, 3, 4, 6} {
			view = decodeView(t, doRequest(t, router, http.MethodPost, "/board/moves", map[string]int{"cell": cell}))
		}

		// Then: the winner and the line are reported
		require.Equal(t, "Winner: X", view.StatusText)
		require.NotNil(t, view.Line)
		assert.Equal(t, entity.Line{0, 3, 6}, *view.Line)
		assert.True(t, view.Cells[3].Winning)
	})

	t.Run("Ignored moves still answer with the board", func(t *testing.T) {
		// Given: a new server
		router := newTestRouter(t)

		// When: moves off the board are sent
		low := decodeView(t, doRequest(t, router, http.MethodPost, "/board/moves", map[string]int{"cell": -1}))
		high := decodeView(t, doRequest(t, router, http.MethodPost, "/board/moves", map[string]int{"cell": 9}))

		// Then: the board is unchanged
		assert.Equal(t, "Turn: X", low.StatusText)
		assert.Equal(t, low, high)
	})

	t.Run("Missing cell is rejected", func(t *testing.T) {
		// Given: a new server
		router := newTestRouter(t)

		// When: a move without a cell is sent
		rec := doRequest(t, router, http.MethodPost, "/board/moves", map[string]string{})

		// Then: the request is rejected by validation
		assert.GreaterOrEqual(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("POST /board/reset clears the board", func(t *testing.T) {
		// Given: a board with one move
		router := newTestRouter(t)
		decodeView(t, doRequest(t, router, http.MethodPost, "/board/moves", map[string]int{"cell": 4}))

		// When: the board is reset
		view := decodeView(t, doRequest(t, router, http.MethodPost, "/board/reset", nil))

		// Then: the board is empty and X is to move
		assert.Equal(t, "Turn: X", view.StatusText)
		assert.Equal(t, entity.EmptyCell, view.Cells[4].Value)
	})
}
