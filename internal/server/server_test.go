package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/id3meta"
	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/report"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, h *Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, NewHandler(Config{}), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestInspect(t *testing.T) {
	body := binary.NewWriter().
		Frame("TIT2", []byte{3, 'H', 'e', 'l', 'l', 'o'}).
		Frame("XXXX", []byte{3, 'W'}).
		Bytes()
	data := append(binary.Tag(body), 0xFF, 0xFB, 0x90, 0x64)

	rec := do(t, NewHandler(Config{}), http.MethodPost, "/v1/tags", data)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var got report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.True(t, got.Present)
	assert.Equal(t, byte(3), got.Header.Major)
	require.Len(t, got.Frames, 1)
	assert.Equal(t, id3meta.KindTextInformation, got.Frames[0].Kind)
	assert.Equal(t, &report.TextView{ID: "TIT2", Text: "Hello"}, got.Frames[0].Text)
	assert.Equal(t, []report.RawView{{ID: "XXXX", Size: 2}}, got.NotExtracted)
}

func TestInspect_NoTag(t *testing.T) {
	rec := do(t, NewHandler(Config{}), http.MethodPost, "/v1/tags", []byte("RIFF....WAVE"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"no tag"}`, rec.Body.String())
}

func TestInspect_TruncatedHeader(t *testing.T) {
	rec := do(t, NewHandler(Config{}), http.MethodPost, "/v1/tags", []byte("ID3\x03"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "truncated")
}

func TestInspect_TooLarge(t *testing.T) {
	data := binary.Tag(binary.Frame("TIT2", bytes.Repeat([]byte{'a'}, 200)))

	rec := do(t, NewHandler(Config{MaxBodyBytes: 64}), http.MethodPost, "/v1/tags", data)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestInspect_CustomRegistry(t *testing.T) {
	data := binary.Tag(binary.Frame("TIT2", []byte{3, 'x'}))
	h := NewHandler(Config{Registry: id3meta.NewRegistry(id3meta.CommentDecoder{})})

	rec := do(t, h, http.MethodPost, "/v1/tags", data)
	require.Equal(t, http.StatusOK, rec.Code)

	var got report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Empty(t, got.Frames)
	assert.Len(t, got.NotExtracted, 1)
}

func TestCORS(t *testing.T) {
	h := NewHandler(Config{AllowOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
