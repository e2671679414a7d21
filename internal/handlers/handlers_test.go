package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/ticket-ledger/internal/ledger"
	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories/memory"
	"github.com/ArowuTest/ticket-ledger/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	store := memory.NewStore()
	engine := ledger.NewEngine(ledger.DefaultMaxRangeSpan, ledger.DefaultLocale)
	results := services.NewResultService(store.Results())
	sessions := services.NewSessionService(services.NewSessionStore(time.Hour), store.Reports(), store.Rosters(), results, engine)
	reports := services.NewReportService(store.Reports(), store.Rosters(), results, engine)
	ocrService := services.NewOCRService(store.CropRegions(), results, nil)

	sh := NewSessionHandler(sessions)
	rh := NewReportHandler(reports)
	resh := NewResultHandler(results, ocrService)
	oh := NewOCRHandler(ocrService)

	r := gin.New()
	r.POST("/sessions", sh.Open)
	r.GET("/sessions/:id", sh.Get)
	r.POST("/sessions/:id/rows", sh.AddRow)
	r.PATCH("/sessions/:id/rows/:index", sh.UpdateRow)
	r.POST("/sessions/:id/search-unsold", sh.SearchUnsold)
	r.POST("/sessions/:id/save", sh.Save)
	r.GET("/reports/:date/:slot", rh.Get)
	r.PUT("/results/:date/:slot", resh.Save)
	r.GET("/results/:date/:slot/csv", resh.DownloadCSV)
	r.POST("/results/extract-text", resh.ExtractText)
	r.POST("/results/extract-image", resh.ExtractImage)
	r.PUT("/ocr/crop-regions/:boxId", oh.UpdateCropRegion)
	r.GET("/health", NewHealthHandler("memory", nil).Health)
	r.GET("/health-down", NewHealthHandler("mongo", func(context.Context) error { return errors.New("no primary") }).Health)
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionHandler_Flow(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPut, "/results/2024-05-01/Morning", gin.H{
		"prizes": []gin.H{{"category": "1st Prize", "amount": "1000", "numbers": "184"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/sessions", gin.H{"date": "2024-05-01", "slot": "Morning"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var session models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))

	w = doJSON(r, http.MethodPost, "/sessions/"+session.ID+"/rows", gin.H{"customerName": "Ravi", "multiplier": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPatch, "/sessions/"+session.ID+"/rows/0", gin.H{"purchaseRanges": "32180-32189", "unsoldRaw": "32181"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.Len(t, session.Rows, 1)
	assert.Equal(t, []string{"1,000 (1st Prize: 32184)"}, session.Rows[0].Breakdown.PWT)

	w = doJSON(r, http.MethodPost, "/sessions/"+session.ID+"/search-unsold", gin.H{"numbers": "32181"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = doJSON(r, http.MethodPost, "/sessions/"+session.ID+"/save", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/reports/2024-05-01/1PM", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"totalPwt":1000`)
}

func TestHandlers_ErrorStatuses(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/sessions", gin.H{"date": "2024-05-01", "slot": "Morning"})
	require.Equal(t, http.StatusCreated, w.Code)
	var session models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))

	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
	}{
		{name: "missing slot", method: http.MethodPost, path: "/sessions", body: gin.H{"date": "2024-05-01"}, wantStatus: http.StatusBadRequest},
		{name: "bad date", method: http.MethodPost, path: "/sessions", body: gin.H{"date": "May 1", "slot": "Morning"}, wantStatus: http.StatusBadRequest},
		{name: "bad slot", method: http.MethodPost, path: "/sessions", body: gin.H{"date": "2024-05-01", "slot": "Night"}, wantStatus: http.StatusBadRequest},
		{name: "unknown session", method: http.MethodGet, path: "/sessions/nope", wantStatus: http.StatusNotFound},
		{name: "non numeric row", method: http.MethodPatch, path: "/sessions/" + session.ID + "/rows/x", body: gin.H{}, wantStatus: http.StatusBadRequest},
		{name: "missing row", method: http.MethodPatch, path: "/sessions/" + session.ID + "/rows/4", body: gin.H{}, wantStatus: http.StatusNotFound},
		{name: "zero multiplier", method: http.MethodPost, path: "/sessions/" + session.ID + "/rows", body: gin.H{"customerName": "A", "multiplier": 0}, wantStatus: http.StatusBadRequest},
		{name: "empty save", method: http.MethodPost, path: "/sessions/" + session.ID + "/save", wantStatus: http.StatusBadRequest},
		{name: "missing report", method: http.MethodGet, path: "/reports/2024-05-01/Noon", wantStatus: http.StatusNotFound},
		{name: "unknown category", method: http.MethodPut, path: "/results/2024-05-01/Noon", body: gin.H{"prizes": []gin.H{{"category": "Bumper"}}}, wantStatus: http.StatusBadRequest},
		{name: "missing result csv", method: http.MethodGet, path: "/results/2024-05-01/Noon/csv", wantStatus: http.StatusNotFound},
		{name: "bad crop region", method: http.MethodPut, path: "/ocr/crop-regions/box1", body: gin.H{"top": 10, "left": 10, "width": 0, "height": 5}, wantStatus: http.StatusBadRequest},
		{name: "storage down", method: http.MethodGet, path: "/health-down", wantStatus: http.StatusServiceUnavailable},
		{name: "healthy", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus >= http.StatusBadRequest {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestRespondError_Internal(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) { respondError(c, fmt.Errorf("failed to load report: %w", errors.New("socket closed"))) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "socket closed")
}

func TestResultHandler_CSVAndExtraction(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPut, "/results/2024-05-01/Evening", gin.H{
		"prizes": []gin.H{{"category": "2nd Prize", "numbers": "12345, 67890"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/results/2024-05-01/Evening/csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Lottery_Results_2024-05-01_Evening.csv")
	assert.Contains(t, w.Body.String(), "Draw,8PM")

	w = doJSON(r, http.MethodPost, "/results/extract-text", gin.H{
		"boxes": []gin.H{{"boxId": "box2", "category": "2nd Prize", "text": "12345 67890 1234"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"numbers":"12345, 67890"`)

	// image extraction without a recognizer
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 10, 10))))
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "sheet.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/results/extract-image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotImplemented, w.Code)

	w = doJSON(r, http.MethodPost, "/results/extract-image", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResultHandler_ExtractImageLimits(t *testing.T) {
	r := newTestRouter()

	upload := func(data []byte) *httptest.ResponseRecorder {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("image", "sheet.gif")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/results/extract-image", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("declared dimensions over the pixel budget", func(t *testing.T) {
		gif := []byte{'G', 'I', 'F', '8', '9', 'a', 0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x3B}
		w := upload(gif)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "too large")
	})

	t.Run("body over the upload limit", func(t *testing.T) {
		w := upload(make([]byte, maxUploadSize+1))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
