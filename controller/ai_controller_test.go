package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/itish2003/eventvendors/models"
	"github/itish2003/eventvendors/services"
)

type fakeAIService struct {
	extraction *models.ExtractionResponse
	answer     string
	err        error

	text    string
	query   string
	vendors []models.Vendor
	calls   int
}

func (f *fakeAIService) ExtractVendor(_ context.Context, text string) (*models.ExtractionResponse, error) {
	f.calls++
	f.text = text
	return f.extraction, f.err
}

func (f *fakeAIService) ChatWithVendors(_ context.Context, query string, vendors []models.Vendor) (string, error) {
	f.calls++
	f.query, f.vendors = query, vendors
	return f.answer, f.err
}

func newTestRouter(t *testing.T, ai services.AIService) (*gin.Engine, *services.VendorStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := services.NewFileKeyValueStore(t.TempDir())
	require.NoError(t, err)
	store := services.NewVendorStore(services.NewVendorPersistence(kv, ""))

	router := gin.New()
	RegisterRoutes(router, NewAIController(ai, 1<<20), NewVendorController(store))
	return router, store
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestExtract_Success(t *testing.T) {
	ai := &fakeAIService{extraction: &models.ExtractionResponse{
		Name: "Fiori di Lucia", Category: models.CategoryFlorist, PriceRange: models.PriceModerate, Tags: []string{"boho"},
	}}
	router, _ := newTestRouter(t, ai)

	w := doJSON(router, http.MethodPost, "/api/extract", `{"text":"Lucia, florist in Siena"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lucia, florist in Siena", ai.text)
	var got models.ExtractionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, *ai.extraction, got)
}

func TestExtract_MissingText(t *testing.T) {
	ai := &fakeAIService{}
	router, _ := newTestRouter(t, ai)

	for _, body := range []string{`{}`, `{"text":""}`, ``, `not json`} {
		w := doJSON(router, http.MethodPost, "/api/extract", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Text is required", decodeMessage(t, w))
	}
	assert.Zero(t, ai.calls)
}

func TestExtract_MissingCredential(t *testing.T) {
	router, _ := newTestRouter(t, services.NewAIService(nil, "", 1000))

	w := doJSON(router, http.MethodPost, "/api/extract", `{"text":"anything"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server configuration error: Missing API Key", decodeMessage(t, w))
}

func TestExtract_BackendFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{name: "no content", err: services.ErrNoContent, wantMsg: "No content generated"},
		{name: "malformed", err: services.ErrMalformedOutput, wantMsg: "Internal server error"},
		{name: "model down", err: errors.New("503"), wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, &fakeAIService{err: tt.err})
			w := doJSON(router, http.MethodPost, "/api/extract", `{"text":"x"}`)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, w))
		})
	}
}

func TestAIEndpoints_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t, &fakeAIService{})

	for _, path := range []string{"/api/extract", "/api/chat"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			w := doJSON(router, method, path, "")
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method+" "+path)
			assert.Equal(t, "Method not allowed", decodeMessage(t, w))
		}
	}
}

func TestChat_Success(t *testing.T) {
	ai := &fakeAIService{answer: "Try Fiori di Lucia."}
	router, _ := newTestRouter(t, ai)

	body := `{"query":"boho florist?","vendors":[{"id":"1","name":"Fiori di Lucia","category":"Florist","priceRange":"$$","tags":[],"createdAt":1}]}`
	w := doJSON(router, http.MethodPost, "/api/chat", body)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Try Fiori di Lucia.", got.Response)
	assert.Equal(t, "boho florist?", ai.query)
	require.Len(t, ai.vendors, 1)
	assert.Equal(t, "Fiori di Lucia", ai.vendors[0].Name)
}

func TestChat_VendorsWithUnknownEnumsAreAccepted(t *testing.T) {
	ai := &fakeAIService{answer: "ok"}
	router, _ := newTestRouter(t, ai)

	body := `{"query":"hi","vendors":[{"id":"1","name":"A","category":"","priceRange":""},{"id":"2","name":"B","category":"Fiorai","priceRange":"$$$"}]}`
	w := doJSON(router, http.MethodPost, "/api/chat", body)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ai.vendors, 2)
	assert.Equal(t, "A", ai.vendors[0].Name)
	assert.Equal(t, models.Category(""), ai.vendors[0].Category)
	assert.Equal(t, models.CategoryFlorist, ai.vendors[1].Category)
	assert.Equal(t, models.PriceExpensive, ai.vendors[1].PriceRange)
}

func TestChat_EmptyVendorListIsAccepted(t *testing.T) {
	ai := &fakeAIService{answer: "none"}
	router, _ := newTestRouter(t, ai)

	w := doJSON(router, http.MethodPost, "/api/chat", `{"query":"anyone?","vendors":[]}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChat_MissingFields(t *testing.T) {
	ai := &fakeAIService{}
	router, _ := newTestRouter(t, ai)

	for _, body := range []string{`{"query":"","vendors":[]}`, `{"query":"hi"}`, `{"vendors":[]}`, `{}`} {
		w := doJSON(router, http.MethodPost, "/api/chat", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Query and vendors are required", decodeMessage(t, w))
	}
	assert.Zero(t, ai.calls)
}

func TestChat_MissingCredential(t *testing.T) {
	router, _ := newTestRouter(t, services.NewAIService(nil, "", 1000))

	w := doJSON(router, http.MethodPost, "/api/chat", `{"query":"hi","vendors":[]}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server configuration error: Missing API Key", decodeMessage(t, w))
}

func TestChat_ModelFailure(t *testing.T) {
	router, _ := newTestRouter(t, &fakeAIService{err: errors.New("timeout")})

	w := doJSON(router, http.MethodPost, "/api/chat", `{"query":"hi","vendors":[]}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, w))
}

func multipartFile(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestExtractFile_TextDocument(t *testing.T) {
	ai := &fakeAIService{extraction: &models.ExtractionResponse{Name: "Castello Bianco", Category: models.CategoryVenue, PriceRange: models.PriceLuxury, Tags: []string{}}}
	router, _ := newTestRouter(t, ai)

	body, contentType := multipartFile(t, "brochure.txt", "Castello Bianco, Chianti. Weddings up to 200 guests.")
	req := httptest.NewRequest(http.MethodPost, "/api/extract/file", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.FileExtractionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Castello Bianco", got.Name)
	assert.Equal(t, "Castello Bianco, Chianti. Weddings up to 200 guests.", got.Details)
	assert.Equal(t, got.Details, ai.text)
}

func TestExtractFile_Rejections(t *testing.T) {
	ai := &fakeAIService{}
	router, _ := newTestRouter(t, ai)

	body, contentType := multipartFile(t, "photo.png", "binary")
	req := httptest.NewRequest(http.MethodPost, "/api/extract/file", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, contentType = multipartFile(t, "empty.txt", "   ")
	req = httptest.NewRequest(http.MethodPost, "/api/extract/file", body)
	req.Header.Set("Content-Type", contentType)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/extract/file", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, ai.calls)
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, &fakeAIService{})
	w := doJSON(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
