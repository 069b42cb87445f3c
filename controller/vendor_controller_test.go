package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/itish2003/eventvendors/models"
)

func createVendor(t *testing.T, router http.Handler, body string) models.Vendor {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/vendors", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var v models.Vendor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestVendorAPI_CRUD(t *testing.T) {
	router, store := newTestRouter(t, &fakeAIService{})

	created := createVendor(t, router, `{"name":"Studio Luce","category":"Photographer","priceRange":"$$$","location":"Florence","tags":["film"]}`)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)
	assert.Len(t, store.Vendors(), 1)

	w := doJSON(router, http.MethodGet, "/api/vendors/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/api/vendors/"+created.ID, `{"name":"Studio Luce & Co","category":"Photographer","priceRange":"$$$$"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Vendor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, models.PriceLuxury, updated.PriceRange)
	assert.Empty(t, updated.Location)

	w = doJSON(router, http.MethodDelete, "/api/vendors/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.Vendors())

	w = doJSON(router, http.MethodDelete, "/api/vendors/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(router, http.MethodGet, "/api/vendors/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(router, http.MethodPut, "/api/vendors/"+created.ID, `{"name":"X","category":"Other","priceRange":"$"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVendorAPI_CreateValidation(t *testing.T) {
	router, store := newTestRouter(t, &fakeAIService{})

	for _, body := range []string{
		`{"category":"Florist","priceRange":"$"}`,
		`{"name":"   ","category":"Florist","priceRange":"$"}`,
		`{"name":"A","category":"Bakery","priceRange":"$"}`,
		`{"name":"A","category":"Florist","priceRange":"cheap"}`,
		`{"name":"A","category":"Florist"}`,
	} {
		w := doJSON(router, http.MethodPost, "/api/vendors", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, store.Vendors())
}

func TestVendorAPI_ListAndCounts(t *testing.T) {
	router, _ := newTestRouter(t, &fakeAIService{})
	createVendor(t, router, `{"name":"Fiori di Lucia","category":"Florist","priceRange":"$$","location":"Siena","tags":["boho"]}`)
	createVendor(t, router, `{"name":"Petali","category":"Florist","priceRange":"$","location":"Lucca"}`)
	createVendor(t, router, `{"name":"Click","category":"Photographer","priceRange":"$","location":"Siena"}`)

	w := doJSON(router, http.MethodGet, "/api/vendors?category=Florist&q=SIENA", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list models.VendorListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Fiori di Lucia", list.Vendors[0].Name)

	w = doJSON(router, http.MethodGet, "/api/vendors?category=Bakery", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	var counts models.CategoryCountsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	assert.Equal(t, 3, counts.Total)
	require.Len(t, counts.Categories, len(models.Categories))
	byCategory := map[models.Category]int{}
	for _, c := range counts.Categories {
		byCategory[c.Category] = c.Count
	}
	assert.Equal(t, 2, byCategory[models.CategoryFlorist])
	assert.Equal(t, 1, byCategory[models.CategoryPhotographer])
	assert.Equal(t, 0, byCategory[models.CategoryMusic])
}
