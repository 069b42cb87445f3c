package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/eventvendors/models"
	"github/itish2003/eventvendors/services"
)

// VendorController exposes the vendor collection as JSON.
type VendorController struct {
	store *services.VendorStore
}

func NewVendorController(store *services.VendorStore) *VendorController {
	return &VendorController{store: store}
}

// ListVendors is the Gin handler for GET /api/vendors. It accepts the optional
// `category` and `q` query parameters and leaves the UI selection alone.
func (c *VendorController) ListVendors(ctx *gin.Context) {
	var selected *models.Category
	if raw := ctx.Query("category"); raw != "" {
		category, err := models.ParseCategory(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
			return
		}
		selected = &category
	}

	vendors := services.DisplayedVendors(c.store.Vendors(), selected, ctx.Query("q"))
	ctx.JSON(http.StatusOK, models.VendorListResponse{Count: len(vendors), Vendors: vendors})
}

// CategoryCounts is the Gin handler for GET /api/categories.
func (c *VendorController) CategoryCounts(ctx *gin.Context) {
	vendors := c.store.Vendors()
	counts := services.CategoryCounts(vendors)

	resp := models.CategoryCountsResponse{Total: len(vendors)}
	for _, category := range models.Categories {
		resp.Categories = append(resp.Categories, models.CategoryCount{Category: category, Count: counts[category]})
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *VendorController) GetVendor(ctx *gin.Context) {
	vendor, err := c.store.Get(ctx.Param("id"))
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vendor)
}

func (c *VendorController) CreateVendor(ctx *gin.Context) {
	var in models.VendorInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	vendor, err := c.store.Create(in)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, vendor)
}

func (c *VendorController) UpdateVendor(ctx *gin.Context) {
	var in models.VendorInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	vendor, err := c.store.Update(ctx.Param("id"), in)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vendor)
}

func (c *VendorController) DeleteVendor(ctx *gin.Context) {
	if !c.store.Delete(ctx.Param("id")) {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Message: services.ErrVendorNotFound.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func respondStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrVendorNotFound):
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Message: services.ErrVendorNotFound.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: msgInternal})
	}
}
