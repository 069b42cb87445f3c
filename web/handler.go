// Package web renders the vendor book UI: the category dashboard, the category
// detail view with search, the vendor form and the chat panel.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github/itish2003/eventvendors/client"
	"github/itish2003/eventvendors/models"
	"github/itish2003/eventvendors/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Assistant is the AI client the views use. *client.Client satisfies it.
type Assistant interface {
	Extract(ctx context.Context, rawText string) (*models.ExtractionResponse, error)
	Chat(ctx context.Context, query string, vendors []models.Vendor) string
}

type Handler struct {
	store     *services.VendorStore
	assistant Assistant
}

func NewHandler(store *services.VendorStore, assistant Assistant) *Handler {
	return &Handler{store: store, assistant: assistant}
}

// Templates parses the embedded view templates.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"label": func(c models.Category) string { return displayFor(c).Label },
		"icon":  func(c models.Category) string { return displayFor(c).Icon },
		"color": func(c models.Category) string { return displayFor(c).Color },
		"join":  strings.Join,
		"path":  url.PathEscape,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}

// RegisterRoutes installs the templates and the UI routes.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(Templates())

	router.GET("/", h.Dashboard)
	router.GET("/categories/:category", h.Category)
	router.GET("/vendors/new", h.NewVendor)
	router.GET("/vendors/edit/:id", h.EditVendor)
	router.POST("/vendors/analyze", h.Analyze)
	router.POST("/vendors", h.SaveVendor)
	router.POST("/vendors/delete/:id", h.DeleteVendor)
	router.GET("/chat", h.ChatPanel)
	router.POST("/chat", h.Ask)
}

type categoryCard struct {
	Category models.Category
	Count    int
}

// Dashboard shows one card per category and clears the current selection.
func (h *Handler) Dashboard(c *gin.Context) {
	h.store.Select(nil, "")

	counts := h.store.CategoryCounts()
	cards := make([]categoryCard, 0, len(models.Categories))
	total := 0
	for _, category := range models.Categories {
		cards = append(cards, categoryCard{Category: category, Count: counts[category]})
		total += counts[category]
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Cards": cards,
		"Total": total,
	})
}

// Category lists the vendors of one category, filtered by the `q` search parameter.
// Surrounding whitespace typed in the search box is dropped.
func (h *Handler) Category(c *gin.Context) {
	category, err := models.ParseCategory(c.Param("category"))
	if err != nil {
		c.String(http.StatusNotFound, "Unknown category")
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	vendors := h.store.Select(&category, query)

	c.HTML(http.StatusOK, "category.html", gin.H{
		"Category": category,
		"Query":    query,
		"Vendors":  vendors,
	})
}

type formView struct {
	Title       string
	Vendor      models.Vendor
	Tags        string
	Error       string
	Categories  []models.Category
	PriceRanges []models.PriceRange
}

func (h *Handler) renderForm(c *gin.Context, status int, v formView) {
	if v.Title == "" {
		v.Title = "New vendor"
		if v.Vendor.ID != "" {
			v.Title = "Edit vendor"
		}
	}
	v.Categories = models.Categories
	v.PriceRanges = models.PriceRanges
	c.HTML(status, "form.html", v)
}

// NewVendor opens an empty form, preselecting the `category` parameter when valid.
func (h *Handler) NewVendor(c *gin.Context) {
	vendor := models.Vendor{Category: models.CategoryPhotographer, PriceRange: models.DefaultPriceRange}
	if category, err := models.ParseCategory(c.Query("category")); err == nil {
		vendor.Category = category
	}
	h.renderForm(c, http.StatusOK, formView{Vendor: vendor})
}

func (h *Handler) EditVendor(c *gin.Context) {
	vendor, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Vendor not found")
		return
	}
	h.renderForm(c, http.StatusOK, formView{Vendor: vendor, Tags: strings.Join(vendor.Tags, ", ")})
}

// vendorFromForm reads the posted form. Unknown enum values are kept as posted
// so that validation can report them.
func vendorFromForm(c *gin.Context) (models.Vendor, string) {
	tags := c.PostForm("tags")
	vendor := models.Vendor{
		ID:          c.PostForm("id"),
		Name:        c.PostForm("name"),
		Category:    models.Category(c.PostForm("category")),
		Description: c.PostForm("description"),
		PriceRange:  models.PriceRange(c.PostForm("priceRange")),
		Location:    c.PostForm("location"),
		Contact:     c.PostForm("contact"),
		Website:     c.PostForm("website"),
		Details:     c.PostForm("details"),
		Tags:        parseTags(tags),
	}
	if category, err := models.ParseCategory(string(vendor.Category)); err == nil {
		vendor.Category = category
	}
	return vendor, tags
}

// Analyze fills the form from the pasted details using the extraction client.
func (h *Handler) Analyze(c *gin.Context) {
	vendor, tags := vendorFromForm(c)
	view := formView{Vendor: vendor, Tags: tags}

	result, err := h.assistant.Extract(c.Request.Context(), vendor.Details)
	if err != nil {
		var extractionErr *client.ExtractionError
		if errors.As(err, &extractionErr) {
			view.Error = extractionErr.Error()
		} else {
			view.Error = client.ExtractionFailedMessage
		}
		h.renderForm(c, http.StatusOK, view)
		return
	}
	if result != nil {
		view.Vendor.Name = result.Name
		view.Vendor.Category = result.Category
		view.Vendor.Description = result.Description
		view.Vendor.PriceRange = result.PriceRange
		view.Vendor.Location = result.Location
		view.Vendor.Contact = result.Contact
		view.Vendor.Tags = result.Tags
		view.Tags = strings.Join(result.Tags, ", ")
	}
	h.renderForm(c, http.StatusOK, view)
}

// SaveVendor creates the vendor, or edits it when the form carries a known id.
func (h *Handler) SaveVendor(c *gin.Context) {
	vendor, tags := vendorFromForm(c)

	saved, err := h.store.Save(vendor.ID, vendor.Input())
	if err != nil {
		log.Printf("WEB: Could not save vendor: %v", err)
		h.renderForm(c, http.StatusBadRequest, formView{Vendor: vendor, Tags: tags, Error: err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, "/categories/"+url.PathEscape(string(saved.Category)))
}

func (h *Handler) DeleteVendor(c *gin.Context) {
	target := "/"
	if vendor, err := h.store.Get(c.Param("id")); err == nil {
		target = "/categories/" + url.PathEscape(string(vendor.Category))
	}
	h.store.Delete(c.Param("id"))
	c.Redirect(http.StatusSeeOther, target)
}

func (h *Handler) ChatPanel(c *gin.Context) {
	c.HTML(http.StatusOK, "chat.html", gin.H{"Count": len(h.store.Vendors()), "Query": ""})
}

// Ask answers a question about the saved vendors. A blank question just re-renders the panel.
func (h *Handler) Ask(c *gin.Context) {
	vendors := h.store.Vendors()
	query := strings.TrimSpace(c.PostForm("query"))
	data := gin.H{"Count": len(vendors), "Query": query}
	if query != "" {
		data["Answer"] = h.assistant.Chat(c.Request.Context(), query, vendors)
	}
	c.HTML(http.StatusOK, "chat.html", data)
}
