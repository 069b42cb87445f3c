package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github/itish2003/eventvendors/models"
	"github/itish2003/eventvendors/services"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgTextRequired     = "Text is required"
	msgChatRequired     = "Query and vendors are required"
	msgMissingAPIKey    = "Server configuration error: Missing API Key"
	msgNoContent        = "No content generated"
	msgInternal         = "Internal server error"
)

// AIController serves the extraction and chat endpoints backed by the language model.
type AIController struct {
	aiService      services.AIService
	maxUploadBytes int64
}

func NewAIController(service services.AIService, maxUploadBytes int64) *AIController {
	return &AIController{
		aiService:      service,
		maxUploadBytes: maxUploadBytes,
	}
}

// Extract is the Gin handler for the POST /api/extract endpoint.
func (c *AIController) Extract(ctx *gin.Context) {
	var req models.ExtractRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Text == "" {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: msgTextRequired})
		return
	}

	result, err := c.aiService.ExtractVendor(ctx.Request.Context(), req.Text)
	if err != nil {
		log.Printf("API Extract Error: %v", err)
		respondAIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// ExtractFile is the Gin handler for the POST /api/extract/file endpoint.
// It reads the text of an uploaded .txt, .md or .pdf document and extracts a vendor from it.
func (c *AIController) ExtractFile(ctx *gin.Context) {
	if c.maxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadBytes)
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "File is required"})
		return
	}
	if !services.IsSupportedDocument(header.Filename) {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Unsupported file type"})
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Printf("API Extract File Error: %v", err)
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: msgInternal})
		return
	}
	defer file.Close()

	text, err := services.ExtractText(header.Filename, file)
	if err != nil {
		log.Printf("API Extract File Error: could not read '%s': %v", header.Filename, err)
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Could not read the document"})
		return
	}
	if strings.TrimSpace(text) == "" {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: msgTextRequired})
		return
	}

	result, err := c.aiService.ExtractVendor(ctx.Request.Context(), text)
	if err != nil {
		log.Printf("API Extract File Error: %v", err)
		respondAIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.FileExtractionResponse{ExtractionResponse: *result, Details: text})
}

// Chat is the Gin handler for the POST /api/chat endpoint.
func (c *AIController) Chat(ctx *gin.Context) {
	var req models.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Query == "" || req.Vendors == nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: msgChatRequired})
		return
	}

	answer, err := c.aiService.ChatWithVendors(ctx.Request.Context(), req.Query, req.VendorList())
	if err != nil {
		log.Printf("API Chat Error: %v", err)
		respondAIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.ChatResponse{Response: answer})
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(ctx *gin.Context) {
	ctx.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Message: msgMethodNotAllowed})
}

func respondAIError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingCredential):
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: msgMissingAPIKey})
	case errors.Is(err, services.ErrNoContent):
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: msgNoContent})
	default:
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: msgInternal})
	}
}
