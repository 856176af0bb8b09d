package analyses

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eshu1234m/resume-analyzer-app/internal/extract"
	"github.com/eshu1234m/resume-analyzer-app/internal/llm"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/server/respond"
)

const defaultMaxUploadBytes = 10 << 20 // 10MB

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No resume file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read resume file")
		return
	}
	defer file.Close()

	document, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read resume file", zap.Error(err))
		return
	}

	jobDescription := c.PostForm("job_description")

	result, err := h.Svc.Analyze(
		c.Request.Context(),
		document,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Filename,
		jobDescription,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// The sanitizer may fall back to plain text; it is still served under a
	// JSON content type. Existing callers depend on this leniency.
	respond.RawJSON(c, http.StatusOK, []byte(result))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var parseErr *extract.ParseError
	var blockedErr *llm.BlockedError

	switch {
	case errors.As(err, &parseErr):
		respond.Error(c, http.StatusBadRequest,
			fmt.Sprintf("Error parsing resume: %v", parseErr.Err), zap.Error(err))
	case errors.Is(err, extract.ErrEmptyContent):
		respond.Error(c, http.StatusBadRequest,
			"Could not extract text from the provided resume")
	case errors.Is(err, extract.ErrUnsupported):
		respond.Error(c, http.StatusBadRequest,
			"Unsupported resume file type", zap.Error(err))
	case errors.As(err, &blockedErr):
		respond.Error(c, http.StatusBadRequest,
			fmt.Sprintf("Analysis failed: The content was blocked for safety reasons (%s).", blockedErr.Reason))
	case errors.Is(err, llm.ErrEmptyResponse):
		respond.Error(c, http.StatusBadRequest,
			"Analysis failed: The AI model returned an empty response.")
	default:
		respond.Error(c, http.StatusInternalServerError,
			fmt.Sprintf("An unexpected server error occurred: %v", err), zap.Error(err))
	}
}
