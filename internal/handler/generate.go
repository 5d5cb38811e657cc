package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"codeweaver/internal/model"
	"codeweaver/internal/pkg/extract"
	"codeweaver/internal/service"
)

// GenerateHandler streams generated text for one endpoint binding
// (code or docs).
type GenerateHandler struct {
	svc   *service.GenerationService
	delay time.Duration
}

// NewGenerateHandler creates a generation handler. delay is the artificial
// pacing pause between forwarded fragments; zero disables it.
func NewGenerateHandler(svc *service.GenerationService, delay time.Duration) *GenerateHandler {
	return &GenerateHandler{
		svc:   svc,
		delay: delay,
	}
}

// Generate handles one generation request.
// @Summary      Generate text from a description and optional file
// @Description  Streams model output as plain text; errors are reported in-band within the stream
// @Accept       multipart/form-data
// @Produce      plain
// @Param        description  formData  string  true   "What to generate"
// @Param        file         formData  file    false  "Optional context document (.docx or plain text)"
// @Success      200  {string}  string  "streamed generated text"
// @Failure      400  {object}  model.ErrorResponse
// @Router       /api/generate-code [post]
// @Router       /api/generate-docs [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	description := c.PostForm("description")
	if description == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    40001,
			Message: "description is required",
		})
		return
	}

	var fileText string
	if fh, err := c.FormFile("file"); err == nil {
		fileText = readUpload(fh)
	}

	ch := h.svc.Stream(c.Request.Context(), description, fileText)

	// Send headers before the first fragment is available.
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		fragment, ok := <-ch
		if !ok {
			return false
		}
		_, _ = io.WriteString(w, fragment)
		if h.delay > 0 {
			time.Sleep(h.delay)
		}
		return true
	})
}

// readUpload reads and extracts an uploaded file. Failures are swallowed
// into a placeholder string that becomes the file content.
func readUpload(fh *multipart.FileHeader) string {
	f, err := fh.Open()
	if err != nil {
		return "Error reading file: " + err.Error()
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "Error reading file: " + err.Error()
	}

	return extract.FromUpload(fh.Filename, data)
}
