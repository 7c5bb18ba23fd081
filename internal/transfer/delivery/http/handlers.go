package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
	"mentalbank/internal/transfer"
	"mentalbank/pkg/response"
)

// uploads larger than this are rejected before reading
const maxImportSize = 16 << 20 // 16 MiB

type exportReq struct {
	Format string `form:"format" binding:"omitempty,oneof=json csv"`
}

type importResp struct {
	TasksImported      int `json:"tasks_imported"`
	CategoriesImported int `json:"categories_imported"`
}

// Export godoc
// @Summary     Download all data as a file
// @Description Streams the full data set as JSON (default) or sectioned CSV.
// @Tags        Transfer
// @Produce     json
// @Produce     text/csv
// @Param       format query string false "json or csv (default: json)"
// @Success     200 {file} file
// @Router      /api/v1/transfer/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	format := transfer.Format(req.Format)
	if format == "" {
		format = transfer.FormatJSON
	}

	output, err := h.uc.Export(ctx, sc, transfer.ExportInput{Format: format})
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(200, output.ContentType, output.Data)
}

// Import godoc
// @Summary     Restore data from an exported file
// @Description Replaces all tasks, categories and the balance target with the uploaded document. All-or-nothing.
// @Tags        Transfer
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Exported .json or .csv file"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Unsupported file format"
// @Failure     422 {object} response.Resp "Failed to process import file"
// @Router      /api/v1/transfer/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, err)
		return
	}
	if fileHeader.Size > maxImportSize {
		response.Error(c, h.mapError(transfer.ErrProcessingFailed))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.l.Errorf(ctx, "transfer import open: %v", err)
		response.Error(c, h.mapError(transfer.ErrProcessingFailed))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.l.Errorf(ctx, "transfer import read: %v", err)
		response.Error(c, h.mapError(transfer.ErrProcessingFailed))
		return
	}

	output, err := h.uc.Import(ctx, sc, transfer.ImportInput{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, importResp{
		TasksImported:      output.TasksImported,
		CategoriesImported: output.CategoriesImported,
	})
}
