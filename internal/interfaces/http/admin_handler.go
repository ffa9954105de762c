package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-analytics/internal/application/ingestion"
	"github.com/jhoicas/invoice-analytics/pkg/logger"
)

// AdminHandler operaciones de mantenimiento (recarga de documentos).
type AdminHandler struct {
	reload *ingestion.ReloadUseCase
	log    *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(reload *ingestion.ReloadUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{reload: reload, log: log}
}

// Reload godoc
// @Summary      Recarga completa desde la fuente configurada
// @Description  Borra proveedores, facturas y líneas y vuelve a ingerir INGEST_SOURCE.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.IngestionResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/reload [post]
func (h *AdminHandler) Reload(c *fiber.Ctx) error {
	res, err := h.reload.Reload(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("recarga manual fallida")
		return respondError(c, err)
	}
	return c.JSON(res)
}
