package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Amenidades-api/internal/application/dto"
	"github.com/jhoicas/Amenidades-api/internal/application/spotcheck"
	"github.com/jhoicas/Amenidades-api/internal/domain"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// SpotCheckHandler maneja el workflow de spot check (protegido): iniciar la
// ejecución, consultar la predicción, cerrar con los conteos físicos y
// consultar el historial de auditoría.
type SpotCheckHandler struct {
	uc       *spotcheck.UseCase
	reportUC *spotcheck.ReportUseCase
}

// NewSpotCheckHandler construye el handler.
func NewSpotCheckHandler(uc *spotcheck.UseCase, reportUC *spotcheck.ReportUseCase) *SpotCheckHandler {
	return &SpotCheckHandler{uc: uc, reportUC: reportUC}
}

func toRunResponse(run *spotcheck.Run) dto.RunResponse {
	out := dto.RunResponse{
		RunID:    run.ID,
		Location: run.Location,
		State:    string(run.State),
		From:     run.From.Format(dateLayout),
		To:       run.To.Format(dateLayout),
		Bookings: len(run.Bookings),
	}
	for _, item := range run.Items {
		expected := run.Expected[item.Name]
		out.Items = append(out.Items, dto.RunItemPreview{
			ItemName:            item.Name,
			CurrentQuantity:     item.Quantity,
			ExpectedConsumption: run.Consumption[item.Name],
			ExpectedQuantity:    expected,
			SuggestedVerified:   expected,
			RebuyQuantity:       item.RebuyQuantity,
			Tolerance:           item.Tolerance,
		})
	}
	return out
}

func toSpotCheckResponse(check *entity.SpotCheck) dto.SpotCheckResponse {
	return dto.SpotCheckResponse{
		ID:            check.ID,
		Location:      check.Location,
		Timestamp:     check.Timestamp,
		OperatorName:  check.OperatorName,
		ItemsUpdated:  check.ItemsUpdated,
		AlarmsCreated: check.AlarmsCreated,
	}
}

// Start godoc
// @Summary      Iniciar ejecución de spot check
// @Description  Trae las reservas del rango y calcula la predicción por ítem.
// @Tags         spot-checks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartRunRequest  true  "location, from, to (2006-01-02)"
// @Success      201   {object}  dto.RunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/spot-checks/runs [post]
func (h *SpotCheckHandler) Start(c *fiber.Ctx) error {
	var in dto.StartRunRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	from, errFrom := time.Parse(dateLayout, in.From)
	to, errTo := time.Parse(dateLayout, in.To)
	if in.Location == "" || errFrom != nil || errTo != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location, from y to (2006-01-02) son requeridos"})
	}
	run, err := h.uc.Start(c.UserContext(), spotcheck.StartInput{Location: in.Location, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la ubicación no tiene amenidades"})
		case errors.Is(err, domain.ErrNoRulesConfigured):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_RULES", Message: "no hay reglas de consumo configuradas para la ubicación"})
		case errors.Is(err, domain.ErrBookingSource):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BOOKING_SOURCE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toRunResponse(run))
}

// GetRun godoc
// @Summary      Consultar ejecución en curso
// @Tags         spot-checks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ejecución"
// @Success      200  {object}  dto.RunResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spot-checks/runs/{id} [get]
func (h *SpotCheckHandler) GetRun(c *fiber.Ctx) error {
	run, err := h.uc.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "RUN_NOT_FOUND", Message: "ejecución no encontrada o ya completada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toRunResponse(run))
}

// Reconcile godoc
// @Summary      Cerrar ejecución con los conteos físicos
// @Description  Ítems sin conteo explícito usan la cantidad esperada por defecto.
// @Tags         spot-checks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ejecución"
// @Param        body  body  dto.ReconcileRequest  true  "Conteos verificados"
// @Success      200   {object}  dto.ReconcileReport
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/spot-checks/runs/{id}/reconcile [post]
func (h *SpotCheckHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	operator := spotcheck.Operator{ID: GetUserID(c), Name: GetUserName(c)}
	report, err := h.uc.Reconcile(c.UserContext(), c.Params("id"), operator, in.Counts)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRunNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "RUN_NOT_FOUND", Message: "ejecución no encontrada o ya completada"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la ejecución no está esperando conteos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// History godoc
// @Summary      Historial de spot checks
// @Tags         spot-checks
// @Security     Bearer
// @Produce      json
// @Param        location  query  string  false  "Ubicación (vacío = todas)"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.SpotCheckResponse
// @Router       /api/spot-checks [get]
func (h *SpotCheckHandler) History(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	checks, err := h.uc.History(c.Query("location"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SpotCheckResponse, 0, len(checks))
	for _, check := range checks {
		out = append(out, toSpotCheckResponse(check))
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Descargar reporte PDF de un spot check
// @Tags         spot-checks
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del spot check"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spot-checks/{id}/report [get]
func (h *SpotCheckHandler) ReportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.GeneratePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "spot check no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="spot-check.pdf"`)
	return c.Send(pdfBytes)
}
