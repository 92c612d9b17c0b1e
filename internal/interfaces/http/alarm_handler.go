package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Amenidades-api/internal/application/dto"
	"github.com/jhoicas/Amenidades-api/internal/application/usecase"
	"github.com/jhoicas/Amenidades-api/internal/domain"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
)

// AlarmHandler maneja el ciclo de vida de alarmas (protegido).
type AlarmHandler struct {
	uc *usecase.AlarmUseCase
}

// NewAlarmHandler construye el handler.
func NewAlarmHandler(uc *usecase.AlarmUseCase) *AlarmHandler {
	return &AlarmHandler{uc: uc}
}

func toAlarmResponse(a *entity.Alarm) dto.AlarmResponse {
	return dto.AlarmResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Type:        string(a.Type),
		Status:      string(a.Status),
		ActionLog:   a.ActionLog,
		CreatedAt:   a.CreatedAt,
	}
}

// List godoc
// @Summary      Listar alarmas
// @Tags         alarms
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Active | Completed | Snoozed"
// @Param        type    query  string  false  "Reorder | Consistency"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.AlarmResponse
// @Router       /api/alarms [get]
func (h *AlarmHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	alarms, err := h.uc.List(c.Query("status"), c.Query("type"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.AlarmResponse, 0, len(alarms))
	for _, a := range alarms {
		out = append(out, toAlarmResponse(a))
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Completar alarma
// @Tags         alarms
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la alarma"
// @Success      200  {object}  dto.AlarmResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alarms/{id}/complete [post]
func (h *AlarmHandler) Complete(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Complete)
}

// Snooze godoc
// @Summary      Posponer alarma
// @Tags         alarms
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la alarma"
// @Success      200  {object}  dto.AlarmResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alarms/{id}/snooze [post]
func (h *AlarmHandler) Snooze(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Snooze)
}

func (h *AlarmHandler) transition(c *fiber.Ctx, fn func(id, operator string) (*entity.Alarm, error)) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	alarm, err := fn(id, GetUserName(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alarma no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toAlarmResponse(alarm))
}
