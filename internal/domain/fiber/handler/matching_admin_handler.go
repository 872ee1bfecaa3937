package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthive/talenthive-backend/internal/dto"
	"github.com/talenthive/talenthive-backend/internal/usecase"
	"github.com/talenthive/talenthive-backend/internal/util"
)

// MatchingAdminHandler exposes the admin surface of the matching subsystem.
// Role checks happen at the upstream gateway; these routes assume an admin
// caller.
type MatchingAdminHandler struct {
	uc *usecase.MatchingAdminUsecase
}

func NewMatchingAdminHandler(uc *usecase.MatchingAdminUsecase) *MatchingAdminHandler {
	return &MatchingAdminHandler{uc: uc}
}

func (h *MatchingAdminHandler) RegisterRoutes(app *fiber.App) {
	admin := app.Group("/api/admin")
	admin.Get("/matching-settings", h.GetSettings)
	admin.Put("/matching-settings", h.UpdateSettings)
	admin.Put("/toggle-auto-matching", h.ToggleAutoMatching)
	admin.Post("/matching/queue/:jobId/rerun", h.RerunMatching)
	admin.Get("/matching/queue/:id", h.GetQueueEntry)
}

func (h *MatchingAdminHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.uc.GetSettings()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load matching settings",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get matching settings",
		Data:    settings,
	})
}

func (h *MatchingAdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var input dto.UpdateMatchSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid settings payload",
		}, err)
	}

	settings, err := h.uc.UpdateSettings(input)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update matching settings",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update matching settings",
		Data:    settings,
	})
}

func (h *MatchingAdminHandler) ToggleAutoMatching(c *fiber.Ctx) error {
	var input dto.ToggleAutoMatchingInput
	if err := c.BodyParser(&input); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid toggle payload",
		}, err)
	}

	settings, err := h.uc.ToggleAutoMatching(input.Enabled)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to toggle auto matching",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success toggle auto matching",
		Data:    settings,
	})
}

func (h *MatchingAdminHandler) GetQueueEntry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Queue ID required",
		}, err)
	}

	entry, err := h.uc.GetQueueEntry(uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrQueueEntryNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Queue entry not found",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load queue entry",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get queue entry",
		Data:    entry,
	})
}

func (h *MatchingAdminHandler) RerunMatching(c *fiber.Ctx) error {
	jobID, err := strconv.ParseUint(c.Params("jobId"), 10, 64)
	if err != nil || jobID == 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Job ID required",
		}, err)
	}

	queueID, err := h.uc.RerunMatching(uint(jobID))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to enqueue matching rerun",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success enqueue matching rerun",
		Data:    fiber.Map{"status": "queued", "job_id": jobID, "queue_id": queueID},
	})
}
