package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthive/talenthive-backend/internal/middleware"
	"github.com/talenthive/talenthive-backend/internal/usecase"
	"github.com/talenthive/talenthive-backend/internal/util"
)

type RecommendationHandler struct {
	uc *usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/matching/recommendations", middleware.RequireUser(), h.Recommendations)
}

func (h *RecommendationHandler) Recommendations(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(uint)

	result, err := h.uc.Recommend(usecase.RecommendationQuery{
		UserID: userID,
		Type:   c.Query("type", usecase.TypeAll),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrCandidateNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Candidate not found for this user",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to compute recommendations",
		}, err)
	}

	return c.JSON(result)
}
