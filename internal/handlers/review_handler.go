package handlers

import (
	"errors"
	"strconv"
	"strings"

	"reviewboard-backend/internal/models"
	"reviewboard-backend/internal/repository"
	"reviewboard-backend/internal/services"
	"reviewboard-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// ListReviews godoc
// @Summary List reviews
// @Description Get all reviews, optionally filtered and sorted
// @Tags reviews
// @Accept json
// @Produce json
// @Param type query string false "Exact media type (Movie, Show, Book, Album, ...)"
// @Param genres query string false "Comma-separated genre names, matched inclusively"
// @Param scoreMin query number false "Minimum score"
// @Param scoreMax query number false "Maximum score"
// @Param searchQuery query string false "Case-insensitive substring match on title or creator"
// @Param sort query string false "Sort key (score-desc, score-asc); default is newest first"
// @Success 200 {array} ReviewResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	ctx := c.Context()

	filter := models.ListFilter{
		Type:        c.Query("type"),
		SearchQuery: c.Query("searchQuery"),
		Sort:        c.Query("sort"),
		Genres:      parseGenresParam(c.Query("genres")),
	}

	var err error
	if filter.ScoreMin, err = parseScoreParam(c.Query("scoreMin")); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "scoreMin must be a number")
	}
	if filter.ScoreMax, err = parseScoreParam(c.Query("scoreMax")); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "scoreMax must be a number")
	}

	items, err := h.service.ListReviews(ctx, filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list reviews")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, toReviewResponses(items))
}

// GetReviewByID godoc
// @Summary Get one review
// @Description Get a single review by id, genres included
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} ReviewResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReviewByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	item, err := h.service.GetReviewByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Review not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, toReviewResponse(item))
}

// CreateReview godoc
// @Summary Create a review
// @Description Create a new review; genres are sent as a JSON-encoded array of names
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body ReviewRequest true "Review request object"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	ctx := c.Context()

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.service.CreateReview(ctx, req.toInput())
	if err != nil {
		return h.mapServiceError(c, err, "Failed to create review")
	}

	return utils.JSONResponse(c, fiber.StatusCreated, CreatedResponse{ID: item.ID})
}

// UpdateReview godoc
// @Summary Update a review
// @Description Replace every field of an existing review, including its entire genre set
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param review body ReviewRequest true "Review request object"
// @Success 200 {object} ReviewResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.service.UpdateReview(ctx, uint(id), req.toInput())
	if err != nil {
		return h.mapServiceError(c, err, "Failed to update review")
	}

	return utils.JSONResponse(c, fiber.StatusOK, toReviewResponse(item))
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Delete a review and its genre memberships; shared genre rows are kept. Deleting an absent id still succeeds.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	if err := h.service.DeleteReview(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Review deleted successfully")
}

// ListGenres godoc
// @Summary List genres
// @Description Get every known genre name, sorted alphabetically
// @Tags genres
// @Accept json
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} utils.ErrorBody
// @Router /genres [get]
func (h *ReviewHandler) ListGenres(c *fiber.Ctx) error {
	ctx := c.Context()

	genres, err := h.service.ListGenres(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list genres")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}

	return utils.JSONResponse(c, fiber.StatusOK, names)
}

// mapServiceError translates service failures: field and format problems get
// a 400, a missing record gets a 404, anything from the store gets a 500
// with the underlying message.
func (h *ReviewHandler) mapServiceError(c *fiber.Ctx, err error, logMsg string) error {
	var validationErr *services.ValidationError
	var formatErr *services.FormatError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &formatErr):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Review not found")
	default:
		h.logger.WithError(err).Error(logMsg)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
}

func parseGenresParam(raw string) []string {
	if raw == "" {
		return nil
	}

	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func parseScoreParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
