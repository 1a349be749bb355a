package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/movie-review-api/internal/application"
	"github.com/oksasatya/movie-review-api/internal/domain/repository"
	"github.com/oksasatya/movie-review-api/internal/interface/middleware"
	"github.com/oksasatya/movie-review-api/pkg/response"
	"github.com/oksasatya/movie-review-api/pkg/validation"
)

// ReviewHandler serves review CRUD and the public listing endpoints.
type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type createReviewRequest struct {
	MovieID    string `json:"movieId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"reviewText" binding:"required"`
}

type updateReviewRequest struct {
	MovieID    *string `json:"movieId"`
	Rating     *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	ReviewText *string `json:"reviewText"`
}

// Create POST /reviews (auth required)
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Describe(err))
		return
	}
	if strings.TrimSpace(req.ReviewText) == "" {
		response.Err(c, http.StatusBadRequest, "reviewText is required")
		return
	}

	principal := middleware.Principal(c)
	rv, err := h.Svc.Create(c.Request.Context(), principal.UserID, application.CreateReviewInput{
		MovieID:    req.MovieID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			response.Err(c, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.WithError(err).Error("review creation failed")
		response.Err(c, http.StatusInternalServerError, "Something went wrong while saving the review.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review added!", "newReview": rv})
}

// GetByID GET /reviews/:id
func (h *ReviewHandler) GetByID(c *gin.Context) {
	rv, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrReviewNotFound) {
			response.Err(c, http.StatusNotFound, "Could not find a review with the given ID.")
			return
		}
		h.Logger.WithError(err).Error("review fetch failed")
		response.Err(c, http.StatusInternalServerError, "Something went wrong while fetching the review.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review found!", "foundReview": rv})
}

// List GET /reviews?userId=&movieId=
// An empty result is a normal empty array, never an error.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.Svc.List(c.Request.Context(), c.Query("userId"), c.Query("movieId"))
	if err != nil {
		h.Logger.WithError(err).Error("review listing failed")
		response.Err(c, http.StatusInternalServerError, "Something went wrong while fetching reviews.")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ListByMovie GET /reviews/movie/:movieId
// Unlike List, an empty result yields a message payload instead of [].
func (h *ReviewHandler) ListByMovie(c *gin.Context) {
	reviews, err := h.Svc.ListByMovie(c.Request.Context(), c.Param("movieId"))
	if err != nil {
		h.Logger.WithError(err).Error("review listing failed")
		response.Err(c, http.StatusInternalServerError, "Something went wrong while fetching reviews.")
		return
	}
	if len(reviews) == 0 {
		response.Message(c, http.StatusOK, "No reviews found.")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Update PUT /reviews/:id (auth required, owner only)
func (h *ReviewHandler) Update(c *gin.Context) {
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Describe(err))
		return
	}
	if req.ReviewText != nil && strings.TrimSpace(*req.ReviewText) == "" {
		response.Err(c, http.StatusBadRequest, "reviewText must not be empty")
		return
	}

	principal := middleware.Principal(c)
	rv, err := h.Svc.Update(c.Request.Context(), principal.UserID, c.Param("id"), application.UpdateReviewInput{
		MovieID:    req.MovieID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrReviewNotFound):
			response.Err(c, http.StatusNotFound, "The review does not exist.")
		case errors.Is(err, application.ErrNotReviewOwner):
			response.Err(c, http.StatusForbidden, "You do not have permission to update this review.")
		default:
			h.Logger.WithError(err).Error("review update failed")
			response.Err(c, http.StatusInternalServerError, "Something went wrong while updating the review.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated!", "updatedReview": rv})
}

// Delete DELETE /reviews/:id (auth required, owner only)
func (h *ReviewHandler) Delete(c *gin.Context) {
	principal := middleware.Principal(c)
	rv, err := h.Svc.Delete(c.Request.Context(), principal.UserID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrReviewNotFound):
			response.Err(c, http.StatusNotFound, "The review does not exist.")
		case errors.Is(err, application.ErrNotReviewOwner):
			response.Err(c, http.StatusForbidden, "You do not have permission to delete this review.")
		default:
			h.Logger.WithError(err).Error("review deletion failed")
			response.Err(c, http.StatusInternalServerError, "Something went wrong while deleting the review.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted!", "deletedReview": rv})
}
