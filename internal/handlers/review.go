package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"devstudio/internal/repository"
	"devstudio/internal/validation"
	"devstudio/pkg/constants"
)

type ReviewHandler struct {
	reviews *repository.ReviewRepository
}

func NewReviewHandler(reviews *repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type SubmitReviewRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form := validation.ReviewForm{Rating: req.Rating, Comment: req.Comment}
	if fieldErrors := validation.ValidateReviewForm(&form); len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), repository.NewReview{
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: &req.Comment,
	})
	if err != nil {
		log.Printf("SubmitReview error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
		return
	}

	review, err := h.reviews.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("GetReview error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get review"})
		return
	}
	if review == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrReviewNotFound})
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) GetAllReviews(c *gin.Context) {
	reviews, err := h.reviews.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("GetAllReviews error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// GetApprovedReviews serves the public testimonials section, authors attached.
func (h *ReviewHandler) GetApprovedReviews(c *gin.Context) {
	reviews, err := h.reviews.GetApproved(c.Request.Context())
	if err != nil {
		log.Printf("GetApprovedReviews error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list approved reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) GetReviewsByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	reviews, err := h.reviews.GetByUser(c.Request.Context(), uint(userID))
	if err != nil {
		log.Printf("GetReviewsByUser error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
		return
	}

	review, err := h.reviews.Approve(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("ApproveReview error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve review"})
		return
	}
	if review == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrReviewNotFound})
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
		return
	}

	deleted, err := h.reviews.Delete(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("DeleteReview error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrReviewNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
