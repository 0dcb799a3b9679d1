package controllers

import (
	"net/http"
	"time"

	apperrors "rannafy-server/errors"
	"rannafy-server/models"
	"rannafy-server/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ReviewController struct {
	Reviews repository.ReviewRepository
	Logger  *zap.Logger
}

func NewReviewController(reviews repository.ReviewRepository, logger *zap.Logger) *ReviewController {
	return &ReviewController{Reviews: reviews, Logger: logger}
}

func (rc *ReviewController) GetMealReviews(c *gin.Context) {
	mealID, err := primitive.ObjectIDFromHex(c.Param("mealId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	reviews, err := rc.Reviews.FindByMealID(c.Request.Context(), mealID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type createReviewRequest struct {
	MealID    string  `json:"mealId" binding:"required"`
	UserName  string  `json:"userName"`
	UserEmail string  `json:"userEmail" binding:"omitempty,email"`
	UserPhoto string  `json:"userPhoto"`
	Text      string  `json:"text" binding:"required"`
	Rating    float64 `json:"rating" binding:"required,gte=1,lte=5"`
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid review data"})
		return
	}

	mealID, err := primitive.ObjectIDFromHex(req.MealID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid review data"})
		return
	}

	review := &models.Review{
		MealID:    mealID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		UserPhoto: req.UserPhoto,
		Text:      req.Text,
		Rating:    req.Rating,
		CreatedAt: time.Now().UTC(),
	}

	res, err := rc.Reviews.Create(c.Request.Context(), review)
	if err != nil {
		rc.Logger.Error("Failed to create review", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": res.InsertedID})
}
