package controllers

import (
	stderrors "errors"
	"net/http"
	"time"

	apperrors "rannafy-server/errors"
	"rannafy-server/models"
	"rannafy-server/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type FavoriteController struct {
	Favorites repository.FavoriteRepository
	Logger    *zap.Logger
}

func NewFavoriteController(favorites repository.FavoriteRepository, logger *zap.Logger) *FavoriteController {
	return &FavoriteController{Favorites: favorites, Logger: logger}
}

func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	favorites, err := fc.Favorites.FindAll(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

type createFavoriteRequest struct {
	MealID    string  `json:"mealId" binding:"required"`
	MealName  string  `json:"mealName"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	UserEmail string  `json:"userEmail" binding:"required,email"`
}

// CreateFavorite saves a meal to the user's favorites, once per (meal, user).
func (fc *FavoriteController) CreateFavorite(c *gin.Context) {
	var req createFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid favorite data"})
		return
	}

	mealID, err := primitive.ObjectIDFromHex(req.MealID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid favorite data"})
		return
	}

	_, err = fc.Favorites.FindByMealAndUser(c.Request.Context(), mealID, req.UserEmail)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "already in favorites"})
		return
	}
	if !stderrors.Is(err, mongo.ErrNoDocuments) {
		apperrors.Respond(c, err)
		return
	}

	favorite := &models.Favorite{
		MealID:    mealID,
		MealName:  req.MealName,
		Image:     req.Image,
		Price:     req.Price,
		UserEmail: req.UserEmail,
		CreatedAt: time.Now().UTC(),
	}

	res, err := fc.Favorites.Create(c.Request.Context(), favorite)
	if err != nil {
		fc.Logger.Error("Failed to create favorite", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "added successfully", "insertedId": res.InsertedID})
}
