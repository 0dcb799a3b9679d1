package controllers

import (
	stderrors "errors"
	"net/http"

	apperrors "rannafy-server/errors"
	"rannafy-server/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const latestMealsLimit = 8

type MealController struct {
	Meals repository.MealRepository
}

func NewMealController(meals repository.MealRepository) *MealController {
	return &MealController{Meals: meals}
}

func (mc *MealController) GetMeals(c *gin.Context) {
	meals, err := mc.Meals.Find(c.Request.Context(), bson.M{}, nil)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GetLatestMeals serves the home page strip.
func (mc *MealController) GetLatestMeals(c *gin.Context) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(latestMealsLimit)

	meals, err := mc.Meals.Find(c.Request.Context(), bson.M{}, findOptions)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) GetMealByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := mc.Meals.FindByID(c.Request.Context(), id)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			apperrors.Respond(c, apperrors.ErrNotFound)
			return
		}
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}
