package controllers

import (
	stderrors "errors"
	"net/http"
	"time"

	apperrors "rannafy-server/errors"
	"rannafy-server/models"
	"rannafy-server/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type UserController struct {
	Users  repository.UserRepository
	Logger *zap.Logger
}

func NewUserController(users repository.UserRepository, logger *zap.Logger) *UserController {
	return &UserController{Users: users, Logger: logger}
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
}

// CreateUser registers a user on first sign-in. Re-registration of a known
// email is answered with a message, not an error.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	_, err := uc.Users.FindByEmail(c.Request.Context(), req.Email)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user exists"})
		return
	}
	if !stderrors.Is(err, mongo.ErrNoDocuments) {
		uc.Logger.Error("Failed to look up user", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}

	user := &models.User{
		Name:       req.Name,
		Email:      req.Email,
		Photo:      req.Photo,
		Role:       models.RoleUser,
		UserStatus: models.UserStatusActive,
		CreatedAt:  time.Now().UTC(),
	}

	res, err := uc.Users.Create(c.Request.Context(), user)
	if err != nil {
		uc.Logger.Error("Failed to create user", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": res.InsertedID})
}

func (uc *UserController) GetUsers(c *gin.Context) {
	filter := bson.M{}
	if email := c.Query("email"); email != "" {
		filter["email"] = email
	}

	users, err := uc.Users.Find(c.Request.Context(), filter)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type roleRequestBody struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=chef admin"`
}

// RequestRole records a pending role upgrade request. Repeating an already
// pending request is a conflict.
func (uc *UserController) RequestRole(c *gin.Context) {
	var req roleRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	user, err := uc.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			apperrors.Respond(c, apperrors.ErrNotFound)
			return
		}
		apperrors.Respond(c, err)
		return
	}

	if user.RoleRequest == req.Role {
		c.JSON(http.StatusConflict, gin.H{"error": "role request already pending"})
		return
	}

	_, err = uc.Users.UpdateByEmail(c.Request.Context(), req.Email, bson.M{"roleRequest": req.Role})
	if err != nil {
		uc.Logger.Error("Failed to record role request", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
