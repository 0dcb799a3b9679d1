package controllers

import (
	stderrors "errors"
	"net/http"

	apperrors "rannafy-server/errors"
	"rannafy-server/models"
	"rannafy-server/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderController struct {
	Orders *services.OrderService
	Logger *zap.Logger
}

func NewOrderController(orders *services.OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{Orders: orders, Logger: logger}
}

type createOrderRequest struct {
	MealID    string  `json:"mealId" binding:"required"`
	MealName  string  `json:"mealName" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Quantity  int     `json:"quantity" binding:"omitempty,min=1"`
	UserEmail string  `json:"userEmail" binding:"required,email"`
	ChefEmail string  `json:"chefEmail" binding:"omitempty,email"`
	Address   string  `json:"address"`
}

// CreateOrder places a new order; the server owns status and timestamp.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	mealID, err := primitive.ObjectIDFromHex(req.MealID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	order := &models.Order{
		MealID:    mealID,
		MealName:  req.MealName,
		Price:     req.Price,
		Quantity:  req.Quantity,
		UserEmail: req.UserEmail,
		ChefEmail: req.ChefEmail,
		Address:   req.Address,
	}

	res, err := oc.Orders.PlaceOrder(c.Request.Context(), order)
	if err != nil {
		oc.Logger.Error("Failed to place order", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": res.InsertedID})
}

// GetOrders lists orders, optionally filtered by buyer, meal or chef.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(
		c.Request.Context(),
		c.Query("email"),
		c.Query("mealId"),
		c.Query("chefEmail"),
	)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := oc.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus applies the status transition table. A missing order
// answers 200 with a message rather than 404, matching the historical
// contract the dashboard depends on.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if err := oc.Orders.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if stderrors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "order not found"})
			return
		}
		oc.Logger.Error("Failed to update order status",
			zap.String("order_id", id.Hex()),
			zap.Error(err),
		)
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
