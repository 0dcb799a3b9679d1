package routes

import (
	"net/http"

	"rannafy-server/controllers"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Orders    *controllers.OrderController
	Payments  *controllers.PaymentController
	Users     *controllers.UserController
	Meals     *controllers.MealController
	Reviews   *controllers.ReviewController
	Favorites *controllers.FavoriteController
}

func RegisterRoutes(r *gin.Engine, c Controllers) {
	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "RannaFy server is running")
	})

	orderRoutes := r.Group("/orders")
	{
		orderRoutes.POST("", c.Orders.CreateOrder)
		orderRoutes.GET("", c.Orders.GetOrders)
		orderRoutes.GET("/:id", c.Orders.GetOrderByID)
		orderRoutes.PATCH("/:id", c.Orders.UpdateOrderStatus)
	}

	// Payment processor flow
	r.POST("/create-checkout-session", c.Payments.CreateCheckoutSession)
	r.PATCH("/payment-success", c.Payments.PaymentSuccess)
	r.GET("/payments", c.Payments.GetPayments)

	userRoutes := r.Group("/users")
	{
		userRoutes.POST("", c.Users.CreateUser)
		userRoutes.GET("", c.Users.GetUsers)
		userRoutes.POST("/role-request", c.Users.RequestRole)
	}

	r.GET("/meals", c.Meals.GetMeals)
	r.GET("/latest-meals", c.Meals.GetLatestMeals)
	r.GET("/meals/:id", c.Meals.GetMealByID)

	r.GET("/meals-reviews/:mealId", c.Reviews.GetMealReviews)
	r.POST("/meals-reviews", c.Reviews.CreateReview)

	r.GET("/favorites", c.Favorites.GetFavorites)
	r.POST("/favorites", c.Favorites.CreateFavorite)
}
