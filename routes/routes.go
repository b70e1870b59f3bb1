package routes

import (
	"rasaroots/controllers"
	"rasaroots/middlewares"
	"rasaroots/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, ps *services.PushService) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public catalog + feedback reads
	r.GET("/dishes", controllers.ListDishes)
	r.GET("/dishes/:id", controllers.GetDish)
	r.GET("/seasonal", controllers.ListSeasonal)
	r.GET("/ingredients", controllers.ListIngredients)
	r.GET("/reviews", controllers.ListReviews)
	r.GET("/reviews/sentiment", controllers.ReviewSentimentStats)

	// Personalized surfaces
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/plan", controllers.GetPlan)
		api.PATCH("/plan", controllers.PatchPlan)
		api.POST("/plan/slots", controllers.DropSlot)
		api.POST("/plan/reset", controllers.ResetPlan)

		api.POST("/reviews", controllers.CreateReview)
		api.GET("/loyalty", controllers.GetLoyalty)

		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		rc := controllers.NewRealtimeController(rt)
		api.GET("/ws/updates", rc.UpdatesWS)

		if ps != nil {
			dc := controllers.NewDeviceController(ps)
			api.POST("/devices", dc.Register)
			api.POST("/devices/toggle", controllers.ToggleNotifications)
		}
	}

	return r
}
