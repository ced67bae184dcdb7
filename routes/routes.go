package routes

import (
    "backend/controllers"
    "backend/hydration"
    "backend/middlewares"
    "backend/services"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    hub := services.NewRealtimeHub()
    drinks := hydration.NewDrinkRecommender(hydration.DefaultCatalog())

    sessionCtl := controllers.NewSessionController(hub)
    dashboardCtl := controllers.NewDashboardController(services.NewDashboard(drinks))
    waterCtl := controllers.NewWaterController(hub)
    stravaCtl := controllers.NewStravaController(services.NewStravaService())
    realtimeCtl := controllers.NewRealtimeController(hub)

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", middlewares.RateLimit(3), controllers.Register)
        auth.POST("/login", middlewares.RateLimit(5), controllers.Login)
    }

    // Strava OAuth callback arrives without a bearer token
    r.GET("/strava/callback", stravaCtl.Callback)

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/profile", controllers.GetProfile)
        user.POST("/setup", controllers.Setup)
        user.PUT("/goal", controllers.SetGoal)
        user.DELETE("/goal", controllers.ClearGoal)
    }

    // Protected app routes
    app := r.Group("/")
    app.Use(middlewares.AuthMiddleware())
    {
        app.POST("/calculate", middlewares.RateLimit(30), sessionCtl.Calculate)
        app.GET("/history", controllers.History)
        app.GET("/dashboard", dashboardCtl.Get)
        app.GET("/water", waterCtl.GetWater)
        app.POST("/water", waterCtl.AddWater)
        app.GET("/strava/connect", stravaCtl.Connect)
        app.POST("/strava/sync", stravaCtl.Sync)
        app.GET("/ws", realtimeCtl.DashboardWS)
    }

    return r
}
