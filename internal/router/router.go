package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCity(c *ginext.Context)
	GetCity(c *ginext.Context)
	ListCities(c *ginext.Context)
	CreateAttraction(c *ginext.Context)
	GetAttraction(c *ginext.Context)
	ListAttractions(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *ginext.Context) {
		c.JSON(http.StatusMethodNotAllowed, ginext.H{"message": "Method not allowed"})
	})

	api := router.Group("/api")
	{
		// Cities
		api.POST("/cities", h.CreateCity)
		api.GET("/cities", h.ListCities)
		api.GET("/cities/:id", h.GetCity)

		// Attractions
		api.POST("/attractions", h.CreateAttraction)
		api.GET("/attractions", h.ListAttractions)
		api.GET("/attractions/:id", h.GetAttraction)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
