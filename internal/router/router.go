package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	GetStadiumReservations(c *ginext.Context)
	GetUserReservations(c *ginext.Context)
	UpdateReservationStatus(c *ginext.Context)
	DeleteReservation(c *ginext.Context)

	CreateCoachBooking(c *ginext.Context)
	GetCoachBooking(c *ginext.Context)
	GetCoachBookings(c *ginext.Context)
	ConfirmCoachBooking(c *ginext.Context)
	CancelCoachBooking(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	JoinEvent(c *ginext.Context)
	LeaveEvent(c *ginext.Context)

	CreateReview(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
		api.DELETE("/reservations/:id", h.DeleteReservation)
		api.GET("/stadiums/:id/reservations", h.GetStadiumReservations)
		api.GET("/users/:id/reservations", h.GetUserReservations)

		// Coach bookings
		api.POST("/coach-bookings", h.CreateCoachBooking)
		api.GET("/coach-bookings/:id", h.GetCoachBooking)
		api.POST("/coach-bookings/:id/confirm", h.ConfirmCoachBooking)
		api.POST("/coach-bookings/:id/cancel", h.CancelCoachBooking)
		api.GET("/coaches/:id/bookings", h.GetCoachBookings)

		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/join", h.JoinEvent)
		api.POST("/events/:id/leave", h.LeaveEvent)

		// Reviews
		api.POST("/reviews", h.CreateReview)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
