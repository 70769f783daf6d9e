package handlers

import (
	"log"

	"orderdesk/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles HTTP requests for courier tracking lookups.
type TrackingHandler struct {
	service *services.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(service *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		service: service,
	}
}

// RegisterRoutes registers the tracking routes with the Fiber app.
func (h *TrackingHandler) RegisterRoutes(router fiber.Router) {
	trackingRoutes := router.Group("/tracking")
	trackingRoutes.Get("/:number", h.HandleLookup)
}

// HandleLookup queries the courier API for one tracking number. An empty
// result is a normal outcome reported with found=false; an upstream failure
// is a 502 with no partial data.
func (h *TrackingHandler) HandleLookup(c *fiber.Ctx) error {
	trackingNumber := c.Params("number")

	shipments, err := h.service.Lookup(trackingNumber)
	if err != nil {
		log.Printf("Error looking up tracking number %s: %v", trackingNumber, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Could not retrieve tracking information",
			"error":   err.Error(),
		})
	}

	if len(shipments) == 0 {
		return c.JSON(fiber.Map{
			"found":   false,
			"message": "No tracking records found for " + trackingNumber,
		})
	}

	return c.JSON(fiber.Map{
		"found":     true,
		"shipments": shipments,
	})
}
