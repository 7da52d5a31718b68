package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/yourusername/order-notifier/internal/events"
	"github.com/yourusername/order-notifier/internal/models"
	"github.com/yourusername/order-notifier/internal/services"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, evt models.OrderCreatedEvent) (*services.DispatchResult, error)
}

// EventHandler receives order-created CloudEvents and runs the notifier.
type EventHandler struct {
	decoder      *events.Decoder
	dispatcher   Dispatcher
	retryOnFault bool
}

func NewEventHandler(decoder *events.Decoder, dispatcher Dispatcher, retryOnFault bool) *EventHandler {
	return &EventHandler{
		decoder:      decoder,
		dispatcher:   dispatcher,
		retryOnFault: retryOnFault,
	}
}

// HandleOrderCreated acknowledges every delivery it can decode. Operational
// faults are acknowledged too unless retryOnFault is set, in which case the
// 500 asks the platform to redeliver.
func (h *EventHandler) HandleOrderCreated(c *gin.Context) {
	evt, err := h.decoder.FromRequest(c.Request)
	switch {
	case errors.Is(err, events.ErrUnsupportedType), errors.Is(err, events.ErrPathMismatch):
		log.Printf("Ignoring event: %v", err)
		c.JSON(http.StatusOK, gin.H{"outcome": "ignored", "reason": err.Error()})
		return
	case err != nil:
		log.Printf("❌ Failed to decode event: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.dispatcher.Dispatch(c.Request.Context(), *evt)
	if err != nil {
		log.Printf("❌ [%s] Error creating notification for order %s: %v", evt.EventID, evt.OrderID(), err)
		if h.retryOnFault {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "result": result})
			return
		}
		c.JSON(http.StatusOK, gin.H{"outcome": "failed", "error": err.Error(), "result": result})
		return
	}

	c.JSON(http.StatusOK, result)
}
