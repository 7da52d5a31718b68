package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/order-notifier/internal/events"
	"github.com/yourusername/order-notifier/internal/handlers"
	"github.com/yourusername/order-notifier/internal/models"
	"github.com/yourusername/order-notifier/internal/services"
)

type noopDispatcher struct{ calls int }

func (d *noopDispatcher) Dispatch(context.Context, models.OrderCreatedEvent) (*services.DispatchResult, error) {
	d.calls++
	return &services.DispatchResult{Outcome: services.OutcomeSkipped}, nil
}

func newTestRouter(d handlers.Dispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(Options{
		Events:       handlers.NewEventHandler(events.NewDecoder("orders/{orderId}"), d, false),
		MaxInstances: 10,
	})
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(&noopDispatcher{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("status = %d, body = %s", w.Code, w.Body)
	}
}

func TestEventRoutes(t *testing.T) {
	body := `{"value":{"name":"projects/demo/databases/(default)/documents/orders/O1","fields":{"sellerId":{"stringValue":"S1"}}}}`
	for _, path := range []string{"/", "/events/orders"} {
		d := &noopDispatcher{}
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("ce-specversion", "1.0")
		req.Header.Set("ce-id", "evt-1")
		req.Header.Set("ce-source", "//firestore.googleapis.com/projects/demo/databases/(default)")
		req.Header.Set("ce-type", events.TypeDocumentCreated)

		w := httptest.NewRecorder()
		newTestRouter(d).ServeHTTP(w, req)
		if w.Code != http.StatusOK || d.calls != 1 {
			t.Errorf("%s: status = %d, calls = %d", path, w.Code, d.calls)
		}
	}
}
