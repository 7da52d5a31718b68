package services

import (
	"testing"

	"github.com/yourusername/order-notifier/internal/models"
)

func TestBuildMessage(t *testing.T) {
	msg := models.PushMessage{
		Token: "T3",
		Title: "New Order Received",
		Body:  "You have received a new order.",
		Data:  map[string]string{"orderId": "O4", "type": "order"},
	}

	m := buildMessage(msg, "")
	if m.Token != "T3" {
		t.Errorf("token = %q", m.Token)
	}
	if m.Notification == nil || m.Notification.Title != msg.Title || m.Notification.Body != msg.Body {
		t.Errorf("notification = %+v", m.Notification)
	}
	if m.Data["orderId"] != "O4" || m.Data["type"] != "order" {
		t.Errorf("data = %v", m.Data)
	}
	if m.Android != nil {
		t.Error("android config should be omitted without a channel")
	}

	m = buildMessage(msg, "orders")
	if m.Android == nil || m.Android.Notification.ChannelID != "orders" {
		t.Errorf("android = %+v", m.Android)
	}
}

func TestMaskToken(t *testing.T) {
	if got := maskToken("abcdefgh"); got != "ab..." {
		t.Errorf("maskToken(abcdefgh) = %q", got)
	}
	if got := maskToken("abc"); got != "..." {
		t.Errorf("maskToken(abc) = %q", got)
	}
	long := "abcdefghijklmnopqrstuvwxyz"
	if got := maskToken(long); got != "abcdefghijklmnopqrst..." {
		t.Errorf("maskToken(long) = %q", got)
	}
}
