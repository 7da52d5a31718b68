package services

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"github.com/yourusername/order-notifier/internal/config"
	"github.com/yourusername/order-notifier/internal/models"
	"github.com/yourusername/order-notifier/internal/repository"
)

type NotificationStore interface {
	CreateNotification(ctx context.Context, n *models.Notification) (string, error)
	CreateNotificationForOrder(ctx context.Context, n *models.Notification) (string, error)
}

type SellerStore interface {
	GetSellerByID(ctx context.Context, sellerID string) (*models.Seller, error)
}

type PushSender interface {
	Send(ctx context.Context, msg models.PushMessage) (string, error)
}

// Outcome is how a dispatch ended when no operational fault occurred.
type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeSkipped   Outcome = "skipped"
)

// SkipReason names the missing piece of data that stopped a dispatch.
type SkipReason string

const (
	SkipNoSnapshot  SkipReason = "no_snapshot"
	SkipNoOrderData SkipReason = "no_order_data"
	SkipNoSellerID  SkipReason = "no_seller_id"
	SkipDuplicate   SkipReason = "duplicate"
	SkipNoSeller    SkipReason = "no_seller"
	SkipNoToken     SkipReason = "no_fcm_token"
)

type DispatchResult struct {
	Outcome        Outcome    `json:"outcome"`
	Reason         SkipReason `json:"reason,omitempty"`
	OrderID        string     `json:"orderId,omitempty"`
	SellerID       string     `json:"sellerId,omitempty"`
	NotificationID string     `json:"notificationId,omitempty"`
	MessageID      string     `json:"messageId,omitempty"`
}

func (r *DispatchResult) skip(reason SkipReason) *DispatchResult {
	r.Outcome = OutcomeSkipped
	r.Reason = reason
	return r
}

type OrderNotifierOptions struct {
	Notifications NotificationStore
	Sellers       SellerStore
	Push          PushSender
	Text          config.NotificationsConfig
	PushText      config.PushConfig
}

// OrderNotifier records a notification for the seller of a new order and
// pushes it to the seller's device.
type OrderNotifier struct {
	notifications NotificationStore
	sellers       SellerStore
	push          PushSender
	text          config.NotificationsConfig
	pushText      config.PushConfig
}

func NewOrderNotifier(opts OrderNotifierOptions) *OrderNotifier {
	return &OrderNotifier{
		notifications: opts.Notifications,
		sellers:       opts.Sellers,
		push:          opts.Push,
		text:          opts.Text,
		pushText:      opts.PushText,
	}
}

// Dispatch runs the pipeline for one order-created event. Missing data ends
// the dispatch with OutcomeSkipped and a nil error. A failed remote call is
// returned as an error; the result still reports what was written before it.
// Nothing written is rolled back.
func (s *OrderNotifier) Dispatch(ctx context.Context, evt models.OrderCreatedEvent) (*DispatchResult, error) {
	res := &DispatchResult{OrderID: evt.OrderID()}

	order := evt.Snapshot
	if order == nil {
		log.Printf("[%s] No order snapshot found", evt.EventID)
		return res.skip(SkipNoSnapshot), nil
	}
	// Decoded documents always carry a Fields map, so an empty order stops
	// at the sellerId check below.
	if order.Fields == nil {
		log.Printf("[%s] Order data is empty", evt.EventID)
		return res.skip(SkipNoOrderData), nil
	}
	if order.SellerID == "" {
		log.Printf("[%s] No sellerId found in order document %s", evt.EventID, res.OrderID)
		return res.skip(SkipNoSellerID), nil
	}
	res.SellerID = order.SellerID

	notification := &models.Notification{
		SellerID: order.SellerID,
		Title:    s.text.Title,
		Message:  s.text.Message,
		Type:     models.NotificationTypeOrder,
		OrderID:  res.OrderID,
		IsRead:   false,
	}

	create := s.notifications.CreateNotification
	if s.text.KeyByOrder {
		create = s.notifications.CreateNotificationForOrder
	}
	notificationID, err := create(ctx, notification)
	if errors.Is(err, repository.ErrNotificationExists) {
		log.Printf("[%s] Notification for order %s already exists, skipping push", evt.EventID, res.OrderID)
		res.NotificationID = notificationID
		return res.skip(SkipDuplicate), nil
	}
	if err != nil {
		return res, errors.Wrap(err, "write notification")
	}
	res.NotificationID = notificationID
	log.Printf("[%s] Notification created successfully for seller: %s", evt.EventID, order.SellerID)

	seller, err := s.sellers.GetSellerByID(ctx, order.SellerID)
	if err != nil {
		return res, errors.Wrap(err, "read seller")
	}
	if seller == nil {
		log.Printf("[%s] ⚠️ Seller %s not found", evt.EventID, order.SellerID)
		return res.skip(SkipNoSeller), nil
	}
	if seller.FCMToken == "" {
		log.Printf("[%s] ⚠️ Seller %s has no FCM token", evt.EventID, order.SellerID)
		return res.skip(SkipNoToken), nil
	}

	messageID, err := s.push.Send(ctx, models.PushMessage{
		Token: seller.FCMToken,
		Title: s.pushText.Title,
		Body:  s.pushText.Body,
		Data: map[string]string{
			"orderId": res.OrderID,
			"type":    models.NotificationTypeOrder,
		},
	})
	if err != nil {
		return res, errors.Wrap(err, "send push")
	}
	res.MessageID = messageID
	res.Outcome = OutcomeDelivered

	log.Printf("[%s] Push notification sent to seller: %s", evt.EventID, order.SellerID)
	return res, nil
}
