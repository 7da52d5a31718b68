package models

import "time"

// NotificationTypeOrder marks notifications raised by new orders.
const NotificationTypeOrder = "order"

// Notification is the record shown to a seller in their notification feed.
type Notification struct {
	NotificationID string    `firestore:"notificationId" json:"notificationId"`
	SellerID       string    `firestore:"sellerId" json:"sellerId"`
	Title          string    `firestore:"title" json:"title"`
	Message        string    `firestore:"message" json:"message"`
	Type           string    `firestore:"type" json:"type"`
	OrderID        string    `firestore:"orderId" json:"orderId"`
	IsRead         bool      `firestore:"isRead" json:"isRead"`
	CreatedAt      time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"` // set by Firestore on write
}

// PushMessage is a push notification addressed to one device token.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}
