package models

// Seller is the subset of a seller document the notifier needs.
type Seller struct {
	SellerID string `firestore:"-" json:"sellerId"`
	FCMToken string `firestore:"fcmToken" json:"-"` // Don't expose in JSON
}
