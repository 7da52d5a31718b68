package models

// Order is the document that triggered the notifier. Only the fields the
// notifier reads are decoded.
type Order struct {
	OrderID  string
	SellerID string
	// Fields holds the raw document fields, nil when the document carried no data.
	Fields map[string]any
}

// OrderCreatedEvent is one delivery of a document-creation event on the
// orders collection.
type OrderCreatedEvent struct {
	EventID string
	// Params holds the wildcards captured from the trigger path, e.g. orderId.
	Params map[string]string
	// Snapshot is nil when the delivery carried no document.
	Snapshot *Order
}

// OrderID returns the captured orderId path parameter.
func (e OrderCreatedEvent) OrderID() string {
	return e.Params["orderId"]
}
