package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/yourusername/order-notifier/internal/models"
)

// ErrNotificationExists is returned when a notification keyed on its order
// was already written by an earlier delivery.
var ErrNotificationExists = errors.New("notification already exists")

// NotificationRepository writes seller notifications under
// {collection}/{sellerId}/{subcollection}/{notificationId}.
type NotificationRepository struct {
	client        *firestore.Client
	collection    string
	subcollection string
}

func NewNotificationRepository(client *firestore.Client, collection, subcollection string) *NotificationRepository {
	return &NotificationRepository{
		client:        client,
		collection:    collection,
		subcollection: subcollection,
	}
}

func (r *NotificationRepository) sellerNotifications(sellerID string) *firestore.CollectionRef {
	return r.client.Collection(r.collection).Doc(sellerID).Collection(r.subcollection)
}

// CreateNotification stores n with an auto-generated id and returns that id.
// The id is also written into the document's notificationId field.
func (r *NotificationRepository) CreateNotification(ctx context.Context, n *models.Notification) (string, error) {
	docRef := r.sellerNotifications(n.SellerID).NewDoc()
	return r.create(ctx, docRef, n)
}

// CreateNotificationForOrder stores n keyed on its order id, so a repeated
// delivery of the same order fails with ErrNotificationExists.
func (r *NotificationRepository) CreateNotificationForOrder(ctx context.Context, n *models.Notification) (string, error) {
	docRef := r.sellerNotifications(n.SellerID).Doc(n.OrderID)
	return r.create(ctx, docRef, n)
}

func (r *NotificationRepository) create(ctx context.Context, docRef *firestore.DocumentRef, n *models.Notification) (string, error) {
	n.NotificationID = docRef.ID
	if _, err := docRef.Create(ctx, n); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return docRef.ID, ErrNotificationExists
		}
		return "", errors.Wrapf(err, "create %s", docRef.Path)
	}
	return docRef.ID, nil
}
