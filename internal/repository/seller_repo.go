package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/yourusername/order-notifier/internal/models"
)

type SellerRepository struct {
	client     *firestore.Client
	collection string
}

func NewSellerRepository(client *firestore.Client, collection string) *SellerRepository {
	return &SellerRepository{
		client:     client,
		collection: collection,
	}
}

// GetSellerByID retrieves a seller by their ID. A missing document returns
// nil without an error.
func (r *SellerRepository) GetSellerByID(ctx context.Context, sellerID string) (*models.Seller, error) {
	doc, err := r.client.Collection(r.collection).Doc(sellerID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s/%s", r.collection, sellerID)
	}

	var seller models.Seller
	if err := doc.DataTo(&seller); err != nil {
		return nil, errors.Wrapf(err, "decode %s/%s", r.collection, sellerID)
	}
	seller.SellerID = doc.Ref.ID

	return &seller, nil
}
