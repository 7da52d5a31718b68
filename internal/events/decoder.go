// Package events turns Eventarc deliveries of Firestore document events into
// order-created events for the notifier.
package events

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/cloudevents/sdk-go/v2/event"
	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"
	"github.com/google/uuid"
	"github.com/googleapis/google-cloudevents-go/cloud/firestoredata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/yourusername/order-notifier/internal/models"
)

const (
	TypeDocumentCreated         = "google.cloud.firestore.document.v1.created"
	TypeDocumentCreatedWithAuth = "google.cloud.firestore.document.v1.created.withAuthContext"
)

var (
	// ErrUnsupportedType is returned for events other than document creation.
	ErrUnsupportedType = errors.New("unsupported event type")
	// ErrPathMismatch is returned when the document is outside the trigger pattern.
	ErrPathMismatch = errors.New("document path does not match trigger")
	// ErrMalformed is returned when the request is not a CloudEvent at all.
	ErrMalformed = errors.New("malformed event")
)

// Decoder decodes CloudEvents for one trigger pattern.
type Decoder struct {
	pattern PathPattern
}

func NewDecoder(trigger string) *Decoder {
	return &Decoder{pattern: NewPathPattern(trigger)}
}

// FromRequest reads a binary or structured mode CloudEvent from req.
func (d *Decoder) FromRequest(req *http.Request) (*models.OrderCreatedEvent, error) {
	e, err := cehttp.NewEventFromHTTPRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return d.Decode(*e)
}

// Decode converts a CloudEvent into an OrderCreatedEvent. A delivery without
// a readable document value decodes to an event with a nil Snapshot.
func (d *Decoder) Decode(e event.Event) (*models.OrderCreatedEvent, error) {
	switch e.Type() {
	case TypeDocumentCreated, TypeDocumentCreatedWithAuth:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, e.Type())
	}

	data, err := unmarshalData(e)
	if err != nil {
		log.Printf("⚠️ [%s] Unreadable document payload: %v", e.ID(), err)
		data = &firestoredata.DocumentEventData{}
	}

	path := documentPath(e, data)
	params, ok := d.pattern.Match(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q not under %q", ErrPathMismatch, path, d.pattern)
	}

	id := e.ID()
	if id == "" {
		id = uuid.NewString()
	}

	evt := &models.OrderCreatedEvent{
		EventID: id,
		Params:  params,
	}
	if doc := data.GetValue(); doc != nil {
		evt.Snapshot = toOrder(params["orderId"], doc)
	}
	return evt, nil
}

func unmarshalData(e event.Event) (*firestoredata.DocumentEventData, error) {
	var data firestoredata.DocumentEventData
	raw := e.Data()
	if len(raw) == 0 {
		return &data, nil
	}

	if strings.Contains(e.DataContentType(), "json") {
		opts := protojson.UnmarshalOptions{DiscardUnknown: true}
		if err := opts.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
		return &data, nil
	}
	if err := proto.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// documentPath prefers the document name in the payload, then the
// "document" extension Eventarc sets, then the subject.
func documentPath(e event.Event, data *firestoredata.DocumentEventData) string {
	if name := data.GetValue().GetName(); name != "" {
		return DocumentPath(name)
	}
	if v, ok := e.Extensions()["document"].(string); ok && v != "" {
		return DocumentPath(v)
	}
	return DocumentPath(e.Subject())
}

func toOrder(orderID string, doc *firestoredata.Document) *models.Order {
	// An existing document always has data, even with no fields.
	order := &models.Order{
		OrderID: orderID,
		Fields:  make(map[string]any, len(doc.GetFields())),
	}
	for k, v := range doc.GetFields() {
		order.Fields[k] = valueOf(v)
	}
	if sellerID, ok := order.Fields["sellerId"].(string); ok {
		order.SellerID = sellerID
	}
	return order
}

func valueOf(v *firestoredata.Value) any {
	switch t := v.GetValueType().(type) {
	case *firestoredata.Value_StringValue:
		return t.StringValue
	case *firestoredata.Value_IntegerValue:
		return t.IntegerValue
	case *firestoredata.Value_DoubleValue:
		return t.DoubleValue
	case *firestoredata.Value_BooleanValue:
		return t.BooleanValue
	case *firestoredata.Value_TimestampValue:
		return t.TimestampValue.AsTime()
	case *firestoredata.Value_ReferenceValue:
		return t.ReferenceValue
	case *firestoredata.Value_MapValue:
		m := make(map[string]any, len(t.MapValue.GetFields()))
		for k, inner := range t.MapValue.GetFields() {
			m[k] = valueOf(inner)
		}
		return m
	case *firestoredata.Value_ArrayValue:
		out := make([]any, 0, len(t.ArrayValue.GetValues()))
		for _, inner := range t.ArrayValue.GetValues() {
			out = append(out, valueOf(inner))
		}
		return out
	default:
		return nil
	}
}
