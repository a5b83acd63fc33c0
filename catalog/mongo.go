package catalog

import (
	"context"

	"go-storefront/models"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productDocument is how a product is stored in the products collection
type productDocument struct {
	ID          int           `bson:"id"`
	Title       string        `bson:"title"`
	Price       documentPrice `bson:"price"`
	Image       string        `bson:"image"`
	Description string        `bson:"description"`
}

// documentPrice accepts a price stored as double, int32, int64, decimal128 or
// a numeric string.
type documentPrice struct {
	decimal.Decimal
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler
func (p *documentPrice) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		p.Decimal = decimal.NewFromFloat(raw.Double())
	case bsontype.Int32:
		p.Decimal = decimal.NewFromInt32(raw.Int32())
	case bsontype.Int64:
		p.Decimal = decimal.NewFromInt(raw.Int64())
	case bsontype.Decimal128:
		d, err := decimal.NewFromString(raw.Decimal128().String())
		if err != nil {
			return errors.Wrap(err, "decimal128 price")
		}
		p.Decimal = d
	case bsontype.String:
		d, err := decimal.NewFromString(raw.StringValue())
		if err != nil {
			return errors.Wrap(err, "string price")
		}
		p.Decimal = d
	default:
		return errors.Errorf("cannot decode %s into a price", t)
	}
	return nil
}

func (d productDocument) product() models.Product {
	return models.Product{
		ID:          d.ID,
		Title:       d.Title,
		Price:       d.Price.Decimal,
		Image:       d.Image,
		Description: d.Description,
	}
}

// FromMongo reads every product from collection once, ordered by id
func FromMongo(ctx context.Context, collection *mongo.Collection) (*Catalog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	return fromCursor(ctx, cursor)
}

// fromCursor drains cursor into a validated catalog, keeping cursor order
func fromCursor(ctx context.Context, cursor *mongo.Cursor) (*Catalog, error) {
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "decode product")
		}
		products = append(products, doc.product())
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "read products")
	}

	return New(products)
}
