package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

const (
	collectionCourierServices = "courier_services"
	collectionCurrencies      = "currencies"
)

// CatalogRepository reads the courier catalog from the courier_services and
// currencies collections.
type CatalogRepository struct {
	db         *mongo.Database
	couriers   *mongo.Collection
	currencies *mongo.Collection
	opts       domain.CatalogOptions
}

func NewCatalogRepository(db *mongo.Database, opts domain.CatalogOptions) *CatalogRepository {
	return &CatalogRepository{
		db:         db,
		couriers:   db.Collection(collectionCourierServices),
		currencies: db.Collection(collectionCurrencies),
		opts:       opts,
	}
}

// Load reads every courier service and currency record. Couriers come back
// in insertion order so tie-breaking between equal prices is stable.
func (r *CatalogRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var couriers []domain.CourierService
	if err := r.findAll(ctx, r.couriers, &couriers); err != nil {
		return nil, fmt.Errorf("load courier services: %w", err)
	}

	var currencies []domain.Currency
	if err := r.findAll(ctx, r.currencies, &currencies); err != nil {
		return nil, fmt.Errorf("load currencies: %w", err)
	}

	return domain.NewCatalog(couriers, currencies, r.opts), nil
}

func (r *CatalogRepository) findAll(ctx context.Context, col *mongo.Collection, out any) error {
	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

// Ping checks the server is reachable and the database answers commands.
func (r *CatalogRepository) Ping(ctx context.Context) error {
	if err := r.db.Client().Ping(ctx, nil); err != nil {
		return err
	}
	return r.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// EnsureIndexes creates the lookup index on courier_service_id and
// exchange_currency_id.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	unique := options.Index().SetUnique(true)
	if _, err := r.couriers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "courier_service_id", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("courier_services index: %w", err)
	}
	if _, err := r.currencies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "exchange_currency_id", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("currencies index: %w", err)
	}
	return nil
}
