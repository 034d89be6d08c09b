package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

//go:embed schema.sql
var schemaSQL string

const (
	selectCourierServices = `
		SELECT courier_service_id, name, description, image_url, instruction,
		       transhipment_time, type, min_weight, max_weight, adding_value,
		       exchange_currency_id, countries, rates
		FROM courier_services
		ORDER BY position`

	selectCurrencies = `
		SELECT exchange_currency_id, name, currency_code, value
		FROM currencies
		ORDER BY position`
)

// CatalogRepository reads the courier catalog from the courier_services and
// currencies tables. Countries and rate cards are stored as JSONB.
type CatalogRepository struct {
	pool *pgxpool.Pool
	opts domain.CatalogOptions
}

func NewCatalogRepository(pool *pgxpool.Pool, opts domain.CatalogOptions) *CatalogRepository {
	return &CatalogRepository{pool: pool, opts: opts}
}

// EnsureSchema creates the catalog tables when they do not exist.
func (r *CatalogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure catalog schema: %w", err)
	}
	return nil
}

func (r *CatalogRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	couriers, err := r.loadCouriers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load courier services: %w", err)
	}

	rows, err := r.pool.Query(ctx, selectCurrencies)
	if err != nil {
		return nil, fmt.Errorf("load currencies: %w", err)
	}
	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		var c domain.Currency
		err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Value)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("load currencies: %w", err)
	}

	return domain.NewCatalog(couriers, currencies, r.opts), nil
}

func (r *CatalogRepository) loadCouriers(ctx context.Context) ([]domain.CourierService, error) {
	rows, err := r.pool.Query(ctx, selectCourierServices)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CourierService, error) {
		var (
			c         domain.CourierService
			direction string
			countries []byte
			rates     []byte
		)
		if err := row.Scan(
			&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Instruction,
			&c.TranshipmentTime, &direction, &c.MinWeight, &c.MaxWeight, &c.AddingValue,
			&c.ExchangeCurrencyID, &countries, &rates,
		); err != nil {
			return c, err
		}
		c.Type = domain.Direction(direction)
		if err := json.Unmarshal(countries, &c.Countries); err != nil {
			return c, fmt.Errorf("courier %s countries: %w", c.ID, err)
		}
		if err := json.Unmarshal(rates, &c.Rates); err != nil {
			return c, fmt.Errorf("courier %s rates: %w", c.ID, err)
		}
		return c, nil
	})
}

func (r *CatalogRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
