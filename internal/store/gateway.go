// Package store implements the resource-store gateway: filtered reads,
// single-row inserts, and filtered updates against the external table
// store (Supabase PostgREST).
//
// The store owns schema, durability, and generated fields; this package
// only shapes requests and relays rows. Reads request no explicit
// ordering, so callers must not rely on row order.
package store

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/models"
)

// Gateway is the table-store access contract used by every handler.
type Gateway interface {
	// Query returns all rows of table matching the equality filters.
	Query(ctx context.Context, table string, filters map[string]string) ([]models.Row, error)

	// Insert writes exactly one record and returns the stored row,
	// including store-generated fields such as id and timestamps.
	Insert(ctx context.Context, table string, record map[string]any) (models.Row, error)

	// Update applies changes to all rows matching the equality filters
	// and returns the updated rows. Zero updated rows is not an error;
	// callers decide what an empty result means.
	Update(ctx context.Context, table string, filters map[string]string, changes map[string]any) ([]models.Row, error)
}

// Config holds the settings for the table-store client.
type Config struct {
	// BaseURL is the Supabase project base URL; tables are reached
	// under /rest/v1.
	BaseURL string
	// APIKey authenticates the service against the store. It is sent
	// both as the "apikey" header and as a bearer token.
	APIKey string
	// Timeout bounds a single store round trip.
	Timeout time.Duration
}

type restGateway struct {
	client *resty.Client
	logger *logger.Logger
}

// NewRESTGateway builds a Gateway backed by the PostgREST endpoint of a
// Supabase project.
func NewRESTGateway(cfg Config, log *logger.Logger) Gateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/rest/v1").
		SetTimeout(cfg.Timeout).
		SetHeader("apikey", cfg.APIKey).
		SetHeader("Authorization", "Bearer "+cfg.APIKey)

	return &restGateway{client: cli, logger: log}
}

func (g *restGateway) Query(ctx context.Context, table string, filters map[string]string) ([]models.Row, error) {
	var rows []models.Row
	req := g.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetResult(&rows)

	for _, column := range sortedKeys(filters) {
		req.SetQueryParam(column, "eq."+filters[column])
	}

	resp, err := req.Get("/" + table)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	if err = mapStoreError(table, resp); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []models.Row{}
	}
	g.logger.Debug().Str("table", table).Int("rows", len(rows)).Msg("store query")
	return rows, nil
}

func (g *restGateway) Insert(ctx context.Context, table string, record map[string]any) (models.Row, error) {
	var rows []models.Row
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(record).
		SetResult(&rows).
		Post("/" + table)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", table, err)
	}
	if err = mapStoreError(table, resp); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("insert %s: %w", table, ErrEmptyResult)
	}
	return rows[0], nil
}

func (g *restGateway) Update(ctx context.Context, table string, filters map[string]string, changes map[string]any) ([]models.Row, error) {
	var rows []models.Row
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(changes).
		SetResult(&rows)

	for _, column := range sortedKeys(filters) {
		req.SetQueryParam(column, "eq."+filters[column])
	}

	resp, err := req.Patch("/" + table)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", table, err)
	}
	if err = mapStoreError(table, resp); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []models.Row{}
	}
	return rows, nil
}

// mapStoreError converts a non-2xx store response into an error carrying
// the status and trimmed body.
func mapStoreError(table string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("store %s: http %d: %s", table, resp.StatusCode(), body)
}

// sortedKeys keeps the filter order deterministic across calls, which
// keeps request URLs stable for logs and tests.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
