package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-allocation-api/internal/application/inventory"
	"github.com/jhoicas/stock-allocation-api/internal/application/usecase"
	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	apphttp "github.com/jhoicas/stock-allocation-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stock-allocation-api/pkg/jwt"
	"github.com/jhoicas/stock-allocation-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testOrgID     = int64(7)
	testIssuer    = "backoffice-test"
	testExpMin    = 60
)

var errSourceDown = errors.New("stock source down")

// stockRecords simula la fuente de stock: filas por producto, todas de la organización testOrgID.
type stockRecords struct {
	mu        sync.Mutex
	byProduct map[int64][]*entity.StockRecord
	failOn    int64
	lastOrg   *int64
}

func (s *stockRecords) FetchStockRecords(_ context.Context, productID int64, organizationID *int64) ([]*entity.StockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOrg = organizationID
	if productID == s.failOn {
		return nil, errSourceDown
	}
	return s.byProduct[productID], nil
}

type locations struct {
	byID map[int64]*entity.Location
}

func (l *locations) GetByID(_ context.Context, id int64) (*entity.Location, error) {
	return l.byID[id], nil
}

func (l *locations) ListByOrganization(_ context.Context, organizationID int64, _, _ int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, loc := range l.byID {
		if loc.OrganizationID == organizationID {
			out = append(out, loc)
		}
	}
	return out, nil
}

func stockRecord(locationID int64, name, available string) *entity.StockRecord {
	return &entity.StockRecord{
		Location: entity.Location{
			ID:             locationID,
			OrganizationID: testOrgID,
			Name:           name,
			Type:           entity.LocationTypeWarehouse,
		},
		QuantityAvailable: decimal.NewNullDecimal(decimal.RequireFromString(available)),
		QuantityOnHand:    decimal.NewNullDecimal(decimal.RequireFromString(available)),
	}
}

// newTestApp arma la app completa (router + middlewares) sobre fakes en memoria.
func newTestApp(t *testing.T) (*fiber.App, *stockRecords) {
	t.Helper()
	src := &stockRecords{
		byProduct: map[int64][]*entity.StockRecord{
			1: {stockRecord(10, "A", "50"), stockRecord(20, "B", "30"), stockRecord(30, "C", "0")},
			2: {stockRecord(10, "A", "2")},
		},
		failOn: 666,
	}
	locs := &locations{byID: map[int64]*entity.Location{
		10: {ID: 10, OrganizationID: testOrgID, Name: "A", Type: entity.LocationTypeWarehouse},
		99: {ID: 99, OrganizationID: 8, Name: "Ajena", Type: entity.LocationTypeStore},
	}}

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		ConsolidationUC: inventory.NewConsolidationUseCase(src, logger.Nop()),
		LocationUC:      usecase.NewLocationUseCase(locs),
		JWTSecret:       testJWTSecret,
		MaxOrderLines:   3,
	})
	return app, src
}

func bearer(t *testing.T, orgID int64, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, orgID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func do(t *testing.T, app *fiber.App, method, target, auth string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
