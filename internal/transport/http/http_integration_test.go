//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/wb_warehouse/internal/cache/memory"
	"github.com/Gunvolt24/wb_warehouse/internal/domain"
	pgrepo "github.com/Gunvolt24/wb_warehouse/internal/repo/postgres"
	"github.com/Gunvolt24/wb_warehouse/internal/testutil"
	rest "github.com/Gunvolt24/wb_warehouse/internal/transport/http"
	"github.com/Gunvolt24/wb_warehouse/internal/usecase"
	"github.com/Gunvolt24/wb_warehouse/pkg/logger"
	"github.com/Gunvolt24/wb_warehouse/pkg/validate"
)

// newHTTPEnv поднимает Postgres, применяет миграции и возвращает готовый тестовый сервер.
func newHTTPEnv(t *testing.T) (context.Context, *testutil.PGContainer, *pgrepo.PlacementRepository, *httptest.Server) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	t.Cleanup(cancel)

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewPlacementRepository(pg.Pool)
	svc := usecase.NewPlacementService(
		repo, repo,
		cachemem.NewLRUCacheTTL(100, time.Minute),
		logg,
		validate.NewPlacementValidator(),
	)

	h := rest.NewHandler(svc, logg, 2*time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	t.Cleanup(ts.Close)

	return ctx, pg, repo, ts
}

func postPlacement(t *testing.T, ts *httptest.Server, warehouseID, productID int64, amount int) *http.Response {
	t.Helper()
	body, _ := json.Marshal(domain.PlacementRequest{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Amount:      amount,
	})
	resp, err := http.Post(ts.URL+"/placements", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

// 1) POST /placements — 201 при первом размещении, 409 при повторном
func TestHTTP_RegisterPlacement_Then_Conflict_TC(t *testing.T) {
	ctx, pg, _, ts := newHTTPEnv(t)

	sc := testutil.Scenario{ProductID: 10, WarehouseID: 20, OrderID: 5, Amount: 3}
	require.NoError(t, testutil.SeedScenario(ctx, pg.Pool, sc))

	// первое размещение — 201 и положительный id
	resp := postPlacement(t, ts, sc.WarehouseID, sc.ProductID, sc.Amount)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Positive(t, created["placement_id"])

	// повтор того же запроса — подходящий заказ уже выполнен
	resp2 := postPlacement(t, ts, sc.WarehouseID, sc.ProductID, sc.Amount)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusNotFound, resp2.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&got))
	require.Equal(t, "eligible order not found", got["error"])
}

// 2) POST /placements — 404 для несуществующих товара и склада
func TestHTTP_RegisterPlacement_NotFound_TC(t *testing.T) {
	ctx, pg, _, ts := newHTTPEnv(t)

	sc := testutil.Scenario{ProductID: 10, WarehouseID: 20, OrderID: 5, Amount: 3}
	require.NoError(t, testutil.SeedScenario(ctx, pg.Pool, sc))

	// склад 999 не существует
	resp := postPlacement(t, ts, 999, sc.ProductID, sc.Amount)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "warehouse not found", got["error"])

	// товар 888 не существует
	resp2 := postPlacement(t, ts, sc.WarehouseID, 888, sc.Amount)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusNotFound, resp2.StatusCode)

	var got2 map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&got2))
	require.Equal(t, "product not found", got2["error"])
}

// 3) POST /placements — 400 на невалидное количество
func TestHTTP_RegisterPlacement_BadAmount_TC(t *testing.T) {
	_, _, _, ts := newHTTPEnv(t)

	resp := postPlacement(t, ts, 20, 10, 0)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// 4) GET /placement/:id — 200 после регистрации, 404 для чужого id
func TestHTTP_GetPlacement_TC(t *testing.T) {
	ctx, pg, _, ts := newHTTPEnv(t)

	sc := testutil.Scenario{ProductID: 10, WarehouseID: 20, OrderID: 5, Amount: 3}
	require.NoError(t, testutil.SeedScenario(ctx, pg.Pool, sc))

	resp := postPlacement(t, ts, sc.WarehouseID, sc.ProductID, sc.Amount)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	id := created["placement_id"]

	respGet, err := http.Get(fmt.Sprintf("%s/placement/%d", ts.URL, id))
	require.NoError(t, err)
	defer respGet.Body.Close()
	require.Equal(t, http.StatusOK, respGet.StatusCode)

	var placement domain.Placement
	require.NoError(t, json.NewDecoder(respGet.Body).Decode(&placement))
	require.Equal(t, id, placement.ID)
	require.Equal(t, sc.OrderID, placement.OrderID)

	resp404, err := http.Get(ts.URL + "/placement/999999")
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp404.Body).Decode(&got))
	require.Equal(t, "placement not found", got["error"])
}

// 5) GET /warehouse/:id/placements — пагинация и фильтрация по складу
func TestHTTP_ListPlacementsByWarehouse_Pagination_TC(t *testing.T) {
	ctx, pg, _, ts := newHTTPEnv(t)

	// 3 заказа на один склад + 1 на другой
	const wh, whOther = int64(20), int64(21)
	require.NoError(t, testutil.SeedWarehouse(ctx, pg.Pool, wh))
	require.NoError(t, testutil.SeedWarehouse(ctx, pg.Pool, whOther))

	for i := int64(0); i < 3; i++ {
		productID := 100 + i
		require.NoError(t, testutil.SeedProduct(ctx, pg.Pool, productID))
		require.NoError(t, testutil.SeedOrder(ctx, pg.Pool, 200+i, productID, 1, time.Now().UTC()))

		resp := postPlacement(t, ts, wh, productID, 1)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	require.NoError(t, testutil.SeedProduct(ctx, pg.Pool, 110))
	require.NoError(t, testutil.SeedOrder(ctx, pg.Pool, 210, 110, 1, time.Now().UTC()))
	respOther := postPlacement(t, ts, whOther, 110, 1)
	require.Equal(t, http.StatusCreated, respOther.StatusCode)
	respOther.Body.Close()

	// limit=2 offset=1 — ожидаем 2 размещения данного склада
	resp, err := http.Get(fmt.Sprintf("%s/warehouse/%d/placements?limit=2&offset=1", ts.URL, wh))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []domain.Placement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	require.Len(t, got, 2)
	for _, p := range got {
		require.Equal(t, wh, p.WarehouseID)
	}
}

// 6) GET /placements — 405 Method Not Allowed + заголовок Allow: POST
func TestHTTP_Placements_MethodNotAllowed_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(noOpService{}, logg, 2*time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/placements")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	require.Equal(t, "POST", resp.Header.Get("Allow"))

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "method not allowed", got["error"])
}

// 7) /ping, /metrics, 404 на неизвестный маршрут
func TestHTTP_Health_Metrics_And_404_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(noOpService{}, logg, 2*time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	defer ts.Close()

	// /ping
	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(readAll(t, resp.Body)))

	// /metrics
	respM, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer respM.Body.Close()
	require.Equal(t, http.StatusOK, respM.StatusCode)
	require.NotEmpty(t, readAll(t, respM.Body)) // достаточно, что не пусто

	// 404
	resp404, err := http.Get(ts.URL + "/no/such/route")
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp404.Body).Decode(&got))
	require.Equal(t, "route not found", got["error"])
}

// 8) Таймаут запросов: Handler с коротким reqTimeout должен вернуть 500
func TestHTTP_GetPlacement_Timeout_500_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(slowService{}, logg, 10*time.Millisecond)
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/placement/42")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Ожидаем 500, так как slowService вернёт ctx.Err() по таймауту
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "internal server error", got["error"])
}

// --- функции помощники ---

// noOpService — простая заглушка для роутера, где неважно, что вернёт бизнес-логика.
type noOpService struct{}

func (noOpService) RegisterPlacement(context.Context, int64, int64, int) (int64, error) {
	return 0, nil
}
func (noOpService) GetPlacement(context.Context, int64) (*domain.Placement, error) { return nil, nil }
func (noOpService) PlacementsByWarehouse(context.Context, int64, int, int) ([]*domain.Placement, error) {
	return nil, nil
}

// slowService — всегда ждёт ctx.Done() и возвращает ошибку контекста (для проверки таймаута 500).
type slowService struct{}

func (slowService) RegisterPlacement(ctx context.Context, _, _ int64, _ int) (int64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}
func (slowService) GetPlacement(ctx context.Context, _ int64) (*domain.Placement, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
func (slowService) PlacementsByWarehouse(ctx context.Context, _ int64, _, _ int) ([]*domain.Placement, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// readAll — просто прочитать тело.
func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}
