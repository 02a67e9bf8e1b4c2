package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"net/url"
	"testing"

	"groove/internal/api"
	"groove/internal/catalog"
	"groove/internal/client"
	"groove/internal/orders"
	"groove/internal/server"
	"groove/internal/testsupport"
)

func newTestDaemon(t *testing.T) *client.Client {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	records := catalog.NewStore(st.DB())
	catalogSvc := catalog.NewService(records, nil, nil)
	orderSvc := orders.NewService(orders.NewStore(st.DB(), records), records, nil)

	srv, err := server.New(cfg, st, catalogSvc, orderSvc, nil)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	httpServer := httptest.NewServer(srv.Handler())
	t.Cleanup(httpServer.Close)
	return client.New(httpServer.URL)
}

func TestClientRoundTrip(t *testing.T) {
	daemon := newTestDaemon(t)
	ctx := context.Background()

	health, err := daemon.Health(ctx)
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if health.Status != "ok" {
		t.Fatalf("unexpected health: %#v", health)
	}

	record, err := daemon.CreateRecord(ctx, recordRequest())
	if err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected record ID")
	}

	fetched, err := daemon.GetRecord(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if fetched.Album != "Abbey Road" {
		t.Fatalf("unexpected record: %#v", fetched)
	}

	page, err := daemon.ListRecords(ctx, url.Values{"artist": []string{"beatles"}})
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("expected 1 record, got %d", page.Total)
	}

	order, err := daemon.CreateOrder(ctx, orderRequest(record.ID))
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if order.TotalPrice != 59.98 {
		t.Fatalf("unexpected total: %v", order.TotalPrice)
	}

	if _, err := daemon.GetOrder(ctx, order.ID); err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if err := daemon.DeleteRecord(ctx, record.ID); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	daemon := newTestDaemon(t)

	_, err := daemon.GetRecord(context.Background(), "no-such-record")
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Error() == "" {
		t.Fatal("expected error message")
	}
}

func recordRequest() api.CreateRecordRequest {
	return api.CreateRecordRequest{
		Artist:   "The Beatles",
		Album:    "Abbey Road",
		Price:    29.99,
		Quantity: 10,
		Format:   "vinyl",
		Category: "rock",
	}
}

func orderRequest(recordID string) api.CreateOrderRequest {
	return api.CreateOrderRequest{
		RecordID:        recordID,
		Quantity:        2,
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: "12 Analytical Way",
	}
}
