package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatter-metrics-service/internal/performance/core/usecase"
	"chatter-metrics-service/internal/platform/validation"

	"github.com/gofiber/fiber/v2"
)

type fakeUpsertUseCase struct {
	ExecuteFunc      func(ctx context.Context, in usecase.UpsertPerformanceInput) (bool, error)
	BulkFunc         func(ctx context.Context, in usecase.BulkUpsertPerformanceInput) (usecase.BulkUpsertPerformanceResult, error)
	LastExecuteInput usecase.UpsertPerformanceInput
	LastBulkInput    usecase.BulkUpsertPerformanceInput
	calls            int
}

func (f *fakeUpsertUseCase) Execute(ctx context.Context, in usecase.UpsertPerformanceInput) (bool, error) {
	f.calls++
	f.LastExecuteInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return true, nil
}

func (f *fakeUpsertUseCase) BulkUpsert(ctx context.Context, in usecase.BulkUpsertPerformanceInput) (usecase.BulkUpsertPerformanceResult, error) {
	f.calls++
	f.LastBulkInput = in
	if f.BulkFunc != nil {
		return f.BulkFunc(ctx, in)
	}
	return usecase.BulkUpsertPerformanceResult{}, nil
}

func setupTestApp(uc UpsertPerformanceUseCase) *fiber.App {
	app := fiber.New()
	h := NewPerformanceHandler(uc, validation.New())

	app.Post("/performance", h.UpsertPerformance)
	app.Post("/performance/bulk", h.BulkUpsertPerformance)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func validBody() map[string]any {
	return map[string]any{
		"chatter_id":              7,
		"date":                    "2025-11-30",
		"sales_amount":            250.5,
		"sold_count":              5,
		"average_resolution_time": "3m 42s",
	}
}

// ------------------------------------------------------------
// POST /performance
// ------------------------------------------------------------

func TestUpsertPerformance_Created(t *testing.T) {
	uc := &fakeUpsertUseCase{}
	app := setupTestApp(uc)

	resp, body := doRequest(t, app, http.MethodPost, "/performance", validBody())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}

	var out UpsertPerformanceResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Status != "created" {
		t.Fatalf("expected created, got %q", out.Status)
	}

	in := uc.LastExecuteInput
	if in.ChatterID != 7 || in.Date != "2025-11-30" || in.AvgResolutionTime != "3m 42s" {
		t.Fatalf("unexpected input %+v", in)
	}
	if in.SoldCount == nil || *in.SoldCount != 5 {
		t.Fatalf("expected sold_count 5, got %v", in.SoldCount)
	}
	if in.RetentionCount != nil {
		t.Fatalf("expected absent retention_count to stay nil")
	}
}

func TestUpsertPerformance_Updated(t *testing.T) {
	uc := &fakeUpsertUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.UpsertPerformanceInput) (bool, error) { return false, nil },
	}
	app := setupTestApp(uc)

	resp, body := doRequest(t, app, http.MethodPost, "/performance", validBody())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
}

func TestUpsertPerformance_InvalidJSON(t *testing.T) {
	uc := &fakeUpsertUseCase{}
	app := setupTestApp(uc)

	resp, _ := doRequest(t, app, http.MethodPost, "/performance", "{not json")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if uc.calls != 0 {
		t.Fatalf("use case should not be called")
	}
}

func TestUpsertPerformance_ValidationFails(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing chatter", func(b map[string]any) { delete(b, "chatter_id") }},
		{"bad date", func(b map[string]any) { b["date"] = "30.11.2025" }},
		{"negative sold", func(b map[string]any) { b["sold_count"] = -1 }},
		{"too many hours", func(b map[string]any) { b["worked_hours"] = 30 }},
		{"negative sph override", func(b map[string]any) { b["sph"] = -3.5 }},
		{"negative unlock ratio override", func(b map[string]any) { b["unlock_ratio"] = -0.2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUpsertUseCase{}
			app := setupTestApp(uc)

			body := validBody()
			tt.mutate(body)

			resp, raw := doRequest(t, app, http.MethodPost, "/performance", body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.StatusCode, raw)
			}

			var out ErrorResponse
			if err := json.Unmarshal(raw, &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out.Error != "invalid_record" {
				t.Fatalf("expected invalid_record, got %q", out.Error)
			}
			if uc.calls != 0 {
				t.Fatalf("use case should not be called")
			}
		})
	}
}

func TestUpsertPerformance_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid record", usecase.ErrInvalidRecord, http.StatusBadRequest},
		{"future date", usecase.ErrFutureDate, http.StatusBadRequest},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUpsertUseCase{
				ExecuteFunc: func(ctx context.Context, in usecase.UpsertPerformanceInput) (bool, error) {
					return false, tt.err
				},
			}
			app := setupTestApp(uc)

			resp, _ := doRequest(t, app, http.MethodPost, "/performance", validBody())
			if resp.StatusCode != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}

// ------------------------------------------------------------
// POST /performance/bulk
// ------------------------------------------------------------

func TestBulkUpsertPerformance_Success(t *testing.T) {
	uc := &fakeUpsertUseCase{
		BulkFunc: func(ctx context.Context, in usecase.BulkUpsertPerformanceInput) (usecase.BulkUpsertPerformanceResult, error) {
			return usecase.BulkUpsertPerformanceResult{Created: 1, Updated: 1}, nil
		},
	}
	app := setupTestApp(uc)

	second := validBody()
	second["chatter_id"] = 8

	resp, body := doRequest(t, app, http.MethodPost, "/performance/bulk", map[string]any{
		"records": []any{validBody(), second},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}

	var out BulkUpsertPerformanceResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Created != 1 || out.Updated != 1 {
		t.Fatalf("unexpected response %+v", out)
	}
	if len(uc.LastBulkInput.Records) != 2 || uc.LastBulkInput.Records[1].ChatterID != 8 {
		t.Fatalf("unexpected bulk input %+v", uc.LastBulkInput)
	}
}

func TestBulkUpsertPerformance_EmptyList(t *testing.T) {
	uc := &fakeUpsertUseCase{}
	app := setupTestApp(uc)

	resp, body := doRequest(t, app, http.MethodPost, "/performance/bulk", map[string]any{"records": []any{}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var out ErrorResponse
	_ = json.Unmarshal(body, &out)
	if out.Error != "records_list_required" {
		t.Fatalf("expected records_list_required, got %q", out.Error)
	}
}

func TestBulkUpsertPerformance_InvalidItem(t *testing.T) {
	uc := &fakeUpsertUseCase{}
	app := setupTestApp(uc)

	bad := validBody()
	bad["chatter_id"] = 0

	resp, _ := doRequest(t, app, http.MethodPost, "/performance/bulk", map[string]any{
		"records": []any{validBody(), bad},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if uc.calls != 0 {
		t.Fatalf("use case should not be called when any record is invalid")
	}
}

func TestBulkUpsertPerformance_UseCaseError(t *testing.T) {
	uc := &fakeUpsertUseCase{
		BulkFunc: func(ctx context.Context, in usecase.BulkUpsertPerformanceInput) (usecase.BulkUpsertPerformanceResult, error) {
			return usecase.BulkUpsertPerformanceResult{}, errors.New("db down")
		},
	}
	app := setupTestApp(uc)

	resp, _ := doRequest(t, app, http.MethodPost, "/performance/bulk", map[string]any{
		"records": []any{validBody()},
	})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}
