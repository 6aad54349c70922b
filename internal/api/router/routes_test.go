package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestReadOnlyConfigHasNoMutations(t *testing.T) {
	cfg := ReadOnlyConfig()
	if cfg.InsOne || cfg.InsMany || cfg.UpdOne || cfg.UpdById || cfg.DelOne || cfg.DelById {
		t.Error("read-only preset must not enable mutating routes")
	}
	if !cfg.Find || !cfg.FindById || !cfg.Paginate {
		t.Error("read-only preset should enable the read routes")
	}
}

func TestRecordConfigRoutes(t *testing.T) {
	cfg := RecordConfig()
	if !cfg.InsOne || !cfg.FindById || !cfg.Paginate || !cfg.UpdById || !cfg.DelById {
		t.Errorf("record preset missing a core route: %+v", cfg)
	}
	if cfg.InsMany || cfg.Upsert || cfg.DelMany {
		t.Errorf("record preset enables routes it should not: %+v", cfg)
	}
}

func TestNewRoutePrefix(t *testing.T) {
	p := NewRoutePrefix()
	if p.Base != "/api" || p.V1 != "/api/v1" {
		t.Errorf("unexpected prefixes: %+v", p)
	}
}

func TestRegisterRouteWithMiddlewareRejectsUnknownMethod(t *testing.T) {
	app := fiber.New()
	ok := func(c fiber.Ctx) error { return c.SendString("ok") }
	if err := RegisterRouteWithMiddleware(app, "/things", "PATCH", "/one", nil, ok); err == nil {
		t.Error("expected an error for an unsupported method")
	}
}

func TestRegisterRouteWithMiddlewareRunsChainOncePerRequest(t *testing.T) {
	app := fiber.New()
	calls := 0
	counting := func(c fiber.Ctx) error {
		calls++
		return c.Next()
	}
	ok := func(c fiber.Ctx) error { return c.SendString("ok") }

	mw := []fiber.Handler{counting}
	if err := RegisterRouteWithMiddleware(app, "/things", "GET", "/one", mw, ok); err != nil {
		t.Fatalf("register /one: %v", err)
	}
	if err := RegisterRouteWithMiddleware(app, "/things", "GET", "/two", mw, ok); err != nil {
		t.Fatalf("register /two: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/things/one", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if calls != 1 {
		t.Errorf("middleware ran %d times for one request, want 1", calls)
	}
}
