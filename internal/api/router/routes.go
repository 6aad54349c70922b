package router

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// CRUDHandler is the contract a domain handler must satisfy to be mounted
// with RegisterCRUDRoutes. BaseHandler implements all of it.
type CRUDHandler interface {
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error
	UpdateOne(c fiber.Ctx) error
	UpdateMany(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	FindOneAndUpdate(c fiber.Ctx) error
	DeleteOne(c fiber.Ctx) error
	DeleteMany(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	FindOneAndDelete(c fiber.Ctx) error
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	Upsert(c fiber.Ctx) error
	UpsertMany(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// CRUDConfig toggles which generic operations get routes.
type CRUDConfig struct {
	InsOne   bool
	InsMany  bool
	Find     bool
	FindOne  bool
	FindById bool
	FindIds  bool
	Paginate bool
	UpdOne   bool
	UpdMany  bool
	UpdById  bool
	FindUpd  bool
	DelOne   bool
	DelMany  bool
	DelById  bool
	FindDel  bool
	Count    bool
	Distinct bool
	Upsert   bool
	UpsMany  bool
	Exists   bool
}

// ReadOnlyConfig exposes only the query operations.
func ReadOnlyConfig() CRUDConfig {
	return CRUDConfig{
		Find:     true,
		FindOne:  true,
		FindById: true,
		FindIds:  true,
		Paginate: true,
		Count:    true,
		Distinct: true,
		Exists:   true,
	}
}

// ReadWriteConfig exposes the full operation set.
func ReadWriteConfig() CRUDConfig {
	return CRUDConfig{
		InsOne:   true,
		InsMany:  true,
		Find:     true,
		FindOne:  true,
		FindById: true,
		FindIds:  true,
		Paginate: true,
		UpdOne:   true,
		UpdMany:  true,
		UpdById:  true,
		FindUpd:  true,
		DelOne:   true,
		DelMany:  true,
		DelById:  true,
		FindDel:  true,
		Count:    true,
		Distinct: true,
		Upsert:   true,
		UpsMany:  true,
		Exists:   true,
	}
}

// RecordConfig is the operation set the record collections expose.
func RecordConfig() CRUDConfig {
	return CRUDConfig{
		InsOne:   true,
		FindById: true,
		Paginate: true,
		UpdById:  true,
		DelById:  true,
	}
}

// RoutePrefix holds the API path prefixes used across all route groups.
type RoutePrefix struct {
	Base string
	V1   string
}

func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
		V1:   "/api/v1",
	}
}

// Router wraps the fiber app together with the shared prefixes.
type Router struct {
	App    *fiber.App
	Prefix RoutePrefix
}

func NewRouter(app *fiber.App) *Router {
	return &Router{
		App:    app,
		Prefix: NewRoutePrefix(),
	}
}

// RegisterRouteWithMiddleware registers one route under prefix with a
// middleware chain. The chain is attached to the route itself, so routes
// sharing a prefix never accumulate duplicate middleware registrations.
func RegisterRouteWithMiddleware(router fiber.Router, prefix, method, path string, middleware []fiber.Handler, handler fiber.Handler) error {
	full := prefix + path
	switch strings.ToUpper(method) {
	case fiber.MethodGet:
		router.Get(full, handler, middleware...)
	case fiber.MethodPost:
		router.Post(full, handler, middleware...)
	case fiber.MethodPut:
		router.Put(full, handler, middleware...)
	case fiber.MethodDelete:
		router.Delete(full, handler, middleware...)
	default:
		return fmt.Errorf("unsupported method %q for route %s%s", method, prefix, path)
	}
	return nil
}

type crudRoute struct {
	enabled bool
	method  string
	path    string
	handler fiber.Handler
}

// RegisterCRUDRoutes mounts the generic operations enabled in cfg under
// prefix, each behind the supplied middleware chain.
func RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, cfg CRUDConfig, middleware []fiber.Handler) error {
	routes := []crudRoute{
		{cfg.InsOne, fiber.MethodPost, "/insert-one", h.InsertOne},
		{cfg.InsMany, fiber.MethodPost, "/insert-many", h.InsertMany},
		{cfg.Find, fiber.MethodGet, "/find", h.Find},
		{cfg.FindOne, fiber.MethodGet, "/find-one", h.FindOne},
		{cfg.FindById, fiber.MethodGet, "/find-by-id/:id", h.FindOneById},
		{cfg.FindIds, fiber.MethodPost, "/find-by-ids", h.FindManyByIds},
		{cfg.Paginate, fiber.MethodGet, "/find-with-pagination", h.FindWithPagination},
		{cfg.UpdOne, fiber.MethodPut, "/update-one", h.UpdateOne},
		{cfg.UpdMany, fiber.MethodPut, "/update-many", h.UpdateMany},
		{cfg.UpdById, fiber.MethodPut, "/update-by-id/:id", h.UpdateById},
		{cfg.FindUpd, fiber.MethodPut, "/find-one-and-update", h.FindOneAndUpdate},
		{cfg.DelOne, fiber.MethodDelete, "/delete-one", h.DeleteOne},
		{cfg.DelMany, fiber.MethodDelete, "/delete-many", h.DeleteMany},
		{cfg.DelById, fiber.MethodDelete, "/delete-by-id/:id", h.DeleteById},
		{cfg.FindDel, fiber.MethodDelete, "/find-one-and-delete", h.FindOneAndDelete},
		{cfg.Count, fiber.MethodGet, "/count", h.CountDocuments},
		{cfg.Distinct, fiber.MethodGet, "/distinct", h.Distinct},
		{cfg.Upsert, fiber.MethodPost, "/upsert-one", h.Upsert},
		{cfg.UpsMany, fiber.MethodPost, "/upsert-many", h.UpsertMany},
		{cfg.Exists, fiber.MethodGet, "/exists", h.DocumentExists},
	}

	for _, r := range routes {
		if !r.enabled {
			continue
		}
		if err := RegisterRouteWithMiddleware(router, prefix, r.method, r.path, middleware, r.handler); err != nil {
			return err
		}
	}
	return nil
}

// RegisterFunc wires one domain's routes onto the shared v1 group.
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes runs every domain registration against a fresh v1 group.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	r := NewRouter(app)
	v1 := app.Group(r.Prefix.V1)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
