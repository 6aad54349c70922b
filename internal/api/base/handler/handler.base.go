package basehdl

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "gotask_backend/internal/api/base/service"
	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
	"gotask_backend/internal/utility"
)

// filterOptions restricts what client-supplied filter documents may contain.
type filterOptions struct {
	DeniedFields     []string
	AllowedOperators []string
	MaxFields        int
}

// BaseHandler is the generic HTTP layer over a BaseServiceMongo. T is the
// stored model, CreateInput/UpdateInput the request body shapes.
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	Service basesvc.BaseServiceMongo[T]
	filter  filterOptions
}

// NewBaseHandler wires the generic handler to a service.
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		Service: service,
		filter: filterOptions{
			DeniedFields: []string{"password", "token", "secret", "key", "hash"},
			AllowedOperators: []string{
				"$eq", "$ne", "$gt", "$gte", "$lt", "$lte",
				"$in", "$nin", "$and", "$or", "$regex", "$options", "$exists",
			},
			MaxFields: 10,
		},
	}
}

// ParseRequestBody decodes a JSON request body into out. UseNumber keeps
// numeric fields from collapsing to float64.
func ParseRequestBody(c fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return common.NewError(common.ErrCodeValidationInput, "Request body is empty", common.StatusBadRequest, nil)
	}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "Invalid JSON body", common.StatusBadRequest, err)
	}
	return nil
}

// ValidateInput runs the shared validator over a DTO and converts the
// first violation into a client-facing message. Honors the global
// validation toggle.
func ValidateInput(input interface{}) error {
	if global.ServerConfig != nil && !global.ServerConfig.ValidationEnabled {
		return nil
	}
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		var vErrs validator.ValidationErrors
		if ok := isValidationErrors(err, &vErrs); ok && len(vErrs) > 0 {
			return common.NewError(common.ErrCodeValidationInput, validationMessage(vErrs[0]), common.StatusBadRequest, nil)
		}
		return common.ErrInvalidInput
	}
	return nil
}

func isValidationErrors(err error, out *validator.ValidationErrors) bool {
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		*out = vErrs
		return true
	}
	return false
}

// validationMessage renders a single violation the way clients expect:
// plain text, no quotes or backslashes.
func validationMessage(fe validator.FieldError) string {
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fe.Field() + " is required"
	case "email":
		msg = fe.Field() + " must be a valid email"
	case "min":
		msg = fe.Field() + " length must be at least " + fe.Param() + " characters long"
	case "max":
		msg = fe.Field() + " length must be less than or equal to " + fe.Param() + " characters long"
	case "oneof":
		msg = fe.Field() + " must be one of [" + fe.Param() + "]"
	case "mobile_number":
		msg = fe.Field() + " must be 10 to 15 digits"
	case "object_id":
		msg = fe.Field() + " must be a valid ObjectId"
	default:
		msg = fe.Field() + " is invalid"
	}
	return strings.NewReplacer(`"`, "", `\`, "").Replace(msg)
}

// ParseObjectID parses a route param into an ObjectID.
func ParseObjectID(value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid id format", common.StatusBadRequest, nil)
	}
	return id, nil
}

// ParsePagination reads page/limit query params with the standard clamps:
// page >= 1, limit in [1,100].
func ParsePagination(c fiber.Ctx) (page int64, limit int64) {
	page = utility.ToInt(c.Query("page"), 1)
	limit = utility.ToInt(c.Query("limit"), 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// ClampPagination applies the same clamps to body-supplied values.
func ClampPagination(page, limit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// ProcessFilter validates a client-supplied filter document against the
// handler's filter policy and returns it as bson.M.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(raw map[string]interface{}) (bson.M, error) {
	if raw == nil {
		return bson.M{}, nil
	}
	if len(raw) > h.filter.MaxFields {
		return nil, common.NewError(common.ErrCodeValidationInput, "Filter has too many fields", common.StatusBadRequest, nil)
	}
	if err := h.checkFilterNode(raw); err != nil {
		return nil, err
	}
	return bson.M(raw), nil
}

func (h *BaseHandler[T, CreateInput, UpdateInput]) checkFilterNode(node map[string]interface{}) error {
	for key, value := range node {
		if strings.HasPrefix(key, "$") && !h.operatorAllowed(key) {
			return common.NewError(common.ErrCodeValidationInput, "Filter operator not allowed: "+key, common.StatusBadRequest, nil)
		}
		if h.fieldDenied(key) {
			return common.NewError(common.ErrCodeValidationInput, "Filter field not allowed: "+key, common.StatusBadRequest, nil)
		}
		switch v := value.(type) {
		case map[string]interface{}:
			if err := h.checkFilterNode(v); err != nil {
				return err
			}
		case []interface{}:
			for _, item := range v {
				if sub, ok := item.(map[string]interface{}); ok {
					if err := h.checkFilterNode(sub); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (h *BaseHandler[T, CreateInput, UpdateInput]) operatorAllowed(op string) bool {
	for _, allowed := range h.filter.AllowedOperators {
		if op == allowed {
			return true
		}
	}
	return false
}

func (h *BaseHandler[T, CreateInput, UpdateInput]) fieldDenied(field string) bool {
	lowered := strings.ToLower(field)
	for _, denied := range h.filter.DeniedFields {
		if strings.Contains(lowered, denied) {
			return true
		}
	}
	return false
}

// transformCreate maps a validated CreateInput onto the stored model via
// field-name matching.
func (h *BaseHandler[T, CreateInput, UpdateInput]) transformCreate(input CreateInput) (T, error) {
	var model T
	if err := utility.ConvertStruct(input, &model); err != nil {
		var zero T
		return zero, common.ErrInvalidFormat
	}
	return model, nil
}

// transformUpdate maps a validated UpdateInput onto a $set document,
// dropping nil (absent) fields so the update is a partial merge.
func (h *BaseHandler[T, CreateInput, UpdateInput]) transformUpdate(input UpdateInput) (map[string]interface{}, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	var set map[string]interface{}
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, common.ErrInvalidFormat
	}
	for key, value := range set {
		if value == nil {
			delete(set, key)
		}
	}
	return set, nil
}
