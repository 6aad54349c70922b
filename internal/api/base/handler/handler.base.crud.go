package basehdl

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gotask_backend/internal/common"
)

// filterRequest is the body shape of filter-driven CRUD endpoints.
type filterRequest struct {
	Filter map[string]interface{} `json:"filter"`
	Update map[string]interface{} `json:"update"`
	IDs    []string               `json:"ids"`
	Field  string                 `json:"field"`
}

func (h *BaseHandler[T, CreateInput, UpdateInput]) parseFilterRequest(c fiber.Ctx) (*filterRequest, bson.M, error) {
	var req filterRequest
	// Read-style routes accept an omitted body as an empty filter.
	if len(c.Body()) > 0 {
		if err := ParseRequestBody(c, &req); err != nil {
			return nil, nil, err
		}
	}
	filter, err := h.ProcessFilter(req.Filter)
	if err != nil {
		return nil, nil, err
	}
	return &req, filter, nil
}

// InsertOne creates one record from a validated CreateInput body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input CreateInput
		if err := ParseRequestBody(c, &input); err != nil {
			return Failure(c, err)
		}
		if err := ValidateInput(input); err != nil {
			return Failure(c, err)
		}
		model, err := h.transformCreate(input)
		if err != nil {
			return Failure(c, err)
		}
		created, err := h.Service.InsertOne(c.Context(), model)
		if err != nil {
			return Failure(c, err)
		}
		return Success(c, common.StatusCreated, "Created successfully", created)
	})
}

// InsertMany creates a batch of records.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertMany(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var inputs []CreateInput
		if err := ParseRequestBody(c, &inputs); err != nil {
			return Failure(c, err)
		}
		models := make([]T, 0, len(inputs))
		for _, input := range inputs {
			if err := ValidateInput(input); err != nil {
				return Failure(c, err)
			}
			model, err := h.transformCreate(input)
			if err != nil {
				return Failure(c, err)
			}
			models = append(models, model)
		}
		created, err := h.Service.InsertMany(c.Context(), models)
		if err != nil {
			return Failure(c, err)
		}
		return Success(c, common.StatusCreated, "Created successfully", created)
	})
}

// Find lists records matching a filter body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		_, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		items, err := h.Service.Find(c.Context(), filter, nil)
		return HandleResponse(c, "Fetched successfully", items, err)
	})
}

// FindOne returns the first record matching a filter body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		_, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		item, err := h.Service.FindOne(c.Context(), filter, nil)
		return HandleResponse(c, "Fetched successfully", item, err)
	})
}

// FindOneById returns the record with the id route param.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseObjectID(c.Params("id"))
		if err != nil {
			return Failure(c, err)
		}
		item, err := h.Service.FindOneById(c.Context(), id)
		return HandleResponse(c, "Fetched successfully", item, err)
	})
}

// FindManyByIds returns the records whose ids appear in the body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindManyByIds(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		req, _, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		ids := make([]primitive.ObjectID, 0, len(req.IDs))
		for _, raw := range req.IDs {
			id, err := ParseObjectID(raw)
			if err != nil {
				return Failure(c, err)
			}
			ids = append(ids, id)
		}
		items, err := h.Service.FindManyByIds(c.Context(), ids)
		return HandleResponse(c, "Fetched successfully", items, err)
	})
}

// FindWithPagination lists records page by page. The filter comes
// from the `filter` query param as a JSON document.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		page, limit := ParsePagination(c)

		filter := bson.M{}
		if rawFilter := c.Query("filter"); rawFilter != "" {
			var parsed map[string]interface{}
			if err := json.Unmarshal([]byte(rawFilter), &parsed); err != nil {
				return Failure(c, common.NewError(common.ErrCodeValidationFormat, "Invalid filter JSON", common.StatusBadRequest, nil))
			}
			checked, err := h.ProcessFilter(parsed)
			if err != nil {
				return Failure(c, err)
			}
			filter = checked
		}

		result, err := h.Service.FindWithPagination(c.Context(), filter, page, limit, nil)
		if err != nil {
			return Failure(c, err)
		}
		return SuccessPaged(c, common.StatusOK, "Fetched successfully", result.Items, result.Page, result.TotalPage)
	})
}

// UpdateOne updates the first record matching the filter body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		req, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		item, err := h.Service.UpdateOne(c.Context(), filter, req.Update)
		return HandleResponse(c, "Updated successfully", item, err)
	})
}

// UpdateMany updates every record matching the filter body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateMany(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		req, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		count, err := h.Service.UpdateMany(c.Context(), filter, req.Update)
		return HandleResponse(c, "Updated successfully", fiber.Map{"modifiedCount": count}, err)
	})
}

// UpdateById applies a validated UpdateInput to the record with the
// id route param.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseObjectID(c.Params("id"))
		if err != nil {
			return Failure(c, err)
		}
		var input UpdateInput
		if err := ParseRequestBody(c, &input); err != nil {
			return Failure(c, err)
		}
		if err := ValidateInput(input); err != nil {
			return Failure(c, err)
		}
		set, err := h.transformUpdate(input)
		if err != nil {
			return Failure(c, err)
		}
		item, err := h.Service.UpdateById(c.Context(), id, set)
		return HandleResponse(c, "Updated successfully", item, err)
	})
}

// FindOneAndUpdate updates and returns one record in a single call.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndUpdate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		req, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		item, err := h.Service.FindOneAndUpdate(c.Context(), filter, req.Update, nil)
		return HandleResponse(c, "Updated successfully", item, err)
	})
}

// DeleteOne removes the first record matching the filter body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		_, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		err = h.Service.DeleteOne(c.Context(), filter)
		return HandleResponse(c, "Deleted successfully", fiber.Map{}, err)
	})
}

// DeleteMany removes every record matching the filter body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteMany(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		_, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		count, err := h.Service.DeleteMany(c.Context(), filter)
		return HandleResponse(c, "Deleted successfully", fiber.Map{"deletedCount": count}, err)
	})
}

// DeleteById removes the record with the id route param.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseObjectID(c.Params("id"))
		if err != nil {
			return Failure(c, err)
		}
		err = h.Service.DeleteById(c.Context(), id)
		return HandleResponse(c, "Deleted successfully", fiber.Map{}, err)
	})
}

// FindOneAndDelete removes one record and returns its last state.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndDelete(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		_, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		item, err := h.Service.FindOneAndDelete(c.Context(), filter)
		return HandleResponse(c, "Deleted successfully", item, err)
	})
}

// CountDocuments counts records matching the filter body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		_, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		count, err := h.Service.CountDocuments(c.Context(), filter)
		return HandleResponse(c, "Counted successfully", fiber.Map{"count": count}, err)
	})
}

// Distinct returns the distinct values of the requested field.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Distinct(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		req, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		if req.Field == "" {
			return Failure(c, common.NewError(common.ErrCodeValidationInput, "Field is required", common.StatusBadRequest, nil))
		}
		if h.fieldDenied(req.Field) {
			return Failure(c, common.NewError(common.ErrCodeValidationInput, "Field not allowed: "+req.Field, common.StatusBadRequest, nil))
		}
		values, err := h.Service.Distinct(c.Context(), req.Field, filter)
		return HandleResponse(c, "Fetched successfully", values, err)
	})
}

// upsertRequest is the body shape of upsert endpoints.
type upsertRequest[CreateInput any] struct {
	Filter map[string]interface{} `json:"filter"`
	Data   CreateInput            `json:"data"`
	Items  []CreateInput          `json:"items"`
}

// Upsert updates or inserts one record.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Upsert(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var req upsertRequest[CreateInput]
		if err := ParseRequestBody(c, &req); err != nil {
			return Failure(c, err)
		}
		filter, err := h.ProcessFilter(req.Filter)
		if err != nil {
			return Failure(c, err)
		}
		if err := ValidateInput(req.Data); err != nil {
			return Failure(c, err)
		}
		model, err := h.transformCreate(req.Data)
		if err != nil {
			return Failure(c, err)
		}
		item, err := h.Service.Upsert(c.Context(), filter, model)
		return HandleResponse(c, "Upserted successfully", item, err)
	})
}

// UpsertMany upserts a batch of records against the same filter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpsertMany(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var req upsertRequest[CreateInput]
		if err := ParseRequestBody(c, &req); err != nil {
			return Failure(c, err)
		}
		filter, err := h.ProcessFilter(req.Filter)
		if err != nil {
			return Failure(c, err)
		}
		models := make([]T, 0, len(req.Items))
		for _, input := range req.Items {
			if err := ValidateInput(input); err != nil {
				return Failure(c, err)
			}
			model, err := h.transformCreate(input)
			if err != nil {
				return Failure(c, err)
			}
			models = append(models, model)
		}
		items, err := h.Service.UpsertMany(c.Context(), filter, models)
		return HandleResponse(c, "Upserted successfully", items, err)
	})
}

// DocumentExists reports whether any record matches the filter body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		_, filter, err := h.parseFilterRequest(c)
		if err != nil {
			return Failure(c, err)
		}
		exists, err := h.Service.DocumentExists(c.Context(), filter)
		return HandleResponse(c, "Checked successfully", fiber.Map{"exists": exists}, err)
	})
}
