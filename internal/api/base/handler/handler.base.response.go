package basehdl

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"gotask_backend/internal/common"
	"gotask_backend/internal/logger"
)

// JSONResponse writes a JSON body with an explicit UTF-8 charset.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// Success writes a success envelope.
func Success(c fiber.Ctx, statusCode int, message string, data interface{}) error {
	return JSONResponse(c, statusCode, common.NewSuccess(statusCode, message, data))
}

// SuccessPaged writes a success envelope with pagination metadata.
func SuccessPaged(c fiber.Ctx, statusCode int, message string, data interface{}, currentPage, totalPages int64) error {
	return JSONResponse(c, statusCode, common.NewSuccessPaged(statusCode, message, data, currentPage, totalPages))
}

// Failure maps an error onto the failure envelope. Raw errors never reach
// the client; unknown errors collapse to a generic 500 message.
func Failure(c fiber.Ctx, err error) error {
	env := common.FromError(err)
	if env.StatusCode >= common.StatusInternalServerError {
		logger.WithRequest(c).WithError(err).Error("Request failed")
	}
	return JSONResponse(c, env.StatusCode, env)
}

// FailureMsg writes a failure envelope with an explicit code and message.
func FailureMsg(c fiber.Ctx, statusCode int, message string) error {
	return JSONResponse(c, statusCode, common.NewFailure(statusCode, message))
}

// SafeHandler wraps a handler body with a recover so a panic still produces
// a response instead of dropping the connection.
func SafeHandler(c fiber.Ctx, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			logger.WithRequest(c).Error(fmt.Sprintf("panic recovered: %v", r))
			err = FailureMsg(c, common.StatusInternalServerError, "Internal server error")
		}
	}()
	return fn()
}

// HandleResponse is the one-call form used by the generic CRUD handlers:
// on error it writes the failure envelope, otherwise a 200 success.
func HandleResponse(c fiber.Ctx, message string, data interface{}, err error) error {
	if err != nil {
		return Failure(c, err)
	}
	return Success(c, common.StatusOK, message, data)
}
