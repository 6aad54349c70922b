package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAction writes one audit entry for an admin mutation. The entry
// carries the acting user from the request context plus client metadata.
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	userID := ""
	if v := c.Locals("user_id"); v != nil {
		if uid, ok := v.(string); ok {
			userID = uid
		}
	}
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		details["request_id"] = requestID
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":     action,
		"user_id":    userID,
		"ip":         c.IP(),
		"user_agent": c.Get("User-Agent"),
		"details":    details,
		"timestamp":  time.Now(),
	}).Info("Audit log")
}

// LogCRUD records a create, update or delete on a named resource.
func LogCRUD(operation string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["operation"] = operation
	details["resource_type"] = resourceType
	details["resource_id"] = resourceID

	LogAction("crud_"+operation, c, details)
}

// LogAuth records a login or signup event.
func LogAuth(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["auth_action"] = action

	LogAction("auth_"+action, c, details)
}
