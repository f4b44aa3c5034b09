package server

import (
	"errors"

	"wenda/internal/middleware"
	"wenda/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePage extracts the page query parameter, defaulting to the first page.
func parsePage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

// currentUserID returns the authenticated user's ID. Only valid on routes
// behind the auth middleware.
func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}

// respondError maps a service error to its HTTP response. Persistence
// failures surface as an opaque internal error while the cause goes to the
// structured log; everything else keeps its typed message.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	status := models.ErrorStatus(err)
	if status == fiber.StatusInternalServerError {
		if middleware.Logger != nil {
			middleware.Logger.ErrorContext(c.UserContext(), "Request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
		}
		return models.RespondWithError(c, status,
			&models.AppError{Code: "INTERNAL_ERROR", Message: "Internal server error"})
	}
	return models.RespondWithError(c, status, err)
}
