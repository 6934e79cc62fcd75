package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /api/login
// @Summary User login
// @Description Authenticate a seeded user and return their bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Login credentials"
// @Success 200 {object} object{access_token=string,token_type=string,user=identity.User}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and password are required"))
	}

	user, err := s.identity.Verify(req.Username, req.Password)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	// The token is the username itself; clients send it back verbatim as a
	// bearer credential.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": user.Username,
		"token_type":   "bearer",
		"user":         user,
	})
}
