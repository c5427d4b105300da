package handler

import (
	"go-printpos-ws/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers to pull the authenticated user info set by the auth middleware

func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

func getRoleCode(c *fiber.Ctx) string {
	roleCode := c.Locals("user_role")
	if roleCode == nil {
		return ""
	}
	return roleCode.(string)
}

func getActor(c *fiber.Ctx) service.Actor {
	return service.Actor{
		UserID:   getUserID(c),
		Username: getUserName(c),
		RoleCode: getRoleCode(c),
	}
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
