package route

import (
	"errors"

	"summithub-profiles/internal/profile"
	"summithub-profiles/internal/shared"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		routes, err := svc.List(c.Context())
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(routes)
	})

	r.Get("/:name", func(c *fiber.Ctx) error {
		route, err := svc.Route(c.Context(), routeName(c))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(route)
	})

	r.Get("/:name/interpolated", func(c *fiber.Ctx) error {
		points, err := svc.Interpolated(c.Context(), routeName(c))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(points)
	})

	r.Get("/:name/chart", func(c *fiber.Ctx) error {
		chart, err := svc.Chart(c.Context(), routeName(c))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(chart)
	})

	r.Get("/:name/gradient", func(c *fiber.Ctx) error {
		stats, err := svc.Gradient(c.Context(), routeName(c))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(stats)
	})

	r.Get("/:name/markdown", func(c *fiber.Ctx) error {
		md, err := svc.Markdown(c.Context(), routeName(c))
		if err != nil {
			return toHTTPError(err)
		}
		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
		return c.SendString(md)
	})

	r.Put("/:name", authMiddleware, func(c *fiber.Ctx) error {
		var req profile.Route
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		req.Name = routeName(c)
		route, err := svc.Save(c.Context(), req)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(route)
	})

	r.Delete("/:name", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), routeName(c)); err != nil {
			return toHTTPError(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func routeName(c *fiber.Ctx) string {
	return shared.PathParam(c, "name")
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, profile.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, profile.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrReadOnly):
		return fiber.NewError(fiber.StatusNotImplemented, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
