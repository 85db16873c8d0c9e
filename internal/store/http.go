package store

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mcproperty/invoicing/pkg/logger"
)

// RegisterRoutes mounts the generic REST surface on app:
//
//	GET    /:collection        read collection
//	POST   /:collection        create, store assigns id
//	GET    /:collection/:id    read single record
//	PUT    /:collection/:id    full replace
//	PATCH  /:collection/:id    shallow merge
//	DELETE /:collection/:id    remove
func RegisterRoutes(app *fiber.App, s *Store, log *logger.Logger) {
	app.Get("/:collection", func(c *fiber.Ctx) error {
		docs, ok := s.List(c.Params("collection"))
		if !ok {
			return fiber.ErrNotFound
		}
		return c.JSON(docs)
	})

	app.Post("/:collection", func(c *fiber.Ctx) error {
		name := c.Params("collection")
		if !s.Has(name) {
			return fiber.ErrNotFound
		}
		var doc Document
		if err := c.BodyParser(&doc); err != nil {
			return fiber.ErrBadRequest
		}
		created, err := s.Create(name, doc)
		if errors.Is(err, ErrIDConflict) {
			return fiber.ErrConflict
		}
		if err != nil {
			log.Error().Err(err).Str("collection", name).Msg("create failed")
			return fiber.ErrInternalServerError
		}
		log.Debug().Str("collection", name).Str("id", created["id"].(string)).Msg("record created")
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	app.Get("/:collection/:id", func(c *fiber.Ctx) error {
		doc, ok := s.Get(c.Params("collection"), c.Params("id"))
		if !ok {
			return fiber.ErrNotFound
		}
		return c.JSON(doc)
	})

	app.Put("/:collection/:id", func(c *fiber.Ctx) error {
		var doc Document
		if err := c.BodyParser(&doc); err != nil {
			return fiber.ErrBadRequest
		}
		replaced, ok, err := s.Replace(c.Params("collection"), c.Params("id"), doc)
		if err != nil {
			log.Error().Err(err).Msg("replace failed")
			return fiber.ErrInternalServerError
		}
		if !ok {
			return fiber.ErrNotFound
		}
		return c.JSON(replaced)
	})

	app.Patch("/:collection/:id", func(c *fiber.Ctx) error {
		var fields Document
		if err := c.BodyParser(&fields); err != nil {
			return fiber.ErrBadRequest
		}
		merged, ok, err := s.Merge(c.Params("collection"), c.Params("id"), fields)
		if err != nil {
			log.Error().Err(err).Msg("merge failed")
			return fiber.ErrInternalServerError
		}
		if !ok {
			return fiber.ErrNotFound
		}
		return c.JSON(merged)
	})

	app.Delete("/:collection/:id", func(c *fiber.Ctx) error {
		ok, err := s.Delete(c.Params("collection"), c.Params("id"))
		if err != nil {
			log.Error().Err(err).Msg("delete failed")
			return fiber.ErrInternalServerError
		}
		if !ok {
			return fiber.ErrNotFound
		}
		return c.SendStatus(fiber.StatusOK)
	})
}
