package web

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/scrydb/scrydb/internal/analyzer"
	"github.com/scrydb/scrydb/internal/db/controller/card"
	"github.com/scrydb/scrydb/internal/db/controller/ruling"
)

const (
	defaultRecommendLimit = 10
	defaultListLimit      = 100
)

func (s *Service) handleListCards(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)
	offset := c.QueryInt("offset", 0)

	cards, err := card.List(s.db, limit, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(cards)
}

func (s *Service) handleHealthz(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("ok")
}

func (s *Service) handleStatus(c *fiber.Ctx) error {
	cards, err := card.Count(s.db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	proxied, err := card.CountProxied(s.db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	rulings, err := ruling.Count(s.db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	status := fiber.Map{
		"cards":   cards,
		"proxied": proxied,
		"rulings": rulings,
	}
	if s.sync != nil {
		status["sync"] = s.sync.Status()
	}

	return c.JSON(status)
}

// cardName decodes the :name route parameter; card names carry spaces and
// commas, so clients escape them.
func cardName(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "malformed card name")
	}

	return name, nil
}

func (s *Service) handleGetCard(c *fiber.Ctx) error {
	name, err := cardName(c)
	if err != nil {
		return err
	}

	row, err := card.Get(s.db, name)
	if err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "card not found")
		}

		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(row)
}

type setDeckRequest struct {
	Deck string `json:"deck"`
}

func (s *Service) handleSetDeck(c *fiber.Ctx) error {
	name, err := cardName(c)
	if err != nil {
		return err
	}

	var req setDeckRequest
	if err = c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	row, err := card.SetDeck(s.db, name, req.Deck)
	if err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "card not found")
		}

		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(row)
}

func (s *Service) handleRulings(c *fiber.Ctx) error {
	rulings, err := ruling.ByOracleID(s.db, c.Params("oracleid"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(rulings)
}

func (s *Service) handleRecommended(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultRecommendLimit)

	scores, err := analyzer.Recommend(s.db, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(scores)
}

func (s *Service) handleSync(c *fiber.Ctx) error {
	if s.sync == nil {
		return fiber.NewError(fiber.StatusNotImplemented, "sync not available")
	}

	if !s.sync.Trigger() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"started": false,
			"reason":  "sync already running",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"started": true})
}
