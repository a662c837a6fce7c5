package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/pkg"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/engine"
	"github.com/DedS3t/monopoly-engine/platform/logging"
	"github.com/DedS3t/monopoly-engine/platform/persist"
	"github.com/DedS3t/monopoly-engine/platform/registry"
)

// Matches is the shared live-match registry, wired in main.
var Matches *registry.Registry

func CreateMatch(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	dto := new(models.MatchCreateDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	id := pkg.RandString(8)
	if _, err := Matches.Create(id, dto.Players, dto.Seed); err != nil {
		if errors.Is(err, engine.ErrPlayerCount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		logging.Get().WithError(err).Error("failed creating match")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	match := &models.Match{
		Id:      id,
		Name:    dto.Name,
		Status:  "in progress",
		Players: dto.Players,
		Seed:    dto.Seed,
	}
	if _, err := db.Model(match).Insert(); err != nil {
		logging.Get().WithError(err).Error("failed storing match")
		Matches.Remove(id)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"id": id})
}

func matchFromQuery(c *fiber.Ctx) (*engine.Game, string, error) {
	id := c.Query("id")
	g, err := Matches.Get(id)
	return g, id, err
}

func GetMatchState(c *fiber.Ctx) error {
	g, _, err := matchFromQuery(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	cur := g.CurrentPlayer()
	players := make([]models.PlayerDto, 0, g.NumPlayers())
	for _, p := range g.Players() {
		players = append(players, models.PlayerDto{
			Seat:     p.ID,
			Balance:  p.Balance,
			Pos:      p.Pos,
			Active:   p.Active,
			Jail:     p.InJail,
			JailCard: p.JailFreeCard,
			Cards:    g.HeldCards(p.ID),
			Current:  p.ID == cur,
		})
	}

	owners := make(map[int]int)
	for _, a := range g.Board().Assets() {
		if a.Owned() {
			owners[a.Pos()] = a.Owner()
		}
	}
	return c.JSON(fiber.Map{
		"players":  players,
		"owners":   owners,
		"current":  cur,
		"finished": g.Finished(),
	})
}

func GetMatchRanking(c *fiber.Ctx) error {
	g, _, err := matchFromQuery(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	standings := make([]models.StandingDto, 0, g.NumPlayers())
	for i, row := range g.Ranking() {
		standings = append(standings, models.StandingDto{
			Seat:    row.Player,
			Rank:    i + 1,
			Capital: row.Capital,
			Balance: row.Balance,
		})
	}
	return c.JSON(standings)
}

// SaveMatch exports the live engine state and stores the key-value
// snapshot document in Redis.
func SaveMatch(c *fiber.Ctx) error {
	g, id, err := matchFromQuery(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	conn, err := cache.CreateRedisConnection()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	defer conn.Close()

	doc := persist.Encode(g.Export())
	if err := cache.SaveSnapshot(id, doc, &conn); err != nil {
		logging.Get().WithError(err).Error("failed saving snapshot")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}

// LoadMatch restores a match from its saved snapshot, reviving the
// engine instance when the server was restarted in between.
func LoadMatch(c *fiber.Ctx) error {
	id := c.Query("id")

	conn, err := cache.CreateRedisConnection()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	defer conn.Close()

	doc, err := cache.LoadSnapshot(id, &conn)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	snap, err := persist.Decode(doc)
	if err != nil {
		logging.Get().WithError(err).Error("corrupt snapshot document")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	g, err := Matches.Get(id)
	if err != nil {
		if g, err = Matches.Create(id, len(snap.Players), 0); err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
	}
	if err := g.Import(snap); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusOK)
}

// FinishMatch ends a match on request and writes the final ranking to
// Postgres.
func FinishMatch(c *fiber.Ctx) error {
	g, id, err := matchFromQuery(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	g.Finish()

	db := database.PostgreSQLConnection()
	defer db.Close()

	for i, row := range g.Ranking() {
		result := &models.MatchResult{
			Id:      pkg.RandString(12),
			MatchId: id,
			Seat:    row.Player,
			Rank:    i + 1,
			Capital: row.Capital,
			Balance: row.Balance,
		}
		if _, err := db.Model(result).Insert(); err != nil {
			logging.Get().WithError(err).Error("failed storing match result")
		}
	}

	match := &models.Match{Id: id}
	if _, err := db.Model(match).WherePK().Set("status = ?", "finished").Update(); err != nil {
		logging.Get().WithError(err).Error("failed updating match status")
	}
	Matches.Remove(id)
	return c.JSON(fiber.Map{"winner": g.Winner()})
}
