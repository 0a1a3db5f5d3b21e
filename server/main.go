package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/meikuraledutech/tricklog"
	"github.com/meikuraledutech/tricklog/postgres"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":3000"
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		logger.Fatal("connect", zap.Error(err))
	}
	defer pool.Close()

	var store tricklog.Store = postgres.New(pool)

	app := fiber.New()

	app.Use(func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
		)
		return err
	})

	// ── Schema ────────────────────────────────────────────────────────
	app.Post("/schema", func(c fiber.Ctx) error {
		if err := store.CreateSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema created"})
	})

	app.Delete("/schema", func(c fiber.Ctx) error {
		if err := store.DropSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema dropped"})
	})

	// ── Trick catalog ─────────────────────────────────────────────────
	app.Post("/tricks", func(c fiber.Ctx) error {
		var t tricklog.Trick
		if err := c.Bind().JSON(&t); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id, err := store.CreateTrick(c.Context(), &t)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/tricks", func(c fiber.Ctx) error {
		tricks, err := store.ListTricks(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(tricks)
	})

	app.Get("/tricks/:id", func(c fiber.Ctx) error {
		t, err := store.GetTrick(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if t == nil {
			return c.Status(404).JSON(fiber.Map{"error": "trick not found"})
		}
		return c.JSON(t)
	})

	app.Put("/tricks/:id", func(c fiber.Ctx) error {
		var t tricklog.Trick
		if err := c.Bind().JSON(&t); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		t.ID = c.Params("id")
		err := store.UpdateTrick(c.Context(), &t)
		if errors.Is(err, tricklog.ErrTrickNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "trick not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Delete("/tricks/:id", func(c fiber.Ctx) error {
		if err := store.DeleteTrick(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	// ── User trick records ────────────────────────────────────────────
	app.Post("/user-tricks", func(c fiber.Ctx) error {
		var ut tricklog.UserTrick
		if err := c.Bind().JSON(&ut); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id, err := store.CreateUserTrick(c.Context(), &ut)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/user-tricks/:id", func(c fiber.Ctx) error {
		ut, err := store.GetUserTrick(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if ut == nil {
			return c.Status(404).JSON(fiber.Map{"error": "user trick not found"})
		}
		return c.JSON(ut)
	})

	app.Put("/user-tricks/:id", func(c fiber.Ctx) error {
		var ut tricklog.UserTrick
		if err := c.Bind().JSON(&ut); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		ut.ID = c.Params("id")
		err := store.UpdateUserTrick(c.Context(), &ut)
		if errors.Is(err, tricklog.ErrUserTrickNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "user trick not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Delete("/user-tricks/:id", func(c fiber.Ctx) error {
		if err := store.DeleteUserTrick(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Get("/users/:id/tricks", func(c fiber.Ctx) error {
		records, err := store.ListUserTricks(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(records)
	})

	// ── Combos ────────────────────────────────────────────────────────
	app.Post("/combos", func(c fiber.Ctx) error {
		var combo tricklog.Combo
		if err := c.Bind().JSON(&combo); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id, err := store.CreateCombo(c.Context(), &combo)
		if errors.Is(err, tricklog.ErrInvalidGraph) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/combos/:id", func(c fiber.Ctx) error {
		combo, err := store.GetCombo(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if combo == nil {
			return c.Status(404).JSON(fiber.Map{"error": "combo not found"})
		}
		return c.JSON(combo)
	})

	app.Put("/combos/:id", func(c fiber.Ctx) error {
		var combo tricklog.Combo
		if err := c.Bind().JSON(&combo); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		combo.ID = c.Params("id")
		err := store.UpdateCombo(c.Context(), &combo)
		if errors.Is(err, tricklog.ErrComboNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "combo not found"})
		}
		if errors.Is(err, tricklog.ErrInvalidGraph) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Delete("/combos/:id", func(c fiber.Ctx) error {
		if err := store.DeleteCombo(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Get("/users/:id/combos", func(c fiber.Ctx) error {
		combos, err := store.ListCombos(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(combos)
	})

	// ── Combo sequence (editable form) ────────────────────────────────
	app.Get("/combos/:id/sequence", func(c fiber.Ctx) error {
		combo, err := store.GetCombo(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if combo == nil {
			return c.Status(404).JSON(fiber.Map{"error": "combo not found"})
		}
		return c.JSON(tricklog.GraphToSequence(combo.Graph))
	})

	app.Put("/combos/:id/sequence", func(c fiber.Ctx) error {
		seq, err := tricklog.UnmarshalSequence(c.Body())
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		combo, err := store.GetCombo(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if combo == nil {
			return c.Status(404).JSON(fiber.Map{"error": "combo not found"})
		}
		combo.Graph = tricklog.SequenceToGraph(tricklog.Cleanup(seq))
		err = store.UpdateCombo(c.Context(), combo)
		if errors.Is(err, tricklog.ErrInvalidGraph) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(combo.Graph)
	})

	// ── Sessions ──────────────────────────────────────────────────────
	app.Post("/sessions", func(c fiber.Ctx) error {
		var sess tricklog.Session
		if err := c.Bind().JSON(&sess); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id, err := store.CreateSession(c.Context(), &sess)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/sessions/:id", func(c fiber.Ctx) error {
		sess, err := store.GetSession(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if sess == nil {
			return c.Status(404).JSON(fiber.Map{"error": "session not found"})
		}
		return c.JSON(sess)
	})

	app.Put("/sessions/:id", func(c fiber.Ctx) error {
		var sess tricklog.Session
		if err := c.Bind().JSON(&sess); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		sess.ID = c.Params("id")
		err := store.UpdateSession(c.Context(), &sess)
		if errors.Is(err, tricklog.ErrSessionNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "session not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Delete("/sessions/:id", func(c fiber.Ctx) error {
		if err := store.DeleteSession(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Get("/users/:id/sessions", func(c fiber.Ctx) error {
		sessions, err := store.ListSessions(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(sessions)
	})

	app.Get("/sessions/:id/logs", func(c fiber.Ctx) error {
		logs, err := store.ListSessionLogs(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(logs)
	})

	// ── Practice logs ─────────────────────────────────────────────────
	app.Post("/logs", func(c fiber.Ctx) error {
		var l tricklog.PracticeLog
		if err := c.Bind().JSON(&l); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id, err := store.CreateLog(c.Context(), &l)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/logs/:id", func(c fiber.Ctx) error {
		l, err := store.GetLog(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if l == nil {
			return c.Status(404).JSON(fiber.Map{"error": "log not found"})
		}
		return c.JSON(l)
	})

	app.Put("/logs/:id", func(c fiber.Ctx) error {
		var l tricklog.PracticeLog
		if err := c.Bind().JSON(&l); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		l.ID = c.Params("id")
		err := store.UpdateLog(c.Context(), &l)
		if errors.Is(err, tricklog.ErrLogNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "log not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Delete("/logs/:id", func(c fiber.Ctx) error {
		if err := store.DeleteLog(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Get("/users/:id/logs", func(c fiber.Ctx) error {
		logs, err := store.ListLogs(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(logs)
	})

	// ── Videos ────────────────────────────────────────────────────────
	app.Post("/videos", func(c fiber.Ctx) error {
		var v tricklog.Video
		if err := c.Bind().JSON(&v); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id, err := store.CreateVideo(c.Context(), &v)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/videos/:id", func(c fiber.Ctx) error {
		v, err := store.GetVideo(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if v == nil {
			return c.Status(404).JSON(fiber.Map{"error": "video not found"})
		}
		return c.JSON(v)
	})

	app.Put("/videos/:id", func(c fiber.Ctx) error {
		var v tricklog.Video
		if err := c.Bind().JSON(&v); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		v.ID = c.Params("id")
		err := store.UpdateVideo(c.Context(), &v)
		if errors.Is(err, tricklog.ErrVideoNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "video not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Delete("/videos/:id", func(c fiber.Ctx) error {
		if err := store.DeleteVideo(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Get("/users/:id/videos", func(c fiber.Ctx) error {
		videos, err := store.ListVideos(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(videos)
	})

	logger.Info("listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
}
