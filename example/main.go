package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meikuraledutech/tricklog"
	"github.com/meikuraledutech/tricklog/postgres"
)

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	// Wire up the postgres implementation behind the Store interface.
	var store tricklog.Store = postgres.New(pool)

	// 1. Create tables
	if err := store.CreateSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}
	fmt.Println("schema created")

	// ── Catalog ───────────────────────────────────────────────────────
	for _, name := range []string{"btwist", "cork", "gainer"} {
		if _, err := store.CreateTrick(ctx, &tricklog.Trick{ID: name, Name: name}); err != nil {
			log.Fatalf("create trick: %v", err)
		}
	}
	fmt.Println("catalog seeded")

	// ── Build a combo as an editable sequence ─────────────────────────
	seq := []tricklog.SequenceItem{
		tricklog.TrickItem{ID: "i1", TrickID: "btwist", LandingStance: "complete"},
		tricklog.ArrowItem{ID: "i2", TransitionID: "s/t"},
		tricklog.TrickItem{ID: "i3", TrickID: "cork"},
		tricklog.ArrowItem{ID: "i4", TransitionID: "round"},
		tricklog.TrickItem{ID: "i5", TrickID: "gainer", LandingStance: "mega"},
	}

	combo := &tricklog.Combo{
		UserID: "demo-user",
		Name:   "opener",
		Graph:  tricklog.SequenceToGraph(seq),
	}
	comboID, err := store.CreateCombo(ctx, combo)
	if err != nil {
		log.Fatalf("create combo: %v", err)
	}
	fmt.Println("combo created:")
	printJSON(combo.Graph)

	// ── Load it back and re-expand for editing ────────────────────────
	loaded, err := store.GetCombo(ctx, comboID)
	if err != nil {
		log.Fatalf("get combo: %v", err)
	}
	edit := tricklog.GraphToSequence(loaded.Graph)
	fmt.Printf("\neditable sequence (%d items):\n", len(edit))
	printJSON(edit)

	// ── Edit: drop the middle trick, then save ────────────────────────
	edit = tricklog.RemoveItem(edit, 2)
	loaded.Graph = tricklog.SequenceToGraph(tricklog.Cleanup(edit))
	if err := store.UpdateCombo(ctx, loaded); err != nil {
		log.Fatalf("update combo: %v", err)
	}
	fmt.Println("\nafter removing the middle trick:")
	printJSON(loaded.Graph)

	// ── Log some practice against the combo ───────────────────────────
	sessionID, err := store.CreateSession(ctx, &tricklog.Session{
		UserID:   "demo-user",
		Location: "gym",
	})
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	if _, err := store.CreateLog(ctx, &tricklog.PracticeLog{
		UserID:    "demo-user",
		SessionID: sessionID,
		ComboID:   comboID,
		Attempts:  5,
		Lands:     2,
	}); err != nil {
		log.Fatalf("create log: %v", err)
	}
	logs, err := store.ListSessionLogs(ctx, sessionID)
	if err != nil {
		log.Fatalf("list logs: %v", err)
	}
	fmt.Printf("\nsession logs (%d):\n", len(logs))
	printJSON(logs)

	// ── Cleanup ───────────────────────────────────────────────────────
	if err := store.DropSchema(ctx); err != nil {
		log.Fatalf("drop: %v", err)
	}
	fmt.Println("\nschema dropped")
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
