package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aliics/bingo"
)

func main() {
	ctx := context.Background()
	cfg := bingo.DefaultConfig()

	db, err := bingo.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to %s: %v", cfg.Host, err)
	}
	defer db.Close()

	q := bingo.NewQuery(db,
		bingo.WithConfig(cfg),
		bingo.WithLogger(bingo.StdLogger{Logger: log.New(os.Stderr, "bingo: ", log.LstdFlags)}),
	)
	defer q.Close()

	result, err := q.Query(ctx, `SELECT "Hello World"`).
		Bind(ctx).
		Mode("fetch").
		Fetch(nil)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}

	out, err := result.Output().JSON()
	if err != nil {
		log.Fatalf("failed to encode rows: %v", err)
	}
	fmt.Println(out)
}
