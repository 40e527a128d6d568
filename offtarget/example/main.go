package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aglyzov/go-seqtrie/offtarget"
	"github.com/aglyzov/go-seqtrie/seq"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	refs := []seq.Sequence{
		seq.MustNew("cgatggaatggtagtcagacgcgcccaggcccg", "test1"),
		seq.MustNew("tgtccctccaatagggaaatttccc", "test2"),
		seq.MustNew("acatcgatgtaagtgcttcta", "test3"),
	}

	query := seq.MustNew("tgtagctagtcca", "query")

	hits, err := offtarget.Find([]offtarget.Query{{Seq: query}}, 4, refs,
		offtarget.WithReverseComplement())
	if err != nil {
		logger.Error("find", "err", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%d bases, GC %.2f)\n", query.Name(), query.Len(), query.GCContent())
	for _, h := range hits[0] {
		fmt.Printf("  %2d %s -> %v\n", h.Index, query.Slice(h.Index, h.Index+4), h.Targets)
	}

	println("------")

	candidates, err := offtarget.Novel(7, "tgc", "", 1, refs,
		offtarget.WithReverseComplement(),
		offtarget.WithWindowLength(3),
		offtarget.WithLogger(logger),
	)
	if err != nil {
		logger.Error("novel", "err", err)
		os.Exit(1)
	}

	n := 0
	for c := range candidates {
		fmt.Printf("%s %v\n", c.Sequence, c.OffTargets)
		if n++; n == 5 {
			break
		}
	}
}
