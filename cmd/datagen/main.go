package main

import (
	"flag"
	"log"
	"math/rand"

	"main/internal/gen"
	"main/internal/ops"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	outDir := flag.String("out", "", "Output directory (default: config dataDir)")
	seed := flag.Int64("seed", 0, "Random seed (overrides config)")
	tradesPerBond := flag.Int("trades-per-bond", 0, "Trades per bond (0=default)")
	bookRounds := flag.Int("book-rounds", 0, "Order book snapshots per bond (0=default)")
	priceRounds := flag.Int("price-rounds", 0, "Price quotes per bond (0=default)")
	inquiryRounds := flag.Int("inquiry-rounds", 0, "Inquiries per bond (0=default)")
	flag.Parse()

	loaded, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *outDir == "" {
		*outDir = loaded.DataDir
	}
	if *seed != 0 {
		loaded.Seed = *seed
	}

	generator, err := gen.NewGenerator(loaded.Registry, rand.New(rand.NewSource(loaded.Seed)))
	if err != nil {
		log.Fatalf("generator init failed: %v", err)
	}
	if *tradesPerBond > 0 {
		generator.TradesPerBond = *tradesPerBond
	}
	if *bookRounds > 0 {
		generator.BookRounds = *bookRounds
	}
	if *priceRounds > 0 {
		generator.PriceRounds = *priceRounds
	}
	if *inquiryRounds > 0 {
		generator.InquiryRounds = *inquiryRounds
	}

	if err := generator.WriteAll(*outDir); err != nil {
		log.Fatalf("input generation failed: %v", err)
	}
	log.Printf("wrote trades, inquiries, marketdata and prices to %s", *outDir)
}
