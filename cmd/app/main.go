package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"rugcheck/internal/di"
	"rugcheck/internal/reporter"
	"rugcheck/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	serve := flag.Bool("serve", false, "run the HTTP API server")
	chain := flag.String("chain", "eth", "chain for a one-shot scan")
	address := flag.String("address", "", "token address for a one-shot scan")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if *serve {
		app, err := di.InitializeApp(cfg)
		if err != nil {
			log.Fatalf("app initialization failed: %v", err)
		}
		if err := app.Run(); err != nil {
			log.Printf("app error: %v", err)
			os.Exit(1)
		}
		return
	}

	if *address == "" {
		flag.Usage()
		os.Exit(2)
	}

	scanner, err := di.InitializeScanner(cfg)
	if err != nil {
		log.Fatalf("scanner initialization failed: %v", err)
	}

	report, err := scanner.Scan(context.Background(), *chain, *address)
	if err != nil {
		log.Fatalf("scan failed: %v", err)
	}
	fmt.Print(reporter.Console(report))
}
