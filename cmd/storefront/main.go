package main

import (
	"fmt"
	"log"
	"os"

	"github.com/buildmart/buildmart/internal/storefront/app"
	"github.com/buildmart/buildmart/internal/storefront/cli"
)

func main() {
	cfg, err := app.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer application.Close()

	if err := cli.NewRootCmd(application).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		application.Close()
		os.Exit(1)
	}
}
