package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/ripplekit/ripple/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const arityCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the fixed-arity lift wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest arity to generate",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for lift started")
	defer func() {
		log.Printf("Codegen for lift finished in %v", time.Since(start))
	}()

	arityCount := cmd.Uint(arityCountKey)

	contents := templates.LiftGen(int(arityCount))
	if err := os.WriteFile("lift/lift.go", []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
