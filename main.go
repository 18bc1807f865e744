package main

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"BIPTree/script"
)

func main() {

	// grid size is hard coded
	// a `dims` command replaces the tree
	palette, err := script.NewPalette(nil)
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	runner, err := script.NewRunner([]int{8, 8}, palette, os.Stdout, logger)
	if err != nil {
		log.Fatal(err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	// REPL
	for {
		fmt.Print("grid> ")

		if !scanner.Scan() { // Ctrl+D pressed
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "exit") {
			break
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		op, err := script.ParseLine(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if err := runner.Apply(op); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}
