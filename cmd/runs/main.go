package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	gq "nickandperla.net/genetic_queens"

	"gorm.io/gorm"
)

var toolConfigPath *string = flag.String("config", "./config.toml", "The TOML config naming the run archive. Defaults to './config.toml'")
var limit *int = flag.Int("limit", 20, "Maximum number of runs to list")
var boardSize *int = flag.Int("board", 0, "Show only the best archived run for this board size")

func main() {
	flag.Parse()

	toolConfig, err := gq.LoadToolConfig(*toolConfigPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if toolConfig.Persistence == nil {
		log.Fatalf("Config %s has no [persistence] section; nothing to read", *toolConfigPath)
	}

	persist, err := gq.NewPersistence(toolConfig.Persistence)
	if err != nil {
		log.Fatalf("Failed to create or initialize Persistence: %v", err)
	}
	defer persist.Shutdown()

	if *boardSize > 0 {
		run, err := persist.BestRun(*boardSize)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("No archived runs for board size %d\n", *boardSize)
			return
		}
		if err != nil {
			log.Fatalf("Unable to query best run: %v", err)
		}
		printRun(run)
		return
	}

	runs, err := persist.RecentRuns(*limit)
	if err != nil {
		log.Fatalf("Unable to query runs: %v", err)
	}

	for i := range runs {
		printRun(&runs[i])
	}
}

func printRun(run *gq.Run) {
	fmt.Printf("#%d\t%s\tn=%d seed=%d iterations=%d valid=%d/%d\t%s\n",
		run.ID, run.Outcome, run.BoardSize, run.Seed, run.Iterations,
		run.ValidQueens, run.BoardSize, run.CreatedAt.Format("2006-01-02 15:04:05"))
	if layout := renderLayout(run); layout != "" {
		fmt.Print(layout)
	}
}

// renderLayout reconstructs the stored board so the archive is readable
// without replaying the run.
func renderLayout(run *gq.Run) string {
	if run.Layout == "" {
		return ""
	}
	fields := strings.Split(run.Layout, ",")
	positions := make([]int, 0, len(fields))
	for _, f := range fields {
		col, err := strconv.Atoi(f)
		if err != nil {
			return ""
		}
		positions = append(positions, col)
	}
	board := &gq.Board{Size: run.BoardSize, Positions: positions}
	board.UpdateValidQueens()
	return board.Render()
}
