package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	gq "nickandperla.net/genetic_queens"
)

var toolConfigPath *string = flag.String("config", "", "Optional TOML config for population tuning and the run archive")

func usage() {
	fmt.Println("Takes one or two argument(s): the board size and random seed.")
	os.Exit(1)
}

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 && len(args) != 2 {
		usage()
	}

	boardSize, err := strconv.Atoi(args[0])
	if err != nil {
		usage()
	}

	if boardSize < gq.MinBoardSize {
		fmt.Printf("Board size must be %d or greater!\n", gq.MinBoardSize)
		os.Exit(1)
	}

	var seed int64
	if len(args) == 2 {
		seed, err = strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			usage()
		}
	}

	toolConfig, err := gq.LoadToolConfig(*toolConfigPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	popConfig := toolConfig.Population
	if popConfig == nil {
		popConfig = &gq.PopulationConfig{}
	}
	popConfig.BoardSize = boardSize

	pop, err := gq.NewPopulationFromConfig(popConfig, seed)
	if err != nil {
		log.Fatalf("Failed to create population: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome := pop.Run(ctx)
	if outcome == gq.OutcomeInterrupted {
		fmt.Println("You pressed Ctrl+C!")
	}

	printReport(pop)

	if toolConfig.Persistence != nil {
		persist, err := gq.NewPersistence(toolConfig.Persistence)
		if err != nil {
			log.Fatalf("Failed to create or initialize Persistence: %v", err)
		}
		defer persist.Shutdown()

		if err := persist.SaveRun(gq.NewRun(pop, outcome)); err != nil {
			log.Fatalf("Failed to archive run: %v", err)
		}
	}
}

func printReport(pop *gq.Population) {
	best := pop.Best()
	fmt.Printf("Iteration: \t%d\n", pop.Iteration)
	fmt.Printf("Random Seed:\t%d\n", pop.Seed)
	fmt.Print(best.Render())
	fmt.Printf("\nValid queens: \t%d\n", best.ValidQueens)
}
