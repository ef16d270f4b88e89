package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// terminalView renders runner frames with a status header
type terminalView struct {
	renderer  *model.TerminalRenderer
	config    utils.Config
	lastStats utils.Stats
}

func newTerminalView(renderer *model.TerminalRenderer, config utils.Config) *terminalView {
	return &terminalView{renderer: renderer, config: config}
}

// Render clears the screen and draws the status lines and the board
func (v *terminalView) Render(frame game.Frame) error {
	v.lastStats = frame.Stats
	if err := v.renderer.Clear(); err != nil {
		return err
	}
	displayGameStatus(frame)
	return v.renderer.Display(frame.Width, frame.Height, frame.Live)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, runner *game.Runner) {
	width, height := runner.Size()
	fmt.Printf("Grid: %dx%d | Pattern: %s | Initial living cells: %d\n",
		width, height, config.Pattern, len(runner.LiveCells()))
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(frame game.Frame) {
	living := len(frame.Live)
	density := utils.Density(living, frame.Width, frame.Height)

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		frame.Generation, living, density, frame.Status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		frame.Stats.GenerationsPerSecond, frame.Stats.AveragePopulation, time.Since(frame.Stats.StartTime).Seconds())

	// Show time since last restart
	if frame.Generation > frame.LastRestartGen {
		fmt.Printf("Generations since restart: %d\n", frame.Generation-frame.LastRestartGen)
	}
	fmt.Println()
}

// displayFinalStats prints the summary on shutdown
func displayFinalStats(stats utils.Stats, generation int) {
	fmt.Println("\n🛑 Shutting down gracefully...")
	if stats.StartTime.IsZero() {
		return
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generation, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
