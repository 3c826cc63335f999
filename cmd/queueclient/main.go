// queueclient is the terminal client for the queue reporter: it shows
// the live report list, refreshed automatically, and submits new
// reports from a small form.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Mohdivswa-71124/Queue-Reporter/client"
	"github.com/Mohdivswa-71124/Queue-Reporter/config"
	"github.com/Mohdivswa-71124/Queue-Reporter/geocode"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Best effort; the client works off plain environment variables.
	_ = godotenv.Load()

	cfg := config.LoadClient()
	model := client.New(cfg, client.NewAPI(cfg.ServerURL), geocode.New(cfg.GeocoderURL))

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
