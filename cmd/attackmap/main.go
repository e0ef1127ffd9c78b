package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"attackmap/internal/geo"
	"attackmap/internal/threat"
	"attackmap/internal/tui"
)

func main() {
	attacksPath := flag.String("attacks", "", "attack fixture JSON (default: embedded)")
	locationsPath := flag.String("locations", "", "location table, JSON or CSV (default: embedded)")
	mapPath := flag.String("map", "", "world outline GeoJSON (default: built-in coastline)")
	fps := flag.Int("fps", 30, "animation frame rate")
	flag.Parse()

	feed, err := threat.LoadFeed(*attacksPath, *locationsPath)
	if err != nil {
		log.Fatal(err)
	}
	world := geo.BuiltinWorld()
	if *mapPath != "" {
		if world, err = geo.LoadWorld(*mapPath); err != nil {
			log.Fatal(err)
		}
	}

	m := tui.New(feed, world, *fps)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
