package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/modelforge/scalemate/pkg/config"
	"github.com/modelforge/scalemate/pkg/ui"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	themeFlag := flag.String("theme", "", "Override theme for this session (dark|light)")
	flag.Parse()

	if *help {
		fmt.Println("Usage: sm [options]")
		fmt.Println("\nA scale conversion calculator for model makers.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("sm version 0.1.0")
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "sm is an interactive calculator and needs a terminal")
		os.Exit(1)
	}

	// Saved preference first; -theme overrides for this session only.
	themeName := config.Load().Theme
	if config.ValidTheme(*themeFlag) {
		themeName = *themeFlag
	}

	m := ui.NewModel(ui.ThemeByName(themeName, nil))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running scalemate: %v\n", err)
		os.Exit(1)
	}
}
