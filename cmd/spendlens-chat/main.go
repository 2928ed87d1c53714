package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/spendlens/spendlens/internal/client"
	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/session"
	"github.com/spendlens/spendlens/internal/tui"
)

var (
	configPath = flag.String("config", "", "Path to config file")
	serverURL  = flag.String("server", "", "Analysis service base URL (overrides config)")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	baseURL := cfg.Client.BaseURL
	if *serverURL != "" {
		baseURL = *serverURL
	}

	// A TUI owns the terminal, so log to a file instead of stderr
	logger := zap.NewNop()
	if path := os.Getenv("SPENDLENS_CHAT_LOG"); path != "" {
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{path}
		if logger, err = zcfg.Build(); err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
	}
	defer logger.Sync()

	queryClient := client.New(baseURL, cfg.Client.Timeout, logger)
	store := session.NewStore(queryClient, logger)

	program := tea.NewProgram(tui.NewModel(store, queryClient), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Failed to run chat client: %v", err)
	}
}
