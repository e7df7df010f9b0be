// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	"github.com/guitarkeep/hub/internal/config"
	"github.com/guitarkeep/hub/internal/server"
	nuts "github.com/vaudience/go-nuts"
)

// @title Guitarkeep Hub API
// @version 1.0
// @description Read-only queries over environmental sensor readings with comfort tips.
// @BasePath /
func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting Guitarkeep Hub v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"   ______       _ __             __ ",
		"  / ____/_  __(_) /_____ ______/ /_____  ___  ____ ",
		" / / __/ / / / / __/ __ `/ ___/ //_/ _ \\/ _ \\/ __ \\",
		"/ /_/ / /_/ / / /_/ /_/ / /  / ,< /  __/  __/ /_/ /",
		"\\____/\\__,_/_/\\__/\\__,_/_/  /_/|_|\\___/\\___/ .___/ ",
		"                                         /_/       ",
		"..........................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
