// Command web runs the real estate analytics HTTP API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/app"
)

func main() {
	application, err := app.NewApplication(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		application.Logger.Error("application exited with error", "error", err)
		os.Exit(1)
	}
}
