// Command-line interface for the CareDesk clinical assistant
package main

import (
	"bufio"
	"caredesk/caredesk/config"
	"caredesk/caredesk/services/assistant"
	"caredesk/caredesk/services/search"
	"caredesk/caredesk/services/suggest"
	"caredesk/caredesk/utils/color"
	"caredesk/caredesk/utils/logging"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	args := os.Args[1:]
	if len(args) < 1 || args[0] != "search" {
		fmt.Println("CareDesk CLI usage:")
		fmt.Println("  caredesk search   # Interactive clinical-assistant search")
		os.Exit(1)
	}

	doctorName := os.Getenv("CAREDESK_DOCTOR")
	specialty := os.Getenv("CAREDESK_SPECIALTY")

	session := search.NewSession()
	session.SetContext(search.Context{DoctorName: doctorName, Specialty: specialty})
	coord := search.NewCoordinator(session, assistant.NewClient(cfg.AgentURL))

	logging.AppLogger.Info("CareDesk CLI session started",
		zap.String("agent_url", cfg.AgentURL))

	fmt.Println(color.ColorInfo("CareDesk clinical assistant. Ask about guidelines, diagnoses, treatments, and drug safety."))
	fmt.Println(color.ColorInfo("Try one of:"))
	for _, s := range suggest.Shuffle(suggest.GeneralSuggestions())[:3] {
		fmt.Println("  - " + s)
	}
	fmt.Println("Type your question, 'new' for a new search, or 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.ColorPrompt("caredesk> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if line == "new" {
			coord.Reset()
			fmt.Println(color.ColorInfo("Started a new search."))
			continue
		}

		turn, err := coord.Submit(context.Background(), line)
		if err != nil {
			if errors.Is(err, search.ErrEmptyQuery) {
				continue
			}
			fmt.Println(color.ColorError("error: " + err.Error()))
			continue
		}
		fmt.Println(color.ColorAnswer(turn.Answer))
		fmt.Println()
	}
}
