package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/config"
	"github.com/colecostanza/Anki-Automated-Quizzes/internal/export"
	"github.com/colecostanza/Anki-Automated-Quizzes/internal/loader"
	"github.com/colecostanza/Anki-Automated-Quizzes/internal/repository"
	"github.com/colecostanza/Anki-Automated-Quizzes/internal/service"
	"github.com/colecostanza/Anki-Automated-Quizzes/internal/storage/cache"
	"github.com/colecostanza/Anki-Automated-Quizzes/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(database)
	deckLoader := loader.NewFileLoader(cfg.Deck.Path, logger)
	services := service.InitServices(deckLoader, repos, logger)
	sessions := cache.NewCache()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "clear-history":
			if err := services.ResetHistory(ctx, cfg.Deck.Name); err != nil {
				logger.Fatal("failed to clear history", zap.Error(err))
			}
			fmt.Println("Quiz history cleared.")
			return
		case "stats":
			stats, err := services.Stats(ctx, cfg.Deck.Name)
			if err != nil {
				logger.Fatal("failed to get stats", zap.Error(err))
			}
			fmt.Println(stats)
			return
		}
	}

	runQuiz(ctx, cfg, services, sessions, logger)
}

func runQuiz(ctx context.Context, cfg *config.Config, services *service.Service, sessions *cache.Cache, logger *zap.Logger) {
	session, err := services.Generate(ctx, cfg.Deck.Name, cfg.Quiz)
	if err != nil {
		logger.Error("quiz generation failed", zap.Error(err))
		fmt.Println("Could not build quiz: " + err.Error())
		return
	}

	sessions.SetSession(session)

	answers := make(map[int]int)
	scanner := bufio.NewScanner(os.Stdin)

	qNum := 0
	for pageNo, page := range session.Pages {
		fmt.Printf("\n-- Page %d/%d --\n", pageNo+1, len(session.Pages))
		for _, q := range page {
			fmt.Printf("\nQ%d: %s\n", qNum+1, service.StripHTML(q.Prompt))
			for i, choice := range q.Choices {
				fmt.Printf("  %d) %s\n", i+1, service.StripHTML(choice))
			}
			answers[qNum] = readChoice(scanner, len(q.Choices))
			qNum++
		}
	}

	stored, exists := sessions.GetSession(session.ID)
	if !exists {
		logger.Error("session missing from cache", zap.String("session_id", session.ID))
		return
	}
	sessions.DeleteSession(session.ID)

	result := services.Grade(ctx, stored, answers)

	fmt.Printf("\nQuiz complete! Score: %d/%d (%d%%)\n", result.Right, result.Total, result.Percent())

	if err := services.Commit(ctx, stored); err != nil {
		fmt.Println("Warning: " + err.Error())
	}

	if stats, err := services.Stats(ctx, session.Deck); err == nil {
		fmt.Println("\n" + stats)
	}

	if cfg.Export.HTMLPath != "" {
		if err := export.SaveHTML(cfg.Export.HTMLPath, result); err != nil {
			logger.Warn("html export failed", zap.Error(err))
		} else {
			fmt.Println("Results exported to " + cfg.Export.HTMLPath)
		}
	}

	if cfg.Export.PDFPath != "" {
		if err := export.SavePDF(cfg.Export.PDFPath, result); err != nil {
			logger.Warn("pdf export failed", zap.Error(err))
		} else {
			fmt.Println("Results exported to " + cfg.Export.PDFPath)
		}
	}
}

func readChoice(scanner *bufio.Scanner, max int) int {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return -1
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 1 && n <= max {
			return n - 1
		}
		fmt.Printf("Enter a number between 1 and %d\n", max)
	}
}
