package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ipenchev/modelbridge/internal/config"
	"github.com/ipenchev/modelbridge/internal/llm"
	"github.com/ipenchev/modelbridge/internal/setup"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	if len(os.Args) < 2 {
		log.Fatal().Msg("Usage: modelbridge <prompt>")
	}
	prompt := strings.Join(os.Args[1:], " ")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	completions, err := deps.LM.Generate(ctx, llm.Request{Prompt: prompt})
	if err != nil {
		log.Fatal().Err(err).Msg("Generation failed")
	}

	for _, completion := range completions {
		fmt.Println(completion)
	}
}
