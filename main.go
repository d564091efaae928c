package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/infrastruture/console"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/sirupsen/logrus"
)

// Global variables for dependencies
var (
	logOutput   io.Writer
	appLogger   *logrus.Logger
	gameLogger  *logrus.Logger
	randSource  *rand.Rand
	gameConsole *console.Console
	session     *game.Session
)

func initLogOutput() {
	if config.Envs.LogFile == "" {
		logOutput = os.Stderr
		return
	}

	f, err := os.OpenFile(config.Envs.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [ERROR] Opening log file: %v\n", err)
		os.Exit(1)
	}
	logOutput = f
}

func initLoggers() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, logOutput, config.Envs.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [ERROR] Creating app logger: %v\n", err)
		os.Exit(1)
	}

	gameLogger, err = logger.New("GAME", config.ColorCyan, logOutput, config.Envs.LogLevel)
	if err != nil {
		appLogger.Errorf("Creating game logger: %v", err)
		os.Exit(1)
	}
}

func initRandSource() {
	seed := config.Envs.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	randSource = rand.New(rand.NewSource(seed))
	appLogger.WithField("seed", seed).Info("Random source initialized")
}

func initConsole() {
	gameConsole = console.New(os.Stdin, os.Stdout)
	appLogger.Info("Console initialized")
}

func initSession() {
	var err error
	session, err = game.New(gameConsole, randSource,
		game.WithGoalBound(config.Envs.GoalBound),
		game.WithLogger(gameLogger),
	)
	if err != nil {
		appLogger.Errorf("Creating game session: %v", err)
		os.Exit(1)
	}
	appLogger.WithField("session", session.ID.String()).Info("Game session initialized")
}

func main() {
	initLogOutput()
	initLoggers()
	initRandSource()
	initConsole()
	initSession()

	if err := session.Run(); err != nil {
		appLogger.Errorf("Running game session: %v", err)
		os.Exit(1)
	}
}
