/*
Package main implements the swypath server and commandline interface.

swypath predicts intended words from swipe-gesture traces over a keyboard
layout, scoring dictionary entries against the trace with dynamic time
warping. It can run as a msgpack IPC server for editor/app integrations or
as a standalone CLI for interactive testing.

# Server mode

The server loads one embedded dictionary asset per language on first use
and answers prediction requests over stdin/stdout.

# CLI mode

The CLI provides an interactive shell for testing the prediction engine
by hand.

# Config

Runtime configuration is managed via a config.toml file covering predictor
tunables and server limits. A default configuration is created
automatically if one does not exist.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kaelnor/swypath/internal/assets"
	"github.com/kaelnor/swypath/internal/cli"
	"github.com/kaelnor/swypath/internal/logger"
	"github.com/kaelnor/swypath/pkg/config"
	"github.com/kaelnor/swypath/pkg/dictionary"
	"github.com/kaelnor/swypath/pkg/predictor"
	"github.com/kaelnor/swypath/pkg/server"
)

const (
	Version = "0.1.0-beta"
	AppName = "swypath"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI; it does not
// implement prediction logic itself and only manages startup flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "config.toml", "Path to config.toml file")
	lang := flag.String("lang", "en", "Language code to load")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of predictions to return")

	flag.Parse()

	if *showVersion {
		verLog := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		verLog.SetStyles(styles)
		verLog.Print("")
		verLog.Print("[swypath] Predicts words from swipe-gesture traces")
		verLog.Print("", "version", Version)
		verLog.Print("")
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, err := config.InitConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	manager := dictionary.NewManager(assets.Lookup, nil)
	predictorCfg := appConfig.Predictor.Resolve()
	pred, err := predictor.New(manager, *lang, &predictorCfg)
	if err != nil {
		log.Fatalf("failed to load language %q: %v", *lang, err)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		repl := cli.NewRepl(pred, *limit)
		if err := repl.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	var serverLog *log.Logger
	if *debugMode {
		serverLog = logger.NewWithConfig("server", log.DebugLevel, true, true, log.TextFormatter)
	}
	srv := server.NewServer(pred, appConfig, *configFile, serverLog)
	showStartupInfo(*lang)

	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func showStartupInfo(lang string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println("  swypath  ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("language: ( %s )", lang)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
