package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"traineeportal/cmd/mockapi/api"
	"traineeportal/cmd/mockapi/data"
	"traineeportal/pkg/constants"
)

func main() {
	run()
}

func run() {
	fmt.Printf("Trainee portal mock API -- v%s.%s.%s\n\n", constants.Version, runtime.GOOS, runtime.GOARCH)

	// Optional .env next to the binary; flags and env stay overridable.
	_ = godotenv.Load()

	var port int
	var seedPath string
	var logFile string
	flag.IntVar(&port, "port", envInt("PORT", 8080), "Define the port of the server")
	flag.StringVar(&seedPath, "seed", os.Getenv("SEED_FILE"), "Path to a YAML seed file (built-in fixtures when empty)")
	flag.StringVar(&logFile, "log-file", os.Getenv("LOG_FILE"), "Write logs to this file with rotation instead of stderr")
	flag.Parse()

	if logFile != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
		}, nil)))
	}

	set, err := data.Load(seedPath)
	if err != nil {
		fatal("failed to load fixtures: "+err.Error(), 1)
	}

	server := api.NewServer(set, port)

	fmt.Println("starting server at :" + strconv.Itoa(port))
	if err := server.Server.ListenAndServe(); err != nil {
		fatal("failed to start server: "+err.Error(), 1)
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func fatal(message string, exitCode int) {
	fmt.Fprintln(os.Stderr, message)
	os.Exit(exitCode)
}
