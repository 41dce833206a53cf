package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ite2blog/app/config"
	"ite2blog/app/controllers"
	"ite2blog/service"
)

const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("ite2blog version %s\n", CliVersion)
	case "serve":
		if err := serve(os.Args[2:]); err != nil {
			fmt.Printf("Error: %v\n", err)
			exit(1)
			return
		}
	case "routes":
		printRoutes()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: ite2blog <command> [options]
Commands:
  help                     Display this help message.
  version                  Show version information.
  serve [--config <path>]  Run the blog API server (PORT, STORE_DRIVER, STORE_SEED, LOG_LEVEL, LOG_FORMAT).
  routes                   List the API endpoints.
`
	fmt.Println(helpText)
}

func printRoutes() {
	for _, e := range controllers.Endpoints {
		fmt.Printf("%-7s %-26s %s\n", e.Method, e.Path, e.Description)
	}
}

// serve runs the HTTP server until SIGINT or SIGTERM.
func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	configPath := fs.String("config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	app, err := service.NewApp(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}
