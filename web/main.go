package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/web/server"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Optional .env file with PT_* settings")
	port := flag.Int("port", 0, "Port to serve on (0 = PT_PORT or 8080)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	// Create and start web server
	webServer := server.NewServer(cfg.Port)

	log.Printf("Path Tracer Web Server")
	log.Printf("Visit http://localhost:%d/api/render?scene=default to render", cfg.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
