package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-sphere-pathtracer/web/server"
)

func main() {
	config := server.DefaultConfig()

	// Parse command line flags
	flag.IntVar(&config.Port, "port", config.Port, "Port to serve on")
	flag.IntVar(&config.CacheSize, "cache", config.CacheSize, "Number of rendered images kept in memory")
	flag.IntVar(&config.NumWorkers, "workers", config.NumWorkers, "Rows rendered concurrently per request (0 = CPU count)")
	flag.Parse()

	webServer, err := server.NewServer(config)
	if err != nil {
		log.Printf("Error creating server: %v", err)
		os.Exit(1)
	}

	log.Printf("Sphere Path Tracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=random&width=300&samples=10", config.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
