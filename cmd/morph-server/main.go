package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"

	"github.com/gcbaptista/go-morph/api"
	"github.com/gcbaptista/go-morph/config"
	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/engine"
	"github.com/gcbaptista/go-morph/internal/kagome"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.String("port", "8080", "Port to run the server on")
		dictName   = flag.String("dict", "ipa", "System dictionary to load (ipa or uni)")
		projection = flag.String("projection", "", "Surface projection (surface, normalized, reading, dictionary, ...)")
		mode       = flag.String("mode", "", "Default split mode (A, B, or C)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Go Morph - A Japanese morphological analysis server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                              # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000 --dict uni       # UniDic on port 9000\n", os.Args[0])
		fmt.Printf("  %s --projection normalized      # Normalize surfaces in responses\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Go Morph v1.0.0\n")
		fmt.Printf("Morpheme lists with split hierarchy, POS matching, and surface projection\n")
		return
	}

	// Load the system dictionary
	log.Printf("Loading system dictionary: %s", *dictName)
	analyzer, err := newAnalyzer(*dictName)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	dicts, err := dictionary.NewSet(analyzer.Lexicon())
	if err != nil {
		log.Fatalf("Failed to build dictionary set: %v", err)
	}

	settings := config.TokenizerSettings{
		Projection:  *projection,
		DefaultMode: *mode,
	}
	morphEngine, err := engine.NewEngine(analyzer, dicts, settings)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(1 << 20))

	// Setup API routes
	api.SetupRoutes(router, morphEngine, morphEngine.Settings().MaxInputRunes)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newAnalyzer(name string) (*kagome.Analyzer, error) {
	switch name {
	case "ipa":
		return kagome.New(ipa.Dict(), "ipadic")
	case "uni":
		return kagome.New(uni.Dict(), "unidic")
	default:
		return nil, fmt.Errorf("unknown dictionary %q (expected ipa or uni)", name)
	}
}
