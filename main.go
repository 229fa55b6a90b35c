package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/janani-natarajan/SuyogJobFinder/internal/api"
	"github.com/janani-natarajan/SuyogJobFinder/internal/config"
	"github.com/janani-natarajan/SuyogJobFinder/internal/dataset"
	"github.com/janani-natarajan/SuyogJobFinder/internal/export"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("Warning: %v", err)
	}

	// A missing or malformed dataset is not fatal: the server starts
	// with an empty dataset and surfaces the problem on /jobs
	var loadWarning string
	postings, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Printf("Warning: %v", err)
		loadWarning = err.Error()
	} else {
		log.Printf("Loaded %d job postings from %s", len(postings), cfg.DatasetPath)
	}

	store := dataset.NewStore(postings)
	pdfGenerator := export.NewPDFGenerator(cfg.PDFTemplate)
	server := api.NewServer(store, pdfGenerator, cfg.ExportDir, loadWarning)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Starting Suyog Job Finder on port %s...\n", port)
	fmt.Printf("Endpoints:\n")
	fmt.Printf("  GET /jobs - List job postings matching the selected filters\n")
	fmt.Printf("  GET /filters - Selectable values for each filter field\n")
	fmt.Printf("  POST /export - Export the filtered postings as xlsx or pdf\n")

	if err := http.ListenAndServe(":"+port, server.Router()); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
