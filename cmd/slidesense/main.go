// Command slidesense analyzes a slide image with a multimodal LLM and prints
// the reconstructed structure (background color and positioned elements) as
// JSON on stdout.
//
// Usage:
//
//	slidesense -image slide.png [-model gemini-2.5-flash] [-notes notes.html] [-v]
//
// The Gemini API key is read from the GEMINI_API_KEY environment variable;
// a .env file in the working directory is loaded automatically.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/slidesense/slidesense/internal/utils"
	"github.com/slidesense/slidesense/providers/ai/gemini"
	"github.com/slidesense/slidesense/providers/observability/slogobs"
	"github.com/slidesense/slidesense/slides"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	imagePath := flag.String("image", "", "path to the slide image (required)")
	model := flag.String("model", "", "model identifier (default: provider default)")
	notesPath := flag.String("notes", "", "path to an HTML file with the slide's speaker notes (optional)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*imagePath, *model, *notesPath, logger); err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

func run(imagePath, model, notesPath string, logger *slog.Logger) error {
	imageBytes, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	req := slides.Request{
		MimeType:  detectMimeType(imagePath, imageBytes),
		ImageData: base64.StdEncoding.EncodeToString(imageBytes),
	}

	if notesPath != "" {
		notesBytes, err := os.ReadFile(notesPath)
		if err != nil {
			return fmt.Errorf("failed to read notes: %w", err)
		}
		req.NotesHTML = string(notesBytes)
	}

	analyzer, err := slides.NewAnalyzer(
		gemini.New(),
		slides.WithModel(model),
		slides.WithObserver(slogobs.New(logger)),
	)
	if err != nil {
		return err
	}

	analysis, err := analyzer.Analyze(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Println(utils.JSONToString(analysis, true))
	return nil
}

// detectMimeType prefers the file extension and falls back to content
// sniffing, so formats the sniffer does not know (e.g. some webp variants
// renamed by editors) still resolve correctly.
func detectMimeType(path string, data []byte) string {
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt
	}
	return http.DetectContentType(data)
}
