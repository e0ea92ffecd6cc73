package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/snarkflix/snarkflix"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe()
	case "generate":
		err = runGenerate(os.Args[2:])
	case "images":
		err = runImages(os.Args[2:])
	case "version":
		fmt.Printf("snarkflix %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := snarkflix.LoadConfig()
	if err != nil {
		return err
	}
	app := snarkflix.New(cfg)
	defer app.Close()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		app.Echo.Shutdown(context.Background())
	}()

	return app.Start()
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	out := fs.String("out", "dist", "output directory for generated artifacts")
	watch := fs.Bool("watch", false, "watch the review data and regenerate on change")
	fs.Parse(args)

	cfg, err := snarkflix.LoadConfig()
	if err != nil {
		return err
	}
	gen := &snarkflix.Generator{
		Site:        snarkflix.SiteFor(cfg),
		ReviewsPath: cfg.ReviewsPath,
		OutDir:      *out,
	}
	if err := gen.Run(); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := gen.Watch(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func runImages(args []string) error {
	fs := flag.NewFlagSet("images", flag.ExitOnError)
	dir := fs.String("dir", "public/images", "directory to scan for source images")
	widthsFlag := fs.String("widths", "400,800,1200", "comma-separated variant widths")
	fs.Parse(args)

	var widths []int
	for _, part := range strings.Split(*widthsFlag, ",") {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || w <= 0 {
			return fmt.Errorf("invalid width %q", part)
		}
		widths = append(widths, w)
	}

	written, err := snarkflix.GenerateVariants(*dir, widths)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d image variants under %s\n", written, *dir)
	return nil
}

func printUsage() {
	fmt.Println(`snarkflix - A movie-review publishing engine built with Go, Echo, and templ

Usage:
  snarkflix <command> [arguments]

Commands:
  serve                Run the review site server
  generate [-out dir]  Write sitemaps and redirect pages (-watch to keep rebuilding)
  images [-dir dir]    Generate responsive image variants (-widths 400,800,1200)
  version              Print the snarkflix version
  help                 Show this help message

Configuration is read from the environment: SITE_NAME, SITE_URL, ADDR,
REVIEWS_PATH, ADMIN_PASSWORD, SESSION_SECRET, and friends.`)
}
