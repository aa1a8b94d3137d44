// Package main renders a markdown file to a standalone HTML preview
// page, optionally re-rendering whenever the source file changes.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mdedit/mdedit/internal/config"
	"github.com/mdedit/mdedit/internal/document"
	"github.com/mdedit/mdedit/internal/logging"
	"github.com/mdedit/mdedit/internal/markdown"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const contentPlaceholder = "<!-- CONTENT_PLACEHOLDER -->"

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title><!-- TITLE_PLACEHOLDER --></title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto,
                         Oxygen, Ubuntu, Cantarell, sans-serif;
            line-height: 1.6;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            color: #333;
            background-color: #fff;
        }
        h1, h2, h3, h4, h5, h6 {
            margin-top: 1.5em;
            margin-bottom: 0.5em;
            color: #222;
        }
        h1 { border-bottom: 2px solid #eee; padding-bottom: 0.3em; }
        h2 { border-bottom: 1px solid #eee; padding-bottom: 0.3em; }
        code {
            background-color: #f4f4f4;
            padding: 0.2em 0.4em;
            border-radius: 3px;
            font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
            font-size: 0.9em;
        }
        pre {
            background-color: #f6f8fa;
            padding: 16px;
            border-radius: 6px;
            overflow-x: auto;
        }
        pre code {
            background-color: transparent;
            padding: 0;
            font-size: 0.85em;
            line-height: 1.45;
        }
        blockquote {
            border-left: 4px solid #dfe2e5;
            margin: 0;
            padding-left: 16px;
            color: #6a737d;
        }
        ul, ol {
            padding-left: 2em;
        }
        li {
            margin: 0.25em 0;
        }
        hr {
            border: none;
            border-top: 1px solid #eee;
            margin: 2em 0;
        }
        a {
            color: #0366d6;
            text-decoration: none;
        }
        a:hover {
            text-decoration: underline;
        }
        em {
            font-style: italic;
        }
        strong {
            font-weight: 600;
        }
    </style>
</head>
<body>
<!-- CONTENT_PLACEHOLDER -->
</body>
</html>
`

type options struct {
	ConfigPath string
	Renderer   string
	LogLevel   string
	Watch      bool
	Input      string
	Output     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.Renderer != "" {
		cfg.Renderer = opts.Renderer
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: os.Stderr,
		Prefix: "mdpreview",
	})

	renderer, err := markdown.NewRenderer(cfg.Renderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log.Info("renderer: %s", renderer.Name())

	doc := document.New(document.WithRenderer(renderer))

	render := func() error {
		if err := doc.LoadFile(opts.Input); err != nil {
			return err
		}
		buf := doc.Buffer()
		log.Info("input %s: %d bytes, %d lines", opts.Input, buf.Len(), buf.LineCount())

		page := buildPage(cfg.Preview.Title, doc.RenderHTML())
		if err := writePage(opts.Output, page); err != nil {
			return err
		}
		log.Info("wrote %s (%d bytes)", opts.Output, len(page))
		return nil
	}

	if err := render(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if !opts.Watch {
		return 0
	}

	watcher, err := document.WatchFile(opts.Input, cfg.Preview.Debounce(), log, func(path string) {
		if err := render(); err != nil {
			log.Error("re-render failed: %v", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer watcher.Close()

	log.Info("watching %s, press Ctrl+C to stop", opts.Input)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	return 0
}

// buildPage injects the rendered fragment and title into the page
// template.
func buildPage(title, content string) string {
	page := strings.Replace(pageTemplate, "<!-- TITLE_PLACEHOLDER -->", markdown.Escape(title), 1)
	return strings.Replace(page, contentPlaceholder, content, 1)
}

func writePage(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Renderer, "renderer", "", "Markdown engine (goldmark, fallback)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Watch, "watch", false, "Re-render whenever the input file changes")
	flag.BoolVar(&opts.Watch, "w", false, "Re-render whenever the input file changes (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mdpreview - render markdown to an HTML preview page\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mdpreview [options] [input.md] [output.html]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mdpreview README.md\n")
		fmt.Fprintf(os.Stderr, "  mdpreview doc.md doc.html\n")
		fmt.Fprintf(os.Stderr, "  mdpreview -watch notes.md out/notes.html\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("mdpreview %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.Input = "samples/sample.md"
	opts.Output = "out/preview.html"
	if args := flag.Args(); len(args) > 0 {
		opts.Input = args[0]
		if len(args) > 1 {
			opts.Output = args[1]
		}
	}

	return opts
}
