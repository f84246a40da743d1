package app

import (
	"fmt"
	"os"
	"strings"
)

// Run executes the CLI command and returns a process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "help", "--help", "-h":
		printUsage()
		return 0
	case "health":
		return runHealth(args[1:])
	case "transcript":
		return runTranscript(args[1:])
	case "translate":
		return runTranslate(args[1:])
	case "summarize":
		return runSummarize(args[1:])
	case "run":
		return runPipeline(args[1:])
	case "serve":
		return runServe(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "yt-transcript CLI")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  yt-transcript <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  transcript  Retrieve the transcript of a watch page URL")
	fmt.Fprintln(os.Stderr, "  translate   Translate text (argument or stdin) to a target language")
	fmt.Fprintln(os.Stderr, "  summarize   Summarize text, a transcript, or an article URL")
	fmt.Fprintln(os.Stderr, "  run         Retrieve, translate, and optionally summarize in one pass")
	fmt.Fprintln(os.Stderr, "  serve       Start the HTTP API server")
	fmt.Fprintln(os.Stderr, "  health      Verify configuration and storage connectivity")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Use \"yt-transcript <command> -h\" for command-specific flags.")
}
