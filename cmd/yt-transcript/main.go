package main

import (
	"os"

	"github.com/mnadalc/yt-translate-transcription/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
