// Command assetconv converts score badge SVGs in ./in into cropped PNGs at
// 1x, 2x and 3x in ./out.
//
// With no flags it shells out to rsvg-convert and ImageMagick's convert and
// prints one line on success.
package main

import (
	"os"

	"github.com/backmassage/assetconv/internal/cli"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(cli.Execute(version, commit))
}
