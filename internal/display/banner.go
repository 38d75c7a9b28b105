package display

import (
	"fmt"
	"io"

	"github.com/backmassage/assetconv/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `                  _
  __ _ ___ ___ ___| |_ ___ ___  _ ____ __
 / _`+"`"+` (_-<(_-</ -_)  _/ _/ _ \| ' \ V /
 \__,_/__//__/\___|\__\__\___/|_||_\_/
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
