package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document to the terminal.
// Falls back to the raw markdown when the renderer is not usable.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(doc); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(doc)
}
