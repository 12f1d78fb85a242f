package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal using the persisted theme.
// If rendering fails (e.g. no usable terminal), the raw markdown is printed
// instead so the information is never lost.
func printMarkdown(md string) {
	settings := OpenStore().LoadSettings()

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(settings.Theme),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
