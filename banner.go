package main

import (
	"fmt"
	"io"
	"time"

	"github.com/buattool/ipintel/console"
)

// The logo itself stays uncolored.
const banner = `
██╗██████╗     ██╗███╗   ██╗████████╗███████╗██╗
██║██╔══██╗    ██║████╗  ██║╚══██╔══╝██╔════╝██║
██║██████╔╝    ██║██╔██╗ ██║   ██║   █████╗  ██║
██║██╔═══╝     ██║██║╚██╗██║   ██║   ██╔══╝  ██║
██║██║         ██║██║ ╚████║   ██║   ███████╗███████╗
╚═╝╚═╝         ╚═╝╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚══════╝
`

func printBanner(out io.Writer, theme console.Theme) {
	fmt.Fprint(out, banner, "\n")
	fmt.Fprintf(out, "%s%s\n\n",
		theme.Primary.Sprint("IP Intel"),
		theme.Dim.Sprint("  •  "+time.Now().Format("2006-01-02 15:04:05")))
}
