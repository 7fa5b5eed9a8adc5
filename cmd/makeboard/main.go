package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cardboard-games/boggler/boardgen"
)

func main() {
	width := flag.Int("width", 4, "board width")
	height := flag.Int("height", 4, "board height")
	framed := flag.Bool("framed", false, "print size lines before the rows (boggler input framing)")

	flag.Parse()

	b, err := boardgen.Random(*width, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *framed {
		fmt.Println(*width)
		fmt.Println(*height)
	}
	fmt.Print(b.String())
}
