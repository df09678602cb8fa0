// Command sheetgen renders a palette file to a PNG contact sheet.
package main

import (
	"flag"
	"fmt"
	"os"

	"swatchbook/internal/cms"
	"swatchbook/internal/palette"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	cellWidth  = 150.0
	cellHeight = 100.0
	border     = 20.0
	corner     = 20.0
)

func main() {
	palettePath := flag.String("palette", "", "Path to palette JSON file")
	outPath := flag.String("out", "sheet.png", "Output PNG path")
	columns := flag.Int("columns", 5, "Swatches per row")
	flag.Parse()

	if *palettePath == "" {
		fmt.Println("Usage: sheetgen -palette <path> [-out sheet.png] [-columns 5]")
		os.Exit(1)
	}
	if *columns < 1 {
		fmt.Fprintf(os.Stderr, "Invalid column count: %d\n", *columns)
		os.Exit(1)
	}

	doc, err := palette.Load(*palettePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load palette: %v\n", err)
		os.Exit(1)
	}

	name := doc.Name
	if name == "" {
		name = "Untitled palette"
	}
	fmt.Printf("Loaded %s: %d colors\n", name, doc.Len())

	if err := render(doc, *outPath, *columns); err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}

func render(doc *palette.Document, outPath string, columns int) error {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	labelFace := truetype.NewFace(ttf, &truetype.Options{Size: 15})
	nameFace := truetype.NewFace(ttf, &truetype.Options{Size: 10})

	rows := (doc.Len() + columns - 1) / columns
	if rows == 0 {
		rows = 1
	}
	width := int(2*border + float64(columns)*cellWidth)
	height := int(2*border + float64(rows)*cellHeight)

	dc := gg.NewContext(width, height)
	dc.SetRGB255(0xFA, 0xFA, 0xFA)
	dc.Clear()

	for i := 0; i < doc.Len(); i++ {
		entry, _ := doc.At(i)
		drawSwatch(dc, entry, i, columns, labelFace, nameFace)
	}

	return dc.SavePNG(outPath)
}

func drawSwatch(dc *gg.Context, entry palette.Entry, index, columns int, labelFace, nameFace font.Face) {
	row := index / columns
	col := index - columns*row
	x := border + float64(col)*cellWidth
	y := border + float64(row)*cellHeight

	c := cms.DisplayColor(entry)
	dc.SetRGB(c.R, c.G, c.B)
	dc.DrawRoundedRectangle(x+2, y+2, cellWidth-4, cellHeight-4, corner)
	dc.Fill()

	if cms.NeedsOutline(c) {
		dc.SetRGB255(0xC8, 0xC8, 0xC8)
		dc.SetLineWidth(1)
		dc.DrawRoundedRectangle(x+3, y+3, cellWidth-6, cellHeight-6, corner)
		dc.Stroke()
	}

	text := cms.TextColor(c)
	dc.SetRGB(text.R, text.G, text.B)

	dc.SetFontFace(labelFace)
	dc.DrawStringAnchored(cms.ToHex(c), x+cellWidth/2, y+cellHeight/2, 0.5, 0.5)

	if entry.Name != "" {
		dc.SetFontFace(nameFace)
		dc.DrawStringAnchored(entry.Name, x+cellWidth/2, y+cellHeight/1.5, 0.5, 0.5)
	}
}
