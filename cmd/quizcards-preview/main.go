package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"
)

// Rasterizes every page of a generated card PDF to PNG so the sheets can
// be proofed on screen before printing a duplex run.
func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: quizcards-preview cards.pdf output-dir")
		os.Exit(1)
	}

	pdfPath := os.Args[1]
	outDir := os.Args[2]

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Printf("Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		fmt.Printf("Error opening PDF: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	fmt.Printf("%d pages in %s\n", doc.NumPage(), pdfPath)

	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		img, err := doc.Image(pageNum)
		if err != nil {
			fmt.Printf("Error rendering page %d: %v\n", pageNum+1, err)
			os.Exit(1)
		}

		side := "front"
		if pageNum%2 == 1 {
			side = "back"
		}
		name := fmt.Sprintf("sheet-%02d-%s.png", pageNum/2+1, side)
		path := filepath.Join(outDir, name)

		f, err := os.Create(path)
		if err != nil {
			fmt.Printf("Error creating %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			fmt.Printf("Error encoding %s: %v\n", path, err)
			os.Exit(1)
		}
		f.Close()

		fmt.Printf("wrote %s\n", path)
	}
}
