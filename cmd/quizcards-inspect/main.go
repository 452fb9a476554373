package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Prints per-page dimensions of a generated card PDF. Odd pages are front
// sides, even pages the matching back sides.
func main() {
	pdfPath := flag.String("file", "", "Path to PDF file")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	fmt.Printf("Analyzing PDF: %s\n", *pdfPath)

	dims, err := api.PageDimsFile(*pdfPath)
	if err != nil {
		fmt.Printf("Error getting page dimensions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d pages (%d sheets)\n", len(dims), (len(dims)+1)/2)

	for i, dim := range dims {
		side := "front"
		if i%2 == 1 {
			side = "back"
		}
		fmt.Printf("\nPage %d (sheet %d, %s):\n", i+1, i/2+1, side)
		fmt.Printf("Dimensions (Width x Height): %.3f x %.3f points\n", dim.Width, dim.Height)
	}
}
