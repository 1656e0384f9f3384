// split_portraits cuts a 2x2 portrait sheet into one image per character.
// Usage: go run scripts/split_portraits.go <sheet.png> [content-dir]
// Quadrants go to the characters in content order (top-left, top-right,
// bottom-left, bottom-right) and are written to <content-dir>/images
// under each character's image name.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"campuslife/internal/content"
)

func main() {
	code := run()
	if code != 0 {
		os.Exit(code)
	}
}

func run() int {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: go run scripts/split_portraits.go <sheet.png> [content-dir]\n")
		return 1
	}
	inPath := filepath.Clean(os.Args[1])
	if strings.Contains(inPath, "..") {
		fmt.Fprintf(os.Stderr, "path must not escape current directory\n")
		return 1
	}
	contentDir := "content"
	if len(os.Args) == 3 {
		contentDir = filepath.Clean(os.Args[2])
	}

	b, err := content.Load(os.DirFS(contentDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load content: %v\n", err)
		return 1
	}

	f, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", inPath, err)
		return 1
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 1
	}

	outDir := filepath.Join(contentDir, "images")
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir %s: %v\n", outDir, err)
		return 1
	}
	cells := quadrants(img.Bounds())
	for i, c := range b.Characters {
		if i >= len(cells) {
			fmt.Fprintf(os.Stderr, "sheet has 4 cells, skipping %s\n", c.ID)
			continue
		}
		name := portraitName(c)
		if err := writeCrop(img, cells[i], outDir, name); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", name, err)
			return 1
		}
		fmt.Println(filepath.Join(outDir, name))
	}
	return 0
}

// quadrants splits bounds into a 2x2 grid in reading order. Bounds may
// have a non-zero origin after decoding.
func quadrants(b image.Rectangle) []image.Rectangle {
	minX, minY := b.Min.X, b.Min.Y
	halfW, halfH := b.Dx()/2, b.Dy()/2
	return []image.Rectangle{
		image.Rect(minX, minY, minX+halfW, minY+halfH),
		image.Rect(minX+halfW, minY, b.Max.X, minY+halfH),
		image.Rect(minX, minY+halfH, minX+halfW, b.Max.Y),
		image.Rect(minX+halfW, minY+halfH, b.Max.X, b.Max.Y),
	}
}

// portraitName is the character's configured image, or <id>.png.
func portraitName(c content.Character) string {
	if c.Image != "" && filepath.Base(c.Image) == c.Image && strings.EqualFold(filepath.Ext(c.Image), ".png") {
		return c.Image
	}
	return c.ID + ".png"
}

func writeCrop(img image.Image, r image.Rectangle, outDir, baseName string) (err error) {
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			dst.Set(x, y, img.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	path := filepath.Join(outDir, baseName)
	if strings.Contains(baseName, "..") {
		return fmt.Errorf("invalid path")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()
	return png.Encode(f, dst)
}
