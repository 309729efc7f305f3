package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprint(os.Stderr, "Generate: pngo <WxH> [output.png]\nRe-encode: pngo <input-image> [output.png]\n")
		os.Exit(1)
	}

	arg := os.Args[1]

	// A WxH argument generates a gradient test pattern instead of reading a file.
	if w, h, ok := parseSize(arg); ok {
		outPath := fmt.Sprintf("gradient_%dx%d.png", w, h)
		if len(os.Args) == 3 {
			outPath = os.Args[2]
		}
		if err := Save(Gradient(w, h), outPath); err != nil {
			fmt.Fprintln(os.Stderr, "encode error:", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %dx%d gradient → %s\n", w, h, outPath)
		return
	}

	base := strings.TrimSuffix(arg, filepath.Ext(arg))
	outPath := base + ".png"
	if len(os.Args) == 3 {
		outPath = os.Args[2]
	} else if outPath == arg {
		outPath = base + "_out.png"
	}

	if err := reencode(arg, outPath); err != nil {
		fmt.Fprintln(os.Stderr, "encode error:", err)
		os.Exit(1)
	}
	fmt.Printf("Encoded %s → %s\n", arg, outPath)
}

func parseSize(s string) (w, h int, ok bool) {
	i := strings.IndexByte(s, 'x')
	if i <= 0 || i == len(s)-1 {
		return 0, 0, false
	}
	w, errW := strconv.Atoi(s[:i])
	h, errH := strconv.Atoi(s[i+1:])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

func reencode(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	src, _, err := image.Decode(in)
	if err != nil {
		return err
	}

	return Save(FromImage(src), outPath)
}
