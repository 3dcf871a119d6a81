// Command texdump synthesizes every scene texture and writes it to
// disk as WebP, for inspecting the procedural output without running
// the full application.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"github.com/ayusman/orrery/internal/scene"
	"github.com/ayusman/orrery/internal/texture"
)

func main() {
	var (
		outDir = flag.String("out", "textures", "output directory")
		size   = flag.Int("size", texture.DefaultSize, "texture edge length in pixels")
		seed   = flag.Int64("seed", 0, "noise seed")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "ERR create %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	synth := texture.NewSynthesizer(*seed, *size)

	type tex struct {
		name string
		img  *image.NRGBA
	}

	sun := scene.Sun()
	textures := []tex{
		{sun.Name, synth.Surface(sun.Archetype, sun.BaseColor, sun.NoiseFreq)},
		{sun.Name + "_glow", synth.Glow()},
		{"starfield", synth.Starfield()},
	}
	for _, b := range scene.Planets() {
		textures = append(textures, tex{b.Name, synth.Surface(b.Archetype, b.BaseColor, b.NoiseFreq)})
		if b.HasRing {
			textures = append(textures, tex{b.Name + "_ring", synth.RingRamp()})
		}
	}

	errors := 0
	for _, t := range textures {
		dst := filepath.Join(*outDir, strings.ReplaceAll(t.name, "/", "_")+".webp")
		if err := writeWebP(dst, t.img); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
			continue
		}
		b := t.img.Bounds()
		fmt.Printf("OK  %-14s -> %s  (%dx%d)\n", t.name, dst, b.Dx(), b.Dy())
	}

	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
	fmt.Println("\nDone. All textures written.")
}

func writeWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
