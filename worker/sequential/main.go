package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/scene"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/screen"
	"github.com/alycolumbres/GDEV32-FinalProject/worker/shared/tracer"
)

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 3 {
		log.Fatalln("Improper parameters.  This program requires the parameters:" +
			"\n\t(1) scene file path" +
			"\n\t(2) output image path")
	}

	// Parse the command line parameters.
	scn, err := scene.SceneFromFile(os.Args[1])
	if err != nil {
		log.Fatalf("Could not read in scene \"%s\": %v.\n", os.Args[1], err)
	}
	outputPath := os.Args[2]

	// Trace the whole frame with every core available.
	img := screen.NewImage(scn.Cam.Width, scn.Cam.Height)
	err = tracer.Render(context.Background(), scn, img, 0, runtime.NumCPU(), func(done, total int) {
		fmt.Printf("Row: %4d / %4d\r", done, total)
	})
	fmt.Println()
	if err != nil {
		log.Fatalf("Could not render scene: %v.\n", err)
	}

	if err := img.WritePNG(outputPath); err != nil {
		log.Fatalf("Could not write image \"%s\": %v.\n", outputPath, err)
	}
	log.Printf("Wrote %dx%d image to \"%s\".\n", img.Width, img.Height, outputPath)
}
