// Command graphdemo renders equations to a PNG.
//
// Usage:
//
//	graphdemo [flags] "y=x^2" "(x^2)+(y^2)=9" "y=sin(x){x>0}"
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/graph"
	"github.com/gogpu/graph/backend/ggcanvas"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 800, "image height")
		output  = flag.String("output", "graph.png", "output file")
		samples = flag.Int("samples", 2000, "x samples per curve")
		span    = flag.Float64("span", 10, "half-width of the visible range")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("no equations given")
	}
	if *verbose {
		graph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	vp := graph.NewViewport()
	if err := vp.SetBounds(-*span, *span, -*span, *span); err != nil {
		log.Fatalf("Bad span: %v", err)
	}

	s := graph.NewSession(graph.WithSamples(*samples), graph.WithViewport(vp))
	for _, eq := range flag.Args() {
		if _, err := s.Add(eq); err != nil {
			// A bad equation is skipped, the rest still render.
			log.Printf("Skipping %q: %v", eq, err)
		}
	}
	if s.Len() == 0 {
		log.Fatal("no equation parsed")
	}

	canvas, err := ggcanvas.New(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	if err := canvas.Render(s.Viewport(), s.Curves()); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Rendered %d equation(s) to %s (%dx%d)\n", s.Len(), *output, *width, *height)
}
