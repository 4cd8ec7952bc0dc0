// Command voronoigen generates random sites in a viewport, builds their
// Voronoi diagram, prints a per-cell summary to stdout, and writes the
// diagram as an SVG image.
package main

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/cinekine/voronoi2d"
	"github.com/cinekine/voronoi2d/types"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "voronoigen",
		Usage:     "Generates random sites in a plane, builds their Voronoi diagram, and renders it as SVG",
		UsageText: "voronoigen --number <value> --xbound <value> --ybound <value> --seed <value> --output <path>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of sites to generate",
				Value:    20,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "xbound",
				Usage:    "The width of the viewport",
				OnlyOnce: true,
				Value:    500,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("xbound must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "ybound",
				Usage:    "The height of the viewport",
				OnlyOnce: true,
				Value:    500,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("ybound must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "seed",
				Usage:    "The seed for the site generator",
				OnlyOnce: true,
				Value:    1,
			},
			&cli.StringFlag{
				Name:     "output",
				Usage:    "The path of the SVG file to write",
				Aliases:  []string{"o"},
				OnlyOnce: true,
				Value:    "voronoi.svg",
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// randomSites generates count sites with integer coordinates in
// [0, xBound] x [0, yBound].
func randomSites[T types.SignedNumber](rng *rand.Rand, count int, xBound, yBound T) voronoi2d.Sites {
	sites := make(voronoi2d.Sites, 0, count)
	for i := 0; i < count; i++ {
		sites = append(sites, voronoi2d.Site{
			Vertex: voronoi2d.Vertex{
				X: float32(rng.IntN(int(xBound) + 1)),
				Y: float32(rng.IntN(int(yBound) + 1)),
			},
			Cell: -1,
		})
	}
	return sites
}

func app(_ context.Context, cmd *cli.Command) error {
	n := int(cmd.Int("number"))
	xBound := float32(cmd.Int("xbound"))
	yBound := float32(cmd.Int("ybound"))
	seed := cmd.Int("seed")
	output := cmd.String("output")

	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	sites := randomSites(rng, n, xBound, yBound)

	graph := voronoi2d.Build(sites, xBound, yBound)

	doc := newSVG(xBound, yBound)
	dumpCells(os.Stdout, &graph, doc)

	b, err := xml.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, b, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}

// dumpCells prints each cell's site and edge endpoints and adds the
// cell's edges and site marker to the SVG document. The site marker is
// accompanied by the cell's inscribed circle, whose radius is the
// smallest site-to-edge distance (triangle area via Heron's formula,
// divided by half the edge length).
func dumpCells(w io.Writer, graph *voronoi2d.Graph, doc *svgDoc) {
	cells := graph.Cells()
	sites := graph.Sites()
	edges := graph.Edges()

	for _, cell := range cells {
		site := sites[cell.Site]
		minDistance := math.Inf(1)

		fmt.Fprintf(w, "Cell[%d]: (%.2f,%.2f), edges[%d]=> [\n",
			site.Cell, site.X, site.Y, len(cell.HalfEdges))

		for _, halfEdge := range cell.HalfEdges {
			edge := edges[halfEdge.Edge]
			fmt.Fprintf(w, "    { start:(%.2f,%.2f), end:(%.2f,%.2f) }\n",
				edge.P0.X, edge.P0.Y, edge.P1.X, edge.P1.Y)

			a := hypot(edge.P0, site.Vertex)
			b := hypot(edge.P1, site.Vertex)
			c := hypot(edge.P0, edge.P1)
			s := (a + b + c) / 2
			area := math.Sqrt(s * (s - a) * (s - b) * (s - c))
			if dist := area / (0.5 * c); dist < minDistance {
				minDistance = dist
			}

			doc.Lines = append(doc.Lines, svgLine{
				X1: edge.P0.X, Y1: edge.P0.Y,
				X2: edge.P1.X, Y2: edge.P1.Y,
				Stroke: "#000000", StrokeWidth: 1,
			})
		}
		fmt.Fprintf(w, "]\n\n")

		if !math.IsInf(minDistance, 1) {
			doc.Circles = append(doc.Circles, svgCircle{
				CX: site.X, CY: site.Y, R: float32(minDistance), Fill: "#00ffff",
			})
		}
		doc.Circles = append(doc.Circles, svgCircle{
			CX: site.X, CY: site.Y, R: 2, Fill: "#000000",
		})
	}
}

func hypot(a, b voronoi2d.Vertex) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

type svgDoc struct {
	XMLName xml.Name    `xml:"svg"`
	Xmlns   string      `xml:"xmlns,attr"`
	Rect    svgRect     `xml:"rect"`
	Lines   []svgLine   `xml:"line"`
	Circles []svgCircle `xml:"circle"`
}

type svgRect struct {
	X      float32 `xml:"x,attr"`
	Y      float32 `xml:"y,attr"`
	Width  float32 `xml:"width,attr"`
	Height float32 `xml:"height,attr"`
	Style  string  `xml:"style,attr"`
}

type svgLine struct {
	X1          float32 `xml:"x1,attr"`
	Y1          float32 `xml:"y1,attr"`
	X2          float32 `xml:"x2,attr"`
	Y2          float32 `xml:"y2,attr"`
	Stroke      string  `xml:"stroke,attr"`
	StrokeWidth float32 `xml:"stroke-width,attr"`
}

type svgCircle struct {
	CX   float32 `xml:"cx,attr"`
	CY   float32 `xml:"cy,attr"`
	R    float32 `xml:"r,attr"`
	Fill string  `xml:"fill,attr"`
}

func newSVG(xBound, yBound float32) *svgDoc {
	return &svgDoc{
		Xmlns: "http://www.w3.org/2000/svg",
		Rect: svgRect{
			Width: xBound, Height: yBound,
			Style: "fill:rgb(255,255,255); stroke-width:0; stroke:rgb(0,0,0)",
		},
	}
}
