package main

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/KasperOmsK/adtfn"
	"github.com/KasperOmsK/adtfn/internal/iterx"
	"github.com/KasperOmsK/adtfn/shape"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func sampleShapes() []shape.Shape {
	return []shape.Shape{
		shape.Circle{Radius: 1},
		shape.Rectangle{Width: 1, Length: 2},
		shape.Polygon{Points: []shape.Point{{X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}}},
		shape.Point{X: 7, Y: 8},
	}
}

func newShapesCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Describe the shapes of a YAML or JSON document (a built-in sample by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.cfg.ShapesFile
			}
			shapes := sampleShapes()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open shapes: %w", err)
				}
				defer f.Close()
				if shapes, err = shape.Decode(f); err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				a.logger.Debug("Shapes decoded", zap.String("file", file), zap.Int("count", len(shapes)))
			}

			failed := describeShapes(a.logger, shapes, func(line string) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			})
			if failed > 0 {
				return fmt.Errorf("%d shape(s) could not be described", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Shapes document (overrides shapes_file)")
	return cmd
}

// describeShapes streams shapes through a pipe that renders each one with its
// area. Rejected shapes are logged and counted.
func describeShapes(logger *zap.Logger, shapes []shape.Shape, emit func(string)) int {
	render := func(s shape.Shape) (string, error) {
		text, err := shape.Describe(s)
		if err != nil {
			return "", err
		}
		area, err := shape.Area(s)
		if err != nil {
			return "", err
		}
		return text + " (area " + strconv.FormatFloat(area, 'f', 2, 64) + ")", nil
	}

	lines, errs := adtfn.TryMap(adtfn.From(iterx.FromSlice(shapes)), render).Results()

	var (
		wg     sync.WaitGroup
		failed int
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range errs {
			failed++
			logger.Warn("Shape rejected", zap.Error(err))
		}
	}()

	for line := range lines {
		emit(line)
	}
	wg.Wait()
	return failed
}
