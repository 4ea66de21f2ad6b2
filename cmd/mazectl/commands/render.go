package commands

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/wallmaze/generator"
	"github.com/beka-birhanu/wallmaze/maze"
	"github.com/beka-birhanu/wallmaze/render"
	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var (
		rows, cols int
		name       string
		seed       int64
		pngPath    string
		cellSize   int
		line       int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a maze with a generator and print or save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := maze.New(rows, cols)
			if err != nil {
				return err
			}

			rule, err := generator.ByName(name, generator.NewSource(seed), rows, cols)
			if err != nil {
				return err
			}
			m.FillWith(rule)

			if pngPath == "" {
				out, err := render.ASCII(m)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			f, err := os.Create(pngPath)
			if err != nil {
				return err
			}
			defer f.Close()
			return render.PNG(f, m, render.Style{CellSize: cellSize, LineThickness: line})
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 10, "maze rows")
	cmd.Flags().IntVar(&cols, "cols", 10, "maze columns")
	cmd.Flags().StringVarP(&name, "generator", "g", generator.NameBinaryTree, fmt.Sprintf("generator %v", generator.Names()))
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	cmd.Flags().StringVarP(&pngPath, "output", "o", "", "write a PNG here instead of printing text")
	cmd.Flags().IntVar(&cellSize, "cell", render.DefaultStyle.CellSize, "PNG cell size in pixels")
	cmd.Flags().IntVar(&line, "line", render.DefaultStyle.LineThickness, "PNG wall thickness in pixels")
	return cmd
}
