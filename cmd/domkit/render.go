package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		title    string
		out      string
		pretty   bool
		skeleton bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a document to markup",
		Long: `Render emits the sample document (or, with --skeleton, the bare
html > head, body skeleton) to stdout or a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				doc *dom.Document
				err error
			)
			if skeleton {
				doc = dom.NewDocument()
				if title != "" {
					if err := doc.SetTitle(title); err != nil {
						return fmt.Errorf("setting title: %w", err)
					}
				}
			} else {
				if title == "" {
					title = "domkit sample"
				}
				doc, err = sampleDocument(title)
				if err != nil {
					return err
				}
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			renderer := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			if err := renderer.RenderDocument(w, doc); err != nil {
				return fmt.Errorf("rendering: %w", err)
			}
			if !pretty {
				fmt.Fprintln(w)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Document title")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the markup")
	cmd.Flags().BoolVar(&skeleton, "skeleton", false, "Emit the bare document skeleton")

	return cmd
}
