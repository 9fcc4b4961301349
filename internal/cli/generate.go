package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fixgalleria/fixgalleria/internal/imagegen"

	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var aspect string
	var out string

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate an image from a text prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio, err := imagegen.ParseAspectRatio(aspect)
			if err != nil {
				return writeErr(cmd, err)
			}

			client := imagegen.New(app.Config)
			img, err := client.Generate(cmd.Context(), strings.Join(args, " "), ratio)
			if err != nil {
				return writeErr(cmd, err)
			}

			var path string
			if out != "" {
				path = filepath.Clean(out)
				if err := os.WriteFile(path, img.Data, 0o644); err != nil {
					return writeErr(cmd, err)
				}
			} else {
				s, err := appStore(app)
				if err != nil {
					return writeErr(cmd, err)
				}
				path, err = s.SaveImage(img.Data, img.MIMEType)
				if err != nil {
					return writeErr(cmd, err)
				}
			}

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"path": path, "mimeType": img.MIMEType, "bytes": len(img.Data)},
			})
		},
	}

	cmd.Flags().StringVar(&aspect, "aspect", string(imagegen.AspectSquare), "Aspect ratio (1:1|16:9|9:16)")
	cmd.Flags().StringVar(&out, "out", "", "Output file path (default: store images dir)")
	return cmd
}
