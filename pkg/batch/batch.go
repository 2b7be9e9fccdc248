package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"xcalendar-icons/pkg/badge"
	"xcalendar-icons/pkg/config"
)

// MinLabelSize is the smallest icon that is given the label text.
const MinLabelSize = 32

// Icon is one generated file.
type Icon struct {
	Size int
	Path string
	PNG  []byte
}

// Resource exposes the icon to fyne apps, e.g. for App.SetIcon.
func (i Icon) Resource() fyne.Resource {
	return fyne.NewStaticResource(fileName(i.Size), i.PNG)
}

func fileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// IconPath returns where the icon of the given size is written under dir.
func IconPath(dir string, size int) string {
	return filepath.Join(dir, fileName(size))
}

// Run generates one icon per configured size, in ascending order, and writes
// each to cfg.OutputDir. The first failure stops the run; icons written
// before it are left in place.
func Run(cfg config.IconsConfig, gen *badge.Generator, out io.Writer) ([]Icon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %q: %w", cfg.OutputDir, err)
	}

	// Validate has already parsed both colours.
	bg, _ := cfg.BackgroundRGBA()
	fg, _ := cfg.TextRGBA()

	sizes := cfg.SortedSizes()
	icons := make([]Icon, 0, len(sizes))
	for _, size := range sizes {
		text := ""
		if size >= MinLabelSize {
			text = cfg.Label
		}

		data, err := gen.Generate(badge.Spec{
			Size:       size,
			Text:       text,
			Background: bg,
			TextColor:  fg,
		})
		if err != nil {
			return icons, fmt.Errorf("generate icon %d: %w", size, err)
		}

		path := IconPath(cfg.OutputDir, size)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return icons, fmt.Errorf("write icon %d: %w", size, err)
		}
		fmt.Fprintf(out, "Icon created: %s\n", path)

		icons = append(icons, Icon{Size: size, Path: path, PNG: data})
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Icons generated successfully!")
	return icons, nil
}
