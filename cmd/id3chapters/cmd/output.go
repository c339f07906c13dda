package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/id3chapters"
)

// printer writes parsed files in one output format.
type printer struct {
	format     string
	seekPoints bool
}

func newPrinter(format string, seekPoints bool) (*printer, error) {
	switch format {
	case "text", "json", "yaml":
		return &printer{format: format, seekPoints: seekPoints}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// fileOutput is the structured form of one file.
type fileOutput struct {
	Path       string                  `json:"path" yaml:"path"`
	Tag        *id3chapters.TagHeader  `json:"tag,omitempty" yaml:"tag,omitempty"`
	Chapters   []id3chapters.Chapter   `json:"chapters,omitempty" yaml:"chapters,omitempty"`
	SeekPoints []id3chapters.SeekPoint `json:"seekpoints,omitempty" yaml:"seekpoints,omitempty"`
	Warnings   []string                `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (p *printer) toOutput(f *id3chapters.File) fileOutput {
	o := fileOutput{Path: f.Path}
	if f.Tag.Valid {
		tag := f.Tag
		o.Tag = &tag
	}
	if p.seekPoints {
		o.SeekPoints = f.SeekPoints()
	} else {
		o.Chapters = f.Chapters
	}
	for _, w := range f.Warnings {
		o.Warnings = append(o.Warnings, w.String())
	}
	return o
}

func (p *printer) print(w io.Writer, files []*id3chapters.File) error {
	outputs := make([]fileOutput, len(files))
	for i, f := range files {
		outputs[i] = p.toOutput(f)
	}

	switch p.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outputs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(outputs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return p.printText(w, outputs)
	}
}

// printText displays each file as a table
func (p *printer) printText(w io.Writer, outputs []fileOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, o := range outputs {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", o.Path)

		if o.Tag == nil {
			fmt.Fprintln(tw, "  no ID3v2 tag")
		}

		switch {
		case p.seekPoints:
			for _, sp := range o.SeekPoints {
				fmt.Fprintf(tw, "  %d\t%s\n", sp.TimeOffset, sp.Name)
			}
		case o.Tag != nil && len(o.Chapters) == 0:
			fmt.Fprintln(tw, "  no chapters")
		default:
			for _, c := range o.Chapters {
				fmt.Fprintf(tw, "  [%d]\t%s\t%s\t%s\n", c.Index, c.StartTime(), c.EndTime(), c.Title)
			}
		}

		for _, msg := range o.Warnings {
			fmt.Fprintf(tw, "  warning: %s\n", msg)
		}
	}

	return tw.Flush()
}
