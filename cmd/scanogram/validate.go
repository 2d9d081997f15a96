package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andaru/scanogram/config"
	"github.com/andaru/scanogram/fsys"
	"github.com/andaru/scanogram/loader"
	"github.com/andaru/scanogram/scanerr"
)

const (
	checkMark = "✓"
	crossMark = "✗"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check project files and explain why invalid ones are rejected",
	Long: `Load each project file and report whether it is valid. For an invalid
file the error trace is printed, innermost section first.

Examples:
  scanogram validate Scans/alice/person.scan.xml
  scanogram validate --format json Scans/*/*.scan.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// fileResult is the JSON form of one validated file
type fileResult struct {
	File   string          `json:"file"`
	Valid  bool            `json:"valid"`
	Scans  int             `json:"scans,omitempty"`
	Kind   *scanerr.Kind   `json:"kind,omitempty"`
	Tag    string          `json:"tag,omitempty"`
	Frames []scanerr.Frame `json:"frames,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return validateFiles(cmd.OutOrStdout(), fsys.OS{}, cfg.Output.Format, args)
}

func validateFiles(out io.Writer, fs fsys.FS, format string, files []string) error {
	l := loader.New(fs)
	results := make([]fileResult, 0, len(files))
	invalid := 0
	for _, name := range files {
		r := fileResult{File: name}
		doc, err := l.Load(name)
		if err == nil {
			r.Valid, r.Scans = true, len(doc.Scans())
		} else {
			invalid++
			r.Frames = scanerr.FramesOf(err)
			var e *scanerr.Error
			if errors.As(err, &e) {
				r.Kind, r.Tag = &e.Kind, e.Tag
			}
		}
		results = append(results, r)

		if format == config.FormatText {
			if err == nil {
				fmt.Fprintf(out, "  %s %s (%d scans)\n", checkMark, name, r.Scans)
			} else {
				fmt.Fprintf(out, "  %s %s\n%v\n", crossMark, name, err)
			}
		}
	}

	if format == config.FormatJSON {
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal results")
		}
		if _, err = out.Write(append(b, '\n')); err != nil {
			return errors.WithStack(err)
		}
	}
	if invalid > 0 {
		return errors.Errorf("%d of %d project files are invalid", invalid, len(files))
	}
	return nil
}
