package main

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andaru/scanogram/config"
	"github.com/andaru/scanogram/finder"
	"github.com/andaru/scanogram/fsys"
	"github.com/andaru/scanogram/report"
)

var iterateSkipInvalid bool

var iterateCmd = &cobra.Command{
	Use:   "iterate [dir]",
	Short: "Summarize every scan found below a directory",
	Long: `Search a directory recursively for *.scan.xml project files and print a
summary of each scan they hold, followed by the number of scans of men and
women.

The directory defaults to scans.dir of the config, or the current directory.

Examples:
  scanogram iterate ./Scans
  scanogram iterate --skip-invalid --format json /data/Scans`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIterate,
}

func init() {
	rootCmd.AddCommand(iterateCmd)
	iterateCmd.Flags().BoolVar(&iterateSkipInvalid, "skip-invalid", false, "skip project files which fail to load")
}

func runIterate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := cfg.Scans.Dir
	if len(args) == 1 {
		dir = args[0]
	}
	if cmd.Flags().Changed("skip-invalid") {
		cfg.Scans.SkipInvalid = iterateSkipInvalid
	}
	return iterate(cmd.OutOrStdout(), cmd.ErrOrStderr(), fsys.OS{}, dir, cfg)
}

func iterate(out, errOut io.Writer, fs fsys.FS, dir string, cfg *config.Config) error {
	f := finder.New(finder.WithFS(fs), finder.SkipInvalid(cfg.Scans.SkipInvalid))
	summarizer := &report.Summarizer{FS: fs, DepthExt: cfg.Frames.DepthExt, ColorExt: cfg.Frames.ColorExt}

	var tally report.Tally
	var summaries []report.Summary
	bindErr := f.BindDirectory(dir)
	if bindErr != nil {
		fmt.Fprintf(errOut, "Failed to iterate scans from the '%s' directory:\n%v\n", dir, bindErr)
	}
	for f.Next() {
		info := f.Current()
		summaries = append(summaries, summarizer.Summarize(info))
		tally.Add(info.Gender)
	}
	for _, err := range f.Skipped() {
		fmt.Fprintf(errOut, "Skipped an invalid project file:\n%v\n", err)
	}
	glog.V(1).Infof("%s: %d scans, %d files skipped", dir, tally.Total(), len(f.Skipped()))

	var err error
	if cfg.Output.Format == config.FormatJSON {
		err = report.WriteJSON(out, summaries...)
	} else {
		err = report.WriteText(out, summaries...)
		if err == nil {
			_, err = fmt.Fprintln(out, tally.String())
		}
	}
	if err != nil {
		return err
	}
	if bindErr != nil {
		return errors.Errorf("iterate %s: no scans were loaded", dir)
	}
	return nil
}
