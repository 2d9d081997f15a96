package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andaru/scanogram/config"
	"github.com/andaru/scanogram/model"
)

var enumsCmd = &cobra.Command{
	Use:   "enums",
	Short: "List the values accepted for each enumeration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return writeEnums(cmd.OutOrStdout(), cfg.Output.Format)
	},
}

func init() {
	rootCmd.AddCommand(enumsCmd)
}

// enumValue is one accepted value of an enumeration
type enumValue struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type enum struct {
	Type   string      `json:"type"`
	Values []enumValue `json:"values"`
}

type labelled interface {
	String() string
	UserFriendly() string
}

func newEnum[T labelled](typeName string, values []T) enum {
	e := enum{Type: typeName, Values: make([]enumValue, len(values))}
	for i, v := range values {
		e.Values[i] = enumValue{Name: v.String(), Label: v.UserFriendly()}
	}
	return e
}

func enums() []enum {
	return []enum{
		newEnum("gender", model.Genders()),
		newEnum("group", model.AgeGroups()),
		newEnum("scanner", model.ScannerTypes()),
		newEnum("sensor", model.SensorTypes()),
		newEnum("pass", model.ScanPasses()),
		newEnum("hairstyle", model.Hairstyles()),
		newEnum("clothing", model.Clothings()),
		newEnum("shoes", model.AllShoes()),
		newEnum("lighting", model.Lightings()),
		newEnum("placement", model.Placements()),
		newEnum("item", model.Garments()),
	}
}

func writeEnums(out io.Writer, format string) error {
	all := enums()
	if format == config.FormatJSON {
		b, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal enums")
		}
		_, err = out.Write(append(b, '\n'))
		return errors.WithStack(err)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range all {
		fmt.Fprintf(w, "%s:\n", e.Type)
		for _, v := range e.Values {
			fmt.Fprintf(w, "  %s\t%s\n", v.Name, v.Label)
		}
	}
	return errors.WithStack(w.Flush())
}
