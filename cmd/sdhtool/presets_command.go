package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sdhtool/internal/sdh"
)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "presets",
		Short:       "List cleaning presets and the rules they enable",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"Preset", "Square", "Paren", "Standalone Only", "Speaker Colon", "Uppercase Gate", "Music Only"}
			rows := make([][]string, 0, len(sdh.PresetNames()))
			for _, name := range sdh.PresetNames() {
				rules, ok := sdh.Preset(name)
				if !ok {
					continue
				}
				rows = append(rows, []string{
					name,
					yesNo(rules.RemoveBetweenSquare),
					yesNo(rules.RemoveBetweenParen),
					yesNo(rules.BetweenOnlyIfSeparateLine),
					yesNo(rules.RemoveTextBeforeColon),
					yesNo(rules.ColonOnlyIfUppercase),
					yesNo(rules.RemoveIfOnlyMusicSymbols),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, headers, rows))
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
