package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mobilegate/pkg/classifier"
	"github.com/dmitrymomot/mobilegate/pkg/gate"
)

func classifyCmd() *cobra.Command {
	var (
		ua           string
		width        int
		height       int
		touch        bool
		memory       float64
		path         string
		patternsFile string
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a device from its request signals",
		Example: `  mobilegate classify --ua "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"
  mobilegate classify --width 1280 --height 800
  mobilegate classify --touch --memory 2 --path /settings`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClassifier(patternsFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			signals := classifier.Signals{UserAgent: ua}
			if flags.Changed("width") {
				signals.ScreenWidth = &width
			}
			if flags.Changed("height") {
				signals.ScreenHeight = &height
			}
			if flags.Changed("touch") {
				signals.TouchSupported = &touch
			}
			if flags.Changed("memory") {
				signals.DeviceMemoryGiB = &memory
			}

			res := c.Explain(signals)
			out := classifyResponse{Result: res}
			if flags.Changed("path") {
				out.Path = path
				decision := gate.Decide(path, res.Classification)
				out.Decision = &decision
			}

			w := cmd.OutOrStdout()
			if jsonOutput {
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling JSON: %w", err)
				}
				fmt.Fprintln(w, string(data))
				return nil
			}

			fmt.Fprintf(w, "Classification: %s\n", res.Classification)
			fmt.Fprintf(w, "Reason: %s\n", res.Reason)
			if res.Match != "" {
				fmt.Fprintf(w, "Match: %s\n", res.Match)
			}
			if out.Decision != nil {
				fmt.Fprintf(w, "Decision for %s: %s\n", out.Path, *out.Decision)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&ua, "ua", "", "User-Agent header value")
	flags.IntVar(&width, "width", 0, "screen width hint in pixels")
	flags.IntVar(&height, "height", 0, "screen height hint in pixels")
	flags.BoolVar(&touch, "touch", false, "touch support hint")
	flags.Float64Var(&memory, "memory", 0, "device memory hint in GiB")
	flags.StringVar(&path, "path", "", "also print the gate decision for this path")
	flags.StringVar(&patternsFile, "patterns", "", "YAML pattern file (default: built-in patterns)")
	flags.BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}
