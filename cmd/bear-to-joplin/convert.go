// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calfzhou/bear-to-joplin/internal/convert"
	"github.com/calfzhou/bear-to-joplin/internal/fstime"
	"github.com/calfzhou/bear-to-joplin/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert SRC DST",
	Short: "Convert notes between the Bear and Joplin markdown layouts",
	Long: `Convert reads markdown notes from SRC and writes Joplin-importable copies
under DST. SRC may be a single file or a directory; a directory tree is
mirrored under DST in lexical order. Files that are not markdown (images and
other attachments) travel along unchanged.

With --reverse, a previously written front-matter block is stripped instead
and the note's filesystem timestamps are restored from its values.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := convertConfig(cmd)
	if err != nil {
		return err
	}

	conv := convert.New(cfg, fstime.OS{}, convert.NewTerminalPrompter(), os.Stdout)
	sum, err := conv.Run(args[0], args[1])
	if err != nil {
		return err
	}
	if sum.Aborted {
		return fmt.Errorf("batch aborted: destination already exists")
	}
	if sum.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", sum.Failed)
	}
	return nil
}

// convertConfig assembles the run configuration. Flags win over the config
// file, which wins over the built-in defaults.
func convertConfig(cmd *cobra.Command) (types.ConvertConfig, error) {
	policy, _ := cmd.Flags().GetString("overwrite")
	if !cmd.Flags().Changed("overwrite") && viper.IsSet("overwrite") {
		policy = viper.GetString("overwrite")
	}
	overwrite, err := types.ParseOverwritePolicy(policy)
	if err != nil {
		return types.ConvertConfig{}, err
	}

	exts, _ := cmd.Flags().GetStringSlice("ext")
	if !cmd.Flags().Changed("ext") && viper.IsSet("extensions") {
		exts = viper.GetStringSlice("extensions")
	}

	reverse, _ := cmd.Flags().GetBool("reverse")

	rules := types.DefaultTagRules()
	if viper.IsSet("tags.exclude_numeric") {
		rules.ExcludeNumeric = viper.GetBool("tags.exclude_numeric")
	}
	if viper.IsSet("tags.exclude_color_hex") {
		rules.ExcludeColorHex = viper.GetBool("tags.exclude_color_hex")
	}
	if viper.IsSet("tags.exclude_code") {
		rules.ExcludeCode = viper.GetBool("tags.exclude_code")
	}

	return types.ConvertConfig{
		Overwrite:  overwrite,
		Reverse:    reverse,
		Extensions: exts,
		Tags:       rules,
	}, nil
}

func init() {
	convertCmd.Flags().String("overwrite", "yes", "overwrite existing destination files: yes, no, ask, or abort")
	convertCmd.Flags().Bool("reverse", false, "strip front matter and restore file times from its values")
	convertCmd.Flags().StringSlice("ext", []string{".md"}, "note file extensions eligible for conversion")

	rootCmd.AddCommand(convertCmd)
}
