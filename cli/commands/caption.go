package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var captionImagePath string

var captionCmd = &cobra.Command{
	Use:   "caption",
	Short: "Write a social caption and hashtags for a photo",
	Example: `  facet caption --image portrait.jpg
  facet caption --image portrait.jpg --json`,
	RunE: runCaption,
}

func init() {
	rootCmd.AddCommand(captionCmd)

	captionCmd.Flags().StringVar(&captionImagePath, "image", "", "photo to caption (required)")
	_ = captionCmd.MarkFlagRequired("image")
}

func runCaption(cmd *cobra.Command, args []string) error {
	st, err := newStudio()
	if err != nil {
		return exitWithCode(err)
	}

	ref, err := loadImage(captionImagePath)
	if err != nil {
		return exitWithCode(err)
	}

	caption, err := st.GenerateCaption(cmd.Context(), ref)
	if err != nil {
		return exitWithCode(err)
	}

	if IsJSONOutput() {
		return printJSON(caption)
	}
	fmt.Println(caption.Caption)
	if len(caption.Hashtags) > 0 {
		fmt.Println(strings.Join(caption.Hashtags, " "))
	}
	return nil
}
