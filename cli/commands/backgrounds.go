package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backgroundsImagePath string

var backgroundsCmd = &cobra.Command{
	Use:     "backgrounds",
	Short:   "Suggest alternative background settings for a photo",
	Example: `  facet backgrounds --image portrait.jpg`,
	RunE:    runBackgrounds,
}

func init() {
	rootCmd.AddCommand(backgroundsCmd)

	backgroundsCmd.Flags().StringVar(&backgroundsImagePath, "image", "", "photo to analyze (required)")
	_ = backgroundsCmd.MarkFlagRequired("image")
}

func runBackgrounds(cmd *cobra.Command, args []string) error {
	st, err := newStudio()
	if err != nil {
		return exitWithCode(err)
	}

	ref, err := loadImage(backgroundsImagePath)
	if err != nil {
		return exitWithCode(err)
	}

	suggestions, err := st.SuggestBackgrounds(cmd.Context(), ref)
	if err != nil {
		return exitWithCode(err)
	}

	if IsJSONOutput() {
		return printJSON(map[string][]string{"backgrounds": suggestions})
	}
	for _, s := range suggestions {
		fmt.Println("-", s)
	}
	return nil
}
