package commands

import (
	"github.com/spf13/cobra"
)

var (
	generateImagePath string
	generatePrompt    string
	generateCount     int
	generateOutDir    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate stylistic variations of a reference photo",
	Long: `Generate stylistic variations of a reference photo. Each variation is
requested sequentially; failed attempts are retried within the session's
attempt budget and any images that do arrive are kept.`,
	Example: `  facet generate --image portrait.jpg --prompt "soft window light" --count 3
  facet generate --image portrait.jpg --prompt "golden hour" --out ./shots`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateImagePath, "image", "", "reference photo to vary (required)")
	generateCmd.Flags().StringVar(&generatePrompt, "prompt", "", "style direction for the variations (required)")
	generateCmd.Flags().IntVar(&generateCount, "count", 0, "number of variations (1-3, default from config)")
	generateCmd.Flags().StringVar(&generateOutDir, "out", ".", "directory for generated images")
	_ = generateCmd.MarkFlagRequired("image")
	_ = generateCmd.MarkFlagRequired("prompt")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	st, err := newStudio()
	if err != nil {
		return exitWithCode(err)
	}

	ref, err := loadImage(generateImagePath)
	if err != nil {
		return exitWithCode(err)
	}

	count := generateCount
	if count == 0 {
		count = defaultCount()
	}

	sess, err := st.GenerateVariations(cmd.Context(), ref, generatePrompt, count)
	if err != nil {
		return exitWithCode(err)
	}

	paths, err := writeImages(sess, generateOutDir, "variation")
	if err != nil {
		return exitWithCode(err)
	}

	return reportSession(sess, paths)
}
