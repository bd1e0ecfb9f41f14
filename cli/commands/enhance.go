package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enhancePrompt string

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Rewrite a short prompt into a detailed style direction",
	Long: `Rewrite a short prompt into a detailed photographic style direction,
ready to feed back into 'facet generate'.`,
	Example: `  facet enhance --prompt "moody portrait"`,
	RunE:    runEnhance,
}

func init() {
	rootCmd.AddCommand(enhanceCmd)

	enhanceCmd.Flags().StringVar(&enhancePrompt, "prompt", "", "prompt to enhance (required)")
	_ = enhanceCmd.MarkFlagRequired("prompt")
}

func runEnhance(cmd *cobra.Command, args []string) error {
	st, err := newStudio()
	if err != nil {
		return exitWithCode(err)
	}

	enhanced, err := st.EnhancePrompt(cmd.Context(), enhancePrompt)
	if err != nil {
		return exitWithCode(err)
	}

	if IsJSONOutput() {
		return printJSON(map[string]string{"prompt": enhanced})
	}
	fmt.Println(enhanced)
	return nil
}
