package commands

import (
	"github.com/spf13/cobra"
)

var (
	restoreImagePath string
	restoreOutDir    string
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore an old or damaged photograph",
	Long: `Restore an old or damaged photograph: repair scratches and fading,
recover detail, and keep the subject faithful to the original.`,
	Example: `  facet restore --image grandma-1962.jpg --out ./restored`,
	RunE:    runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().StringVar(&restoreImagePath, "image", "", "photo to restore (required)")
	restoreCmd.Flags().StringVar(&restoreOutDir, "out", ".", "directory for the restored image")
	_ = restoreCmd.MarkFlagRequired("image")
}

func runRestore(cmd *cobra.Command, args []string) error {
	st, err := newStudio()
	if err != nil {
		return exitWithCode(err)
	}

	ref, err := loadImage(restoreImagePath)
	if err != nil {
		return exitWithCode(err)
	}

	sess, err := st.RestorePhoto(cmd.Context(), ref)
	if err != nil {
		return exitWithCode(err)
	}

	paths, err := writeImages(sess, restoreOutDir, "restored")
	if err != nil {
		return exitWithCode(err)
	}

	return reportSession(sess, paths)
}
