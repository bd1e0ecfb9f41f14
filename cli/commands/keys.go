package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/petal-labs/facet/cli/config"
	"github.com/petal-labs/facet/cli/keystore"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the Gemini API key",
	Long:  `Manage the stored Gemini API key. The key file lives in the facet configuration directory with owner-only permissions.`,
}

var keysSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the API key",
	Long:  `Store the Gemini API key. The key will be prompted without echo for security.`,
	RunE:  runKeysSet,
}

var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether an API key is stored",
	Long:  `Report whether an API key is stored and where. The key value itself is never printed.`,
	RunE:  runKeysShow,
}

var keysDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the stored API key",
	RunE:  runKeysDelete,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysSetCmd)
	keysCmd.AddCommand(keysShowCmd)
	keysCmd.AddCommand(keysDeleteCmd)
}

func runKeysSet(cmd *cobra.Command, args []string) error {
	fmt.Print("Enter Gemini API key: ")

	// Read without echo if terminal
	var apiKey string
	if term.IsTerminal(int(os.Stdin.Fd())) {
		keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
		apiKey = string(keyBytes)
		fmt.Println() // Newline after hidden input
	} else {
		// Fallback for non-terminal (e.g., piped input)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
		apiKey = strings.TrimSpace(line)
	}

	if apiKey == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	ks := keystore.NewFileKeystore(config.DefaultKeyPath())
	if err := ks.Set(apiKey); err != nil {
		return fmt.Errorf("failed to store key: %w", err)
	}

	fmt.Println("API key stored.")
	return nil
}

func runKeysShow(cmd *cobra.Command, args []string) error {
	ks := keystore.NewFileKeystore(config.DefaultKeyPath())

	_, err := ks.Get()
	if errors.Is(err, keystore.ErrKeyNotFound) {
		fmt.Println("No API key stored.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}

	fmt.Printf("API key stored at %s\n", ks.Path())
	return nil
}

func runKeysDelete(cmd *cobra.Command, args []string) error {
	ks := keystore.NewFileKeystore(config.DefaultKeyPath())
	if err := ks.Delete(); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	fmt.Println("API key deleted.")
	return nil
}

// resolveAPIKey picks the API key by precedence: flag, environment, key file.
func resolveAPIKey() (string, error) {
	if apiKeyFlag != "" {
		return apiKeyFlag, nil
	}
	if key := os.Getenv("FACET_API_KEY"); key != "" {
		return key, nil
	}

	ks := keystore.NewFileKeystore(config.DefaultKeyPath())
	key, err := ks.Get()
	if errors.Is(err, keystore.ErrKeyNotFound) {
		return "", errNoAPIKey
	}
	if err != nil {
		return "", err
	}
	return key, nil
}
