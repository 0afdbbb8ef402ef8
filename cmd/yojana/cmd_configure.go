package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nishant/yojana/pkg/config"
)

func newConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Set up a provider and API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := configPath()
			if err != nil {
				return err
			}
			cfg, err := loadConfigAt(cfgPath)
			if err != nil {
				return err
			}

			reader := bufio.NewReader(os.Stdin)

			name := prompt(reader, fmt.Sprintf("Provider [%s]", config.DefaultProviderName))
			if name == "" {
				name = config.DefaultProviderName
			}

			existing := cfg.Providers[name]

			model := prompt(reader, "Model (empty for provider default)")
			baseURL := prompt(reader, "Base URL (empty for provider default)")

			fmt.Print("API key (input hidden): ")
			keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read API key: %w", err)
			}
			key := strings.TrimSpace(string(keyBytes))
			if key == "" {
				key = existing.APIKey
			}

			cfg.Providers[name] = config.ProviderConfig{
				APIKey:  key,
				Model:   model,
				BaseURL: baseURL,
				Enabled: true,
			}

			if err := cfg.Save(cfgPath); err != nil {
				return err
			}
			fmt.Printf("Saved provider %q to %s\n", name, cfgPath)
			return nil
		},
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
