package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tripcheck/tripcheck/internal/model"
)

var (
	settingsName      string
	settingsAvatar    string
	settingsTheme     string
	settingsLanguage  string
	settingsTextScale float64
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage user settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		s := a.store.Settings()
		fmt.Printf("Name:       %s\n", s.DisplayName)
		fmt.Printf("Avatar:     %s\n", s.Avatar)
		fmt.Printf("Theme:      %s\n", s.Theme)
		fmt.Printf("Language:   %s\n", s.Language)
		fmt.Printf("Text scale: %.2f\n", s.TextScale)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	Long: `Change one or more settings.

Example:
  tripcheck settings set --name "Roma" --language en --theme dark`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		if settingsTheme != "" && settingsTheme != "system" && settingsTheme != "light" && settingsTheme != "dark" {
			return fmt.Errorf("invalid theme %q, expected system, light, or dark", settingsTheme)
		}
		if settingsLanguage != "" && settingsLanguage != "en" && settingsLanguage != "ru" && settingsLanguage != "es" {
			return fmt.Errorf("invalid language %q, expected en, ru, or es", settingsLanguage)
		}

		a.store.UpdateSettings(func(s *model.Settings) {
			if cmd.Flags().Changed("name") {
				s.DisplayName = settingsName
			}
			if cmd.Flags().Changed("avatar") {
				s.Avatar = settingsAvatar
			}
			if settingsTheme != "" {
				s.Theme = model.Theme(settingsTheme)
			}
			if settingsLanguage != "" {
				s.Language = model.Language(settingsLanguage)
			}
			if cmd.Flags().Changed("text-scale") {
				s.TextScale = settingsTextScale
			}
		})
		fmt.Println("Settings updated")
		return nil
	},
}

func init() {
	settingsSetCmd.Flags().StringVar(&settingsName, "name", "", "display name")
	settingsSetCmd.Flags().StringVar(&settingsAvatar, "avatar", "", "avatar symbol name")
	settingsSetCmd.Flags().StringVar(&settingsTheme, "theme", "", "theme (system, light, dark)")
	settingsSetCmd.Flags().StringVar(&settingsLanguage, "language", "", "language (en, ru, es)")
	settingsSetCmd.Flags().Float64Var(&settingsTextScale, "text-scale", 1.0, "text scale (0.9-1.3)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
