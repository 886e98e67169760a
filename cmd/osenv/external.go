package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sonnet007/AppManager/internal/environ"
	"github.com/sonnet007/AppManager/internal/users"
)

var (
	externalUser    int
	externalPackage string
	externalType    string
)

// externalCmd shows the external-storage layout for one user.
var externalCmd = &cobra.Command{
	Use:   "external",
	Short: "Show external-storage paths for a user",
	Long: `Show the external-storage volume roots reachable by a user, and the
application directories derived from them.

Without --user the ambient current user is used. With --package the
Android/data, Android/media and Android/obb subtrees for that package are
printed as well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ue := environ.NewUserEnvironment(environ.UserHandle(externalUser))

		volumes := ue.ExternalDirs()
		fmt.Println(titleStyle.Render(fmt.Sprintf("External volumes for user %s", ue.User())))
		for i, volume := range volumes {
			label := fmt.Sprintf("volume %d", i)
			if i == 0 {
				label = "primary"
			}
			fmt.Println(nameStyle.Render(label) + pathStyle.Render(volume))
		}

		if externalType != "" {
			dirs, err := ue.PublicDirs(externalType)
			if err != nil {
				return fmt.Errorf("public dirs: %w", err)
			}
			fmt.Println()
			fmt.Println(titleStyle.Render("Public " + externalType))
			for _, dir := range dirs {
				fmt.Println(pathStyle.Render("  " + dir))
			}
		}

		if externalPackage == "" {
			return nil
		}

		sections := []struct {
			name string
			dirs func(string) ([]string, error)
		}{
			{"data", ue.AppDataDirs},
			{"media", ue.AppMediaDirs},
			{"obb", ue.AppObbDirs},
			{"files", ue.AppFilesDirs},
			{"cache", ue.AppCacheDirs},
		}
		fmt.Println()
		fmt.Println(titleStyle.Render("Application directories for " + externalPackage))
		for _, section := range sections {
			dirs, err := section.dirs(externalPackage)
			if err != nil {
				return fmt.Errorf("%s dirs: %w", section.name, err)
			}
			for _, dir := range dirs {
				fmt.Println(nameStyle.Render(section.name) + pathStyle.Render(dir))
			}
		}
		return nil
	},
}

func init() {
	externalCmd.Flags().IntVarP(&externalUser, "user", "u", users.Current(), "user handle to resolve for")
	externalCmd.Flags().StringVarP(&externalPackage, "package", "p", "", "package name to derive app directories for")
	externalCmd.Flags().StringVarP(&externalType, "type", "t", "", "well-known public directory type (e.g. Download)")
	rootCmd.AddCommand(externalCmd)
}
