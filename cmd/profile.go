package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"outreach-responder/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the sender profile",
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sender profile interactively",
	Run: func(cmd *cobra.Command, _ []string) {
		path := cmd.Flag("file").Value.String()

		if _, err := os.Stat(path); err == nil && cmd.Flag("force").Value.String() != "true" {
			log.Fatalf("profile file %q already exists, pass --force to overwrite", path)
		}

		p, err := profile.RunWizard()
		if err != nil {
			log.Fatalf("running profile wizard: %v", err)
		}

		if err := p.Save(path); err != nil {
			log.Fatalf("saving profile: %v", err)
		}

		fmt.Printf("profile saved to %s\n", path)
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the sender profile as markdown",
	Run: func(cmd *cobra.Command, _ []string) {
		p, err := profile.Load(cmd.Flag("file").Value.String())
		if err != nil {
			log.Fatalf("loading profile: %v", err)
		}

		fmt.Print(p.Markdown())
	},
}

var profileValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the sender profile file",
	Run: func(cmd *cobra.Command, _ []string) {
		path := cmd.Flag("file").Value.String()
		if _, err := profile.Load(path); err != nil {
			log.Fatalf("profile %q is invalid: %v", path, err)
		}

		fmt.Printf("profile %s is valid\n", path)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	for _, sub := range []*cobra.Command{profileInitCmd, profileShowCmd, profileValidateCmd} {
		sub.Flags().StringP("file", "f", "profile.yaml", "path to the profile file")
		profileCmd.AddCommand(sub)
	}

	profileInitCmd.Flags().Bool("force", false, "overwrite an existing profile file")
}
