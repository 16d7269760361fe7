package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"outreach-responder/internal/logger"
	"outreach-responder/internal/personalize"
	"outreach-responder/internal/profile"
	"outreach-responder/internal/prospect"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the assembled personalization data for one prospect without calling any API",
	Run: func(cmd *cobra.Command, _ []string) {
		preview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("prospect", "p", "", "name or email of the prospect to preview")
}

func preview(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	sender, err := profile.Load(config.ProfileFile)
	if err != nil {
		logger.Fatal("loading sender profile", zap.Error(err))
	}

	prospects, err := prospect.FromFile(config.ProspectsFile)
	if err != nil {
		logger.Fatal("loading prospects", zap.Error(err))
	}

	selector := cmd.Flag("prospect").Value.String()
	target := prospects.FindByEmail(selector)
	if target == nil {
		target = prospects.FindByName(selector)
	}
	if target == nil {
		logger.Fatal("prospect not found",
			zap.String("prospect", selector),
			zap.Int("available", prospects.Len()),
		)
	}

	linkedin := loadLinkedIn(config, logger)
	analysis := loadAnalysis(config, logger)

	data := personalize.Assemble(personalize.Inputs{
		Prospect: target,
		LinkedIn: linkedin[target.Email],
		Analysis: analysis,
		Sender:   sender,
	})

	pretty, _ := json.MarshalIndent(map[string]any{
		"data":     data.ToMap(),
		"sections": data.Sections(),
		"email":    personalize.RenderTemplate(personalize.DefaultEmailTemplate, data.ToMap()),
	}, "", "  ")

	fmt.Println(string(pretty))
}
