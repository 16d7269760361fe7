package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"outreach-responder/internal/ai"
	"outreach-responder/internal/ai/gemini"
	"outreach-responder/internal/filtering"
	"outreach-responder/internal/logger"
	"outreach-responder/internal/personalize"
	"outreach-responder/internal/profile"
	"outreach-responder/internal/prospect"
	"outreach-responder/internal/secrets"
	"outreach-responder/internal/store"
	"outreach-responder/internal/utils"
)

const (
	PromptYes             = "Yes"
	PromptNo              = "No"
	PromptReportByCompany = "Report by company"
	PromptPreviewEmails   = "Preview emails"
	PromptProspectsToFile = "Dump prospects to file"
	defaultSubject        = "Reaching out about {prospect_company}"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptYes, PromptNo, PromptReportByCompany, PromptPreviewEmails, PromptProspectsToFile},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the outreach-responder main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before generating emails")
	runCmd.Flags().StringP("contacted-file", "e", "", "special file with already contacted prospects to exclude. Default is unset.")

	viper.BindPFlag("contacted-file", runCmd.Flags().Lookup("contacted-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the outreach-responder", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.ProfileFile == "" {
		logger.Fatal("sender profile path is required under profile-file to personalize emails")
	}

	sender, err := profile.Load(config.ProfileFile)
	if err != nil {
		logger.Fatal("loading sender profile", zap.Error(err))
	}

	logger.Info("loaded sender profile", zap.String("name", sender.Name), zap.String("role", sender.CurrentRole))

	prospects, err := prospect.FromFile(config.ProspectsFile)
	if err != nil {
		logger.Fatal("loading prospects", zap.Error(err))
	}

	logger.Info("loaded prospects", zap.Int("count", prospects.Len()))

	if prospects.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no prospects found"))
		return
	}

	filters := prepareFilters(config, sender)

	filtered, err := filtering.New(filters, logger).RunFilters(ctx, prospects)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	prospects = filtered

	if prospects.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no prospects left after filters"))
		return
	}

	composer, err := prepareComposer(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("AI composition unavailable, falling back to built-in template", zap.Error(err))
	}

	campaign, err := store.Open(dataDir(config))
	if err != nil {
		logger.Fatal("opening campaign log", zap.Error(err))
	}
	defer campaign.Close()

	action := PromptYes
	for {
		var err error
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		logger.Info("current list of prospects", zap.Int("count", prospects.Len()))

		if err := handleAction(ctx, action, logger, config, sender, prospects, composer, campaign); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if cmd.Flag("auto-approve").Value.String() == "true" {
			return
		}
	}
}

func handleAction(ctx context.Context, action string, logger *zap.Logger, config *Config, sender *profile.Profile, prospects *prospect.Prospects, composer ai.Composer, campaign *store.Store) error {
	switch action {
	case PromptYes:
		return generate(ctx, logger, config, sender, prospects, composer, campaign)
	case PromptNo:
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(prospects.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("prospects count", prospects.Len()))
		return nil
	case PromptPreviewEmails:
		previewEmails(logger, config, sender, prospects)
		return nil
	case PromptProspectsToFile:
		filename, err := prospects.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump prospects to file: %w", err)
		}
		logger.Info("dumping prospects to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// generate builds personalization data and an email for every prospect,
// recording each in the campaign log and pacing iterations by send-delay.
func generate(ctx context.Context, logger *zap.Logger, config *Config, sender *profile.Profile, prospects *prospect.Prospects, composer ai.Composer, campaign *store.Store) error {
	linkedin := loadLinkedIn(config, logger)
	analysis := loadAnalysis(config, logger)

	contactedPath := strings.TrimSpace(viper.GetString("contacted-file"))
	contacted, err := prospect.ContactedFromFile(contactedPath)
	if err != nil && contactedPath != "" {
		return fmt.Errorf("loading contacted file: %w", err)
	}
	if contacted == nil {
		contacted = &prospect.ContactedProspects{}
	}

	for _, target := range prospects.Items {
		already, err := campaign.HasContacted(target.Email)
		if err != nil {
			return fmt.Errorf("checking campaign log: %w", err)
		}
		if already {
			logger.Info("skipping already contacted prospect", zap.String("prospect_email", target.Email))
			continue
		}

		data := personalize.Assemble(personalize.Inputs{
			Prospect: target,
			LinkedIn: linkedin[target.Email],
			Analysis: analysis,
			Sender:   sender,
		}).ToMap()

		email, model := composeEmail(ctx, composer, data, logger)

		entry := &store.Outreach{
			ProspectName:  target.Name,
			ProspectEmail: target.Email,
			Company:       target.Company,
			Subject:       email.Subject,
			Body:          email.Body,
			Model:         model,
			Status:        store.StatusDraft,
		}

		if _, err := campaign.RecordOutreach(entry); err != nil {
			return fmt.Errorf("recording outreach: %w", err)
		}

		contacted.Add(target, "email generated")

		logger.Info("generated outreach email",
			zap.String("prospect_email", target.Email),
			zap.String("prospect_company", target.Company),
			zap.String("subject", email.Subject),
		)

		if err := utils.WaitFor(ctx, config.SendDelay); err != nil {
			return err
		}
	}

	if contactedPath != "" {
		if err := contacted.ToFile(contactedPath); err != nil {
			return fmt.Errorf("writing contacted file: %w", err)
		}
		logger.Info("updated contacted file", zap.String("filename", contactedPath))
	}

	logger.Info("successfully generated outreach emails", zap.Int("count", prospects.Len()))
	return errExit
}

// previewEmails prints the built-in template rendering for every remaining
// prospect. Nothing is recorded and no API is called.
func previewEmails(logger *zap.Logger, config *Config, sender *profile.Profile, prospects *prospect.Prospects) {
	linkedin := loadLinkedIn(config, logger)
	analysis := loadAnalysis(config, logger)

	for _, target := range prospects.Items {
		data := personalize.Assemble(personalize.Inputs{
			Prospect: target,
			LinkedIn: linkedin[target.Email],
			Analysis: analysis,
			Sender:   sender,
		}).ToMap()

		fmt.Printf("--- %s <%s>\nSubject: %s\n\n%s\n\n",
			target.Name,
			target.Email,
			personalize.RenderTemplate(defaultSubject, data),
			personalize.RenderTemplate(personalize.DefaultEmailTemplate, data),
		)
	}
}

// composeEmail prefers the AI composer and falls back to the built-in
// template when the composer is unavailable or fails.
func composeEmail(ctx context.Context, composer ai.Composer, data map[string]string, logger *zap.Logger) (*ai.Email, string) {
	if composer != nil {
		email, err := composer.Compose(ctx, data)
		if err == nil {
			return email, "gemini"
		}
		logger.Warn("AI composition failed, falling back to built-in template",
			zap.String("prospect_email", data["prospect_email"]),
			zap.Error(err),
		)
	}

	return &ai.Email{
		Subject: personalize.RenderTemplate(defaultSubject, data),
		Body:    personalize.RenderTemplate(personalize.DefaultEmailTemplate, data),
	}, "template"
}

func prepareFilters(config *Config, sender *profile.Profile) []filtering.Filter {
	var companies []string
	if config.Exclude != nil {
		companies = config.Exclude.Companies
	}

	minScore := 0.0
	if config.Relevance != nil {
		minScore = config.Relevance.MinimumScore
	}

	return []filtering.Filter{
		filtering.NewMissingEmail(),
		filtering.NewExcludeCompanies(companies),
		filtering.NewContactedFile(viper.GetString("contacted-file")),
		filtering.NewRelevanceThreshold(minScore, sender),
	}
}

func prepareComposer(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Composer, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewComposer(generator, cfg.Gemini.MaxLogLength, genLogger), nil
}

func loadLinkedIn(config *Config, logger *zap.Logger) map[string]*prospect.LinkedInProfile {
	if config.LinkedInFile == "" {
		return nil
	}

	profiles, err := prospect.LinkedInFromFile(config.LinkedInFile)
	if err != nil {
		logger.Warn("skipping linkedin data", zap.Error(err))
		return nil
	}

	return profiles
}

func loadAnalysis(config *Config, logger *zap.Logger) personalize.AnalysisSource {
	if config.ProductContextFile == "" {
		return personalize.AnalysisSource{}
	}

	analysis, err := personalize.AnalysisFromFile(config.ProductContextFile)
	if err != nil {
		logger.Warn("skipping product context", zap.Error(err))
		return personalize.AnalysisSource{}
	}

	return analysis
}

func dataDir(config *Config) string {
	if config.DataDir != "" {
		return config.DataDir
	}
	return ".outreach-responder"
}
