package main

import (
	"encoding/json"
	"fmt"
	"os"

	"sitebuilder/internal/app"
	"sitebuilder/internal/domain/resume"
	"sitebuilder/internal/infrastructure/upload"

	"github.com/spf13/cobra"
)

var (
	parseDesiredSkills string
	parseVocabulary    string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume file and score it against desired skills",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseDesiredSkills, "desired-skills", "", "comma separated skills to score against")
	parseCmd.Flags().StringVar(&parseVocabulary, "skills", "", "comma separated skill vocabulary (overrides RESUME_SKILLS)")
	rootCmd.AddCommand(parseCmd)
}

type parseOutput struct {
	Parsed resume.ParsedResume `json:"parsed"`
	Score  resume.ScoreResult  `json:"score"`
}

// runParse scores with the same RESUME_* settings the server uses.
func runParse(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if parseVocabulary != "" {
		cfg.Resume.Skills = parseVocabulary
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}

	parser, scorer := app.NewResumeEngine(cfg.Resume)
	parsed := parser.Parse(upload.ExtractText(data))
	score := scorer.Score(parsed, resume.SplitDesiredSkills(parseDesiredSkills))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(parseOutput{Parsed: parsed, Score: score})
}
