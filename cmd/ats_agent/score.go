package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/ats-scorer/internal/fetch"
	"github.com/jonathan/ats-scorer/internal/jobdesc"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/skills"
	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Score a JSON Resume file against a job description supplied as a text file, HTML file, or posting URL, and print the score report as JSON.",
	RunE:  runScore,
}

var (
	scoreResumeFile     string
	scoreJobFile        string
	scoreJobHTMLFile    string
	scoreJobURL         string
	scoreJobTitle       string
	scoreRequiredSkills []string
	scoreMinYears       int
	scoreMaxYears       int
	scoreDictionary     string
	scoreOutputFile     string
	scoreVerbose        bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreResumeFile, "resume", "", "Path to a JSON Resume candidate profile (required)")
	scoreCmd.Flags().StringVar(&scoreJobFile, "job", "", "Path to a plain-text job description")
	scoreCmd.Flags().StringVar(&scoreJobHTMLFile, "job-html", "", "Path to a saved job posting HTML file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL of a job posting to fetch")
	scoreCmd.Flags().StringVar(&scoreJobTitle, "title", "", "Job title (optional)")
	scoreCmd.Flags().StringSliceVar(&scoreRequiredSkills, "required-skills", nil, "Explicit required skills, comma separated (overrides detection)")
	scoreCmd.Flags().IntVar(&scoreMinYears, "min-years", 0, "Minimum years of experience (overrides extraction)")
	scoreCmd.Flags().IntVar(&scoreMaxYears, "max-years", 0, "Maximum years of experience (overrides extraction)")
	scoreCmd.Flags().StringVar(&scoreDictionary, "dictionary", "", "Path to a JSON skill dictionary override")

	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to write the score report JSON (defaults to stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print formatted progress boxes to stderr")

	_ = scoreCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	sources := 0
	for _, s := range []string{scoreJobFile, scoreJobHTMLFile, scoreJobURL} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("one of --job, --job-html, or --job-url must be provided")
	}
	if sources > 1 {
		return fmt.Errorf("--job, --job-html, and --job-url are mutually exclusive")
	}

	candidate, err := loadCandidateProfile(scoreResumeFile)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(cmd.Context())
	if err != nil {
		return err
	}

	jd := &types.JobDescription{
		Title:          scoreJobTitle,
		Description:    jobText,
		RequiredSkills: scoreRequiredSkills,
		MinExperience:  scoreMinYears,
		MaxExperience:  scoreMaxYears,
	}

	dict, err := loadDictionary(scoreDictionary)
	if err != nil {
		return err
	}

	result := scoring.New(dict).Score(candidate, jd)

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobDescription(jd)
		printer.PrintScoreReport(result)
		printer.PrintGaps(result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score report: %w", err)
	}

	if scoreOutputFile != "" {
		if err := os.WriteFile(scoreOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Score: %d\n", result.Overall)
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", scoreOutputFile)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

// loadCandidateProfile reads and schema-validates a JSON Resume file.
func loadCandidateProfile(path string) (*types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("resume file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateCandidateProfile(content); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("resume does not validate against schema: %w", err)
		}
		return nil, fmt.Errorf("failed to validate resume: %w", err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(content, &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	return &candidate, nil
}

// loadJobText resolves the job description text from whichever source flag was set.
func loadJobText(ctx context.Context) (string, error) {
	switch {
	case scoreJobFile != "":
		content, err := os.ReadFile(scoreJobFile)
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("job file not found: %s", scoreJobFile)
			}
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return jobdesc.CleanText(string(content)), nil

	case scoreJobHTMLFile != "":
		content, err := os.ReadFile(scoreJobHTMLFile)
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("job HTML file not found: %s", scoreJobHTMLFile)
			}
			return "", fmt.Errorf("failed to read job HTML file: %w", err)
		}
		text, err := fetch.PostingText(string(content))
		if err != nil {
			return "", fmt.Errorf("failed to extract posting text: %w", err)
		}
		return jobdesc.CleanText(text), nil

	default:
		if !strings.HasPrefix(scoreJobURL, "http://") && !strings.HasPrefix(scoreJobURL, "https://") {
			return "", fmt.Errorf("invalid URL: %s", scoreJobURL)
		}
		result, err := fetch.URL(ctx, scoreJobURL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		text, err := fetch.PostingText(result.HTML)
		if err != nil {
			return "", fmt.Errorf("failed to extract posting text: %w", err)
		}
		return jobdesc.CleanText(text), nil
	}
}

func loadDictionary(path string) (*skills.Dictionary, error) {
	if path == "" {
		path = os.Getenv("ATS_DICTIONARY")
	}
	if path == "" {
		return skills.Default(), nil
	}
	dict, err := skills.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return dict, nil
}
