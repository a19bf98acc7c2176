package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/ats-scorer/internal/fetch"
	"github.com/jonathan/ats-scorer/internal/jobdesc"
	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/spf13/cobra"
)

var extractJobCmd = &cobra.Command{
	Use:   "extract-job",
	Short: "Extract a structured job description from a posting",
	Long:  "Fetch or read a job posting, clean the text, and print a structured job description JSON with detected skills and experience requirements.",
	RunE:  runExtractJob,
}

var (
	extractTextFile   string
	extractHTMLFile   string
	extractURL        string
	extractTitle      string
	extractOutputFile string
	extractDictionary string
)

func init() {
	extractJobCmd.Flags().StringVar(&extractTextFile, "text-file", "", "Path to a plain-text job posting")
	extractJobCmd.Flags().StringVar(&extractHTMLFile, "html-file", "", "Path to a saved job posting HTML file")
	extractJobCmd.Flags().StringVar(&extractURL, "url", "", "URL of a job posting to fetch")
	extractJobCmd.Flags().StringVar(&extractTitle, "title", "", "Job title (optional)")
	extractJobCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to write the job description JSON (defaults to stdout)")
	extractJobCmd.Flags().StringVar(&extractDictionary, "dictionary", "", "Path to a JSON skill dictionary override")

	rootCmd.AddCommand(extractJobCmd)
}

func runExtractJob(cmd *cobra.Command, _ []string) error {
	sources := 0
	for _, s := range []string{extractTextFile, extractHTMLFile, extractURL} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("one of --text-file, --html-file, or --url must be provided")
	}
	if sources > 1 {
		return fmt.Errorf("--text-file, --html-file, and --url are mutually exclusive")
	}

	var rawText string

	switch {
	case extractTextFile != "":
		content, err := os.ReadFile(extractTextFile)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", extractTextFile)
			}
			return fmt.Errorf("failed to read text file: %w", err)
		}
		rawText = string(content)

	case extractHTMLFile != "":
		content, err := os.ReadFile(extractHTMLFile)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", extractHTMLFile)
			}
			return fmt.Errorf("failed to read HTML file: %w", err)
		}
		rawText, err = fetch.PostingText(string(content))
		if err != nil {
			return fmt.Errorf("failed to extract posting text: %w", err)
		}

	default:
		if !strings.HasPrefix(extractURL, "http://") && !strings.HasPrefix(extractURL, "https://") {
			return fmt.Errorf("invalid URL: %s", extractURL)
		}
		result, err := fetch.URL(cmd.Context(), extractURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		rawText, err = fetch.PostingText(result.HTML)
		if err != nil {
			return fmt.Errorf("failed to extract posting text: %w", err)
		}
	}

	cleaned := jobdesc.CleanText(rawText)

	dict, err := loadDictionary(extractDictionary)
	if err != nil {
		return err
	}

	expRange := jobdesc.ExtractExperienceRange(cleaned)
	split := jobdesc.ClassifySkills(cleaned, nil, dict)

	jd := &types.JobDescription{
		Title:          extractTitle,
		Description:    cleaned,
		RequiredSkills: split.Critical,
		MinExperience:  expRange.Min,
		MaxExperience:  expRange.Max,
	}

	output := struct {
		*types.JobDescription
		BonusSkills []string `json:"bonus_skills,omitempty"`
	}{jd, split.Bonus}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job description: %w", err)
	}

	if extractOutputFile != "" {
		if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully extracted job description\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
