package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"smartreply/internal/nlp"
)

var classifyJSON bool

// classifyCmd classifies one email from a file or inline text.
var classifyCmd = &cobra.Command{
	Use:   "classify <file-or-text>",
	Short: "Classify a single email from a file or inline text",
	Long: `Classifies one email and prints the suggested reply. The argument is treated
as a .txt/.pdf file when it exists on disk, otherwise as the email text itself.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		content, sourceName, err := resolveClassifyInput(args)
		if err != nil {
			return err
		}
		if strings.TrimSpace(content) == "" {
			return fmt.Errorf("no text could be extracted from %s", sourceName)
		}

		result := appInstance.Batch.ProcessSingle(cmd.Context(), strings.TrimSpace(content), "/cli/classify")

		if classifyJSON {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		color.New(color.Bold).Printf("Classification for %s\n", sourceName)
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Categoria", "Binaria", "Confianca", "Engine", "Hash"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.Append([]string{
			result.PrimaryCategory,
			result.OverallCategory,
			fmt.Sprintf("%.3f", result.Confidence),
			result.Engine,
			result.TextHash[:12],
		})
		table.Render()

		fmt.Println()
		color.New(color.Bold).Println("Resposta sugerida:")
		fmt.Println(result.Reply)
		return nil
	},
}

// resolveClassifyInput decides between file and raw-text input: an existing
// regular file is read and extracted, anything else is the email body itself.
func resolveClassifyInput(args []string) (content, sourceName string, err error) {
	candidate := args[0]
	fi, statErr := os.Stat(candidate)
	if statErr == nil && !fi.IsDir() {
		data, readErr := os.ReadFile(candidate)
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", candidate, readErr)
		}
		return nlp.ExtractText(candidate, data), candidate, nil
	}
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return "", "", fmt.Errorf("failed to stat %s: %w", candidate, statErr)
	}
	return strings.Join(args, " "), "inline text", nil
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the result as JSON")
}
