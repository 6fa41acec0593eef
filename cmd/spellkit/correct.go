package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"spellkit/internal/corrector"
)

var modelPath string

var correctCmd = &cobra.Command{
	Use:   "correct [text]",
	Short: "Correct a text given as argument, or lines from stdin",
	RunE:  runCorrect,
}

func init() {
	correctCmd.Flags().StringVar(&modelPath, "model", "", "path to a saved model file (default from config)")
}

func loadModel() (*corrector.SpellCorrector, error) {
	path := modelPath
	if path == "" {
		path = filepath.Join(cfg.ModelDir, "model.gob")
	}
	model, err := corrector.Load(path, nil)
	if err != nil {
		return nil, err
	}
	if warn := model.LoadWarning(); warn != "" {
		fmt.Fprintln(os.Stderr, color.YellowString("warning: %s", warn))
	}
	return model, nil
}

func runCorrect(cmd *cobra.Command, args []string) error {
	model, err := loadModel()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		printResult(model.CorrectText(strings.Join(args, " ")))
		return nil
	}

	s := bufio.NewScanner(os.Stdin)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		printResult(model.CorrectText(line))
	}
	if err := s.Err(); err != nil {
		return errors.New("reading stdin: " + err.Error())
	}
	return nil
}

// formatResult highlights only the tokens that actually changed, by
// comparing the corrected text position by position with the cleaned
// input; an identical word that was never corrected stays plain.
func formatResult(res corrector.CorrectionResult) string {
	highlight := color.New(color.FgGreen, color.Bold)
	origFields := strings.Fields(corrector.CleanText(res.Original))
	fields := strings.Fields(res.Corrected)
	for i, f := range fields {
		if i < len(origFields) && origFields[i] != f {
			fields[i] = highlight.Sprint(f)
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(fields, " "))
	for orig, repl := range res.Corrections {
		sb.WriteString(fmt.Sprintf("\n  %s -> %s", color.RedString(orig), color.GreenString(repl)))
	}
	return sb.String()
}

func printResult(res corrector.CorrectionResult) {
	fmt.Println(formatResult(res))
}
