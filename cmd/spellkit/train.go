package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"spellkit/internal/corrector"
)

var (
	corpusPath string
	countsPath string
	outDir     string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a model from a sentence corpus or a word-frequency file",
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&corpusPath, "corpus", "", "text file with one training sentence per line")
	trainCmd.Flags().StringVar(&countsPath, "counts", "", "dictionary file with 'word count' per line")
	trainCmd.Flags().StringVar(&outDir, "out", "", "output directory for the model (default from config)")
}

func runTrain(cmd *cobra.Command, args []string) error {
	if (corpusPath == "") == (countsPath == "") {
		return errors.New("exactly one of --corpus or --counts is required")
	}

	engineOpts, err := cfg.engineOptions()
	if err != nil {
		return err
	}
	model, err := corrector.New(cfg.Language, nil, engineOpts...)
	if err != nil {
		return err
	}

	if corpusPath != "" {
		sentences, err := readLines(corpusPath)
		if err != nil {
			return err
		}
		if err := model.TrainFromCorpus(sentences); err != nil {
			return err
		}
	} else {
		counts, err := readCounts(countsPath)
		if err != nil {
			return err
		}
		if err := model.TrainFromCounts(counts); err != nil {
			return err
		}
	}

	dir := outDir
	if dir == "" {
		dir = cfg.ModelDir
	}
	path, err := model.Save(dir)
	if err != nil {
		return err
	}
	fmt.Printf("model saved to %s\n", path)
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, s.Err()
}

// readCounts parses a 'word count' dictionary file, tolerating float
// counts and skipping malformed lines.
func readCounts(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	counts := make(map[string]int)
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		word := strings.ToLower(parts[0])
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			if fv, err2 := strconv.ParseFloat(parts[1], 64); err2 == nil {
				count = int(fv)
			} else {
				continue
			}
		}
		counts[word] = count
	}
	return counts, s.Err()
}
