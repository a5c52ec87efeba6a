package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// batchHeader is the output CSV column layout.
var batchHeader = []string{"id", "question", "ai_answer", "sources", "timestamp"}

// batchQuestion is one input row. ID is optional; blank questions are
// skipped during processing.
type batchQuestion struct {
	id       string
	question string
}

// runBatch answers every question in the input CSV and writes the results.
func runBatch(cmd *cobra.Command, ctx context.Context, inputPath, outputPath string) error {
	questions, err := readQuestions(inputPath)
	if err != nil {
		return err
	}
	timestamp := time.Now().Format("2006-01-02 15:04")

	cmd.Printf("Processing %d questions...\n\n", len(questions))

	records := [][]string{batchHeader}
	for i, q := range questions {
		if strings.TrimSpace(q.question) == "" {
			continue
		}

		cmd.Printf("[%d/%d] %s...\n", i+1, len(questions), truncate(q.question, 60))
		answer, err := answerService.Ask(ctx, q.question)
		if err != nil {
			return friendlyAskError(err)
		}

		id := q.id
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		records = append(records, []string{
			id,
			q.question,
			answer.Answer,
			strings.Join(topSources(answer.Sources), " | "),
			timestamp,
		})
	}

	if err := writeAnswers(outputPath, records); err != nil {
		return err
	}
	cmd.Printf("\nDone. %d answers written to %s\n", len(records)-1, outputPath)
	return nil
}

// readQuestions parses the input CSV. The question column may be named
// "question" or "Question"; an "id" column is carried through when present.
func readQuestions(path string) ([]batchQuestion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	questionCol, idCol := -1, -1
	for i, name := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "question":
			questionCol = i
		case "id":
			idCol = i
		}
	}
	if questionCol < 0 {
		return nil, fmt.Errorf("%s has no question column", path)
	}

	questions := make([]batchQuestion, 0, len(rows)-1)
	for _, row := range rows[1:] {
		q := batchQuestion{}
		if questionCol < len(row) {
			q.question = row[questionCol]
		}
		if idCol >= 0 && idCol < len(row) {
			q.id = row[idCol]
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func writeAnswers(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// truncate shortens a string to max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
