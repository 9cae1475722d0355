package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/llm"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/questiongen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for a category (no database)",
	Long: `Generate and interactively answer questions for a specific category.

This is a stateless developer tool: no database, no mastery tracking, no
events. Useful for evaluating question quality before stocking the bank.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("category", "", "Category ID (required)")
	previewCmd.Flags().String("difficulty", "medium", "Difficulty bucket: easy, medium, or hard")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("category")
}

func runPreview(cmd *cobra.Command, args []string) error {
	catVal, _ := cmd.Flags().GetString("category")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	cat, err := catalog.GetCategory(catVal)
	if err != nil {
		return err
	}

	difficulty := questiongen.Difficulty(strings.ToLower(diffVal))
	if !questiongen.ValidDifficulty(difficulty) {
		return fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", diffVal)
	}

	// No EventRepo: preview calls are not logged.
	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Category: %s (%s)\n", cat.Name, difficulty)
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct int
	var priorQuestions []string

	for i := 1; i <= count; i++ {
		q, err := gen.Generate(ctx, questiongen.GenerateInput{
			Category:       cat,
			Difficulty:     difficulty,
			PriorQuestions: priorQuestions,
		})
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}

		priorQuestions = append(priorQuestions, q.Prompt)

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(q.Prompt)
		for j, c := range q.Choices {
			fmt.Printf("  %d) %s\n", j+1, c)
		}

		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if previewAnswerCorrect(answer, q) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}

		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}

// previewAnswerCorrect accepts either a choice number or the answer text.
func previewAnswerCorrect(answer string, q *questiongen.Question) bool {
	if n, err := strconv.Atoi(answer); err == nil {
		return n >= 1 && n <= len(q.Choices) && q.Choices[n-1] == q.Answer
	}
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.Answer))
}
