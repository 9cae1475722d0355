package cmd

import (
	"fmt"
	"strings"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/llm"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/questiongen"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate trivia questions and add them to the bank",
	Long: `Generate questions with the configured LLM provider and save the ones
that pass validation. Without --category every catalog category is stocked.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringSlice("category", nil, "Category IDs to stock (default: all)")
	generateCmd.Flags().String("difficulty", "medium", "Difficulty bucket: easy, medium, or hard")
	generateCmd.Flags().Int("count", 10, "Questions to generate per category")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	catIDs, _ := cmd.Flags().GetStringSlice("category")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	difficulty := questiongen.Difficulty(strings.ToLower(diffVal))
	if !questiongen.ValidDifficulty(difficulty) {
		return fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", diffVal)
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	var cats []catalog.Category
	if len(catIDs) == 0 {
		cats = catalog.AllCategories()
	} else {
		for _, id := range catIDs {
			c, err := catalog.GetCategory(id)
			if err != nil {
				return err
			}
			cats = append(cats, c)
		}
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())
	ingestor := questiongen.NewIngestor(gen, st.QuestionRepo())

	var totalGenerated, totalSkipped int
	for _, cat := range cats {
		fmt.Printf("%-24s ", cat.Name)
		res, err := ingestor.Stock(ctx, cat, difficulty, count)
		totalGenerated += res.Generated
		totalSkipped += res.Skipped
		if err != nil {
			fmt.Printf("+%d question(s), stopped: %v\n", res.Generated, err)
			continue
		}
		fmt.Printf("+%d question(s)", res.Generated)
		if res.Skipped > 0 {
			fmt.Printf(" (%d rejected)", res.Skipped)
		}
		fmt.Println()
	}

	fmt.Printf("\nGenerated %d question(s), rejected %d\n", totalGenerated, totalSkipped)
	return nil
}
