package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jismyseban/MINI-RAG-BOT/llm"
	"github.com/jismyseban/MINI-RAG-BOT/rag"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question grounded on the indexed documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine()
		if err != nil {
			return err
		}
		defer eng.Close()
		if err := eng.Load(cmd.Context()); err != nil {
			return err
		}

		chat, err := chatClient()
		if err != nil {
			return err
		}

		start := time.Now()
		answer, used, err := answerQuestion(cmd.Context(), eng, chat, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if answer == "" {
			fmt.Println("No relevant information found.")
			return nil
		}

		fmt.Println(answer)
		fmt.Println()
		color.Yellow("Sources:")
		for _, r := range used {
			fmt.Printf("  %s (score: %.2f)\n    %s\n", r.Source, r.Score, snippet(r.Chunk))
		}
		fmt.Printf("took %.2fs\n", time.Since(start).Seconds())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func chatClient() (*llm.Client, error) {
	key, err := apiKey()
	if err != nil {
		return nil, err
	}
	return llm.New(key, viper.GetString("chat_model"))
}

// answerQuestion retrieves grounding chunks for the question and asks the
// chat model to compose an answer from them. Results below the score
// threshold are dropped; when nothing clears it, the single best match is
// used. An empty answer string means nothing was retrieved at all.
func answerQuestion(ctx context.Context, eng *rag.Engine, chat *llm.Client, question string) (string, []rag.Result, error) {
	retrieved, err := eng.Query(ctx, question, viper.GetInt("top_k"))
	if err != nil {
		return "", nil, err
	}
	if len(retrieved) == 0 {
		return "", nil, nil
	}

	used := filterByThreshold(retrieved, viper.GetFloat64("threshold"))

	chunks := make([]string, len(used))
	for i, r := range used {
		chunks[i] = r.Chunk
	}
	answer, err := chat.Answer(ctx, question, llm.Grounding(chunks))
	if err != nil {
		return "", nil, err
	}
	return answer, used, nil
}

// filterByThreshold keeps results at or above the threshold, falling back
// to the single best match when none clear it.
func filterByThreshold(results []rag.Result, threshold float64) []rag.Result {
	var kept []rag.Result
	for _, r := range results {
		if r.Score >= threshold {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 && len(results) > 0 {
		kept = results[:1]
	}
	return kept
}

// snippet renders the first 80 characters of a chunk on one line.
func snippet(chunk string) string {
	s := strings.ReplaceAll(chunk, "\n", " ")
	if len(s) > 80 {
		s = s[:80] + "..."
	}
	return s
}
