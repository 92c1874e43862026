package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const helpText = `Mini RAG Bot

/ask <question>   answer from the indexed documents
/summarize        summarize your last 3 questions
/help             show this message
/quit             exit`

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive session with /ask, /summarize, and /help",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine()
		if err != nil {
			return err
		}
		defer eng.Close()

		// Bring the index up to date before serving, like the one-shot
		// startup sync. The corpus changed, so the cache goes with it.
		if _, err := eng.Sync(cmd.Context(), viper.GetString("data")); err != nil {
			return err
		}
		eng.ClearCache()

		chat, err := chatClient()
		if err != nil {
			return err
		}

		hist := newHistory(3)
		fmt.Println(helpText)
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "":
				continue
			case line == "/quit":
				return nil
			case line == "/help":
				fmt.Println(helpText)
			case line == "/summarize":
				recent := hist.recent()
				if len(recent) == 0 {
					fmt.Println("No recent questions.")
					continue
				}
				summary, err := chat.Summarize(cmd.Context(), recent)
				if err != nil {
					color.Red("error: %v", err)
					continue
				}
				fmt.Printf("Summary:\n%s\n", summary)
			case strings.HasPrefix(line, "/ask"):
				question := strings.TrimSpace(strings.TrimPrefix(line, "/ask"))
				if question == "" {
					fmt.Println("Usage: /ask <question>")
					continue
				}
				hist.add(question)
				answer, used, err := answerQuestion(cmd.Context(), eng, chat, question)
				if err != nil {
					color.Red("error: %v", err)
					continue
				}
				if answer == "" {
					fmt.Println("No relevant information found.")
					continue
				}
				fmt.Println(answer)
				for _, r := range used {
					color.Cyan("  %s (score: %.2f)", r.Source, r.Score)
				}
			default:
				fmt.Println("Unknown command; try /help.")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
