package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jismyseban/MINI-RAG-BOT/chunker"
	"github.com/jismyseban/MINI-RAG-BOT/embedder"
	"github.com/jismyseban/MINI-RAG-BOT/rag"
	"github.com/jismyseban/MINI-RAG-BOT/store"
)

var rootCmd = &cobra.Command{
	Use:   "ragbot",
	Short: "ragbot — retrieval-augmented Q&A over a folder of documents",
	Long: `ragbot maintains a SQLite-backed vector index over the text and
markdown files in a source folder and answers questions grounded on the
retrieved chunks. Re-indexing is incremental: only new or changed files
are re-embedded.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("data", "data", "source document folder")
	rootCmd.PersistentFlags().String("db", "db/embeddings.db", "SQLite database file")
	rootCmd.PersistentFlags().Int("chunk-window", chunker.DefaultWindow, "words per chunk")

	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("chunk_window", rootCmd.PersistentFlags().Lookup("chunk-window"))
}

func initConfig() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	viper.SetDefault("embedding_model", "text-embedding-3-small")
	viper.SetDefault("chat_model", "gpt-4o-mini")
	viper.SetDefault("top_k", 5)
	viper.SetDefault("threshold", 0.50)

	viper.SetEnvPrefix("RAGBOT")
	viper.AutomaticEnv()
}

func apiKey() (string, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not set (environment or .env)")
	}
	return key, nil
}

// openEngine wires the store and embedding client into a rag.Engine. The
// caller owns the returned engine and must Close it.
func openEngine() (*rag.Engine, error) {
	key, err := apiKey()
	if err != nil {
		return nil, err
	}
	emb, err := embedder.NewOpenAI(key, viper.GetString("embedding_model"))
	if err != nil {
		return nil, err
	}
	st, err := store.Open(viper.GetString("db"))
	if err != nil {
		return nil, err
	}
	eng, err := rag.New(st, emb, rag.WithChunkWindow(viper.GetInt("chunk_window")))
	if err != nil {
		st.Close()
		return nil, err
	}
	return eng, nil
}
