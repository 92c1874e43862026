package main

// ragbot is a small retrieval-augmented question bot over a folder of text
// and markdown documents, with embeddings kept durable in a SQLite file.
func main() {
	Execute()
}
