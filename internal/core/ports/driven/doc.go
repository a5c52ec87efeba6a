// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - VectorStore: Chunk persistence and similarity search (SQLite)
//   - EmbeddingService: Generates vector embeddings (Ollama)
//   - Generator: Produces answers from assembled prompts (claude CLI)
//   - RecordWatcher: Watches the record directory for changes (fsnotify)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
