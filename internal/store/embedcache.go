package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// EmbeddingCache persists catalog embeddings between restarts so an
// unchanged FAQ document does not re-hit the embedding API. The similarity
// index itself is still rebuilt in memory on every startup.
type EmbeddingCache struct {
	db *sql.DB
}

func NewEmbeddingCache(dataSourceName string) (*EmbeddingCache, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedding cache: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping embedding cache: %w", err)
	}

	cache := &EmbeddingCache{db: db}
	if err = cache.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize embedding cache schema: %w", err)
	}
	return cache, nil
}

func (c *EmbeddingCache) Close() error {
	return c.db.Close()
}

func (c *EmbeddingCache) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS faq_embeddings (
        document TEXT PRIMARY KEY,
        embedding_json TEXT NOT NULL -- JSON-encoded []float32
    );
    `
	_, err := c.db.Exec(schema)
	return err
}

// Get returns the cached vector for a document, or false if absent.
func (c *EmbeddingCache) Get(document string) ([]float32, bool, error) {
	var embeddingJSON string
	err := c.db.QueryRow("SELECT embedding_json FROM faq_embeddings WHERE document = ?", document).Scan(&embeddingJSON)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query embedding cache: %w", err)
	}

	var embedding []float32
	if err := json.Unmarshal([]byte(embeddingJSON), &embedding); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached embedding: %w", err)
	}
	return embedding, true, nil
}

// Put stores or replaces the vector for a document.
func (c *EmbeddingCache) Put(document string, embedding []float32) error {
	embeddingJSON, err := json.Marshal(embedding)
	if err != nil {
		return fmt.Errorf("failed to encode embedding: %w", err)
	}
	_, err = c.db.Exec(
		"INSERT OR REPLACE INTO faq_embeddings (document, embedding_json) VALUES (?, ?)",
		document, string(embeddingJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to store embedding: %w", err)
	}
	return nil
}
