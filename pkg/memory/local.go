package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/kasal-project/kasal/pkg/llm"
)

// Embedder produces embedding vectors for texts. Satisfied by llm.Client.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

var _ Embedder = (llm.Client)(nil)

// localRecord is one persisted memory item.
type localRecord struct {
	Content   string                 `json:"content"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Vector    []float32              `json:"vector"`
	CreatedAt time.Time              `json:"created_at"`
}

// LocalStore is a file-backed vector store for one collection. Items are
// embedded on save and ranked by cosine similarity on search. Good enough
// for single-node default memory; Databricks backs the multi-node case.
type LocalStore struct {
	path     string
	embedder Embedder

	mu      sync.Mutex
	records []localRecord
	loaded  bool
}

// NewLocalStore opens (or creates) the collection file under dir.
func NewLocalStore(dir, collection string, embedder Embedder) *LocalStore {
	return &LocalStore{
		path:     filepath.Join(dir, collection+".json"),
		embedder: embedder,
	}
}

// Save embeds and appends one item, persisting the collection file.
func (s *LocalStore) Save(ctx context.Context, content string, metadata map[string]interface{}) error {
	vectors, err := s.embedder.Embed(ctx, []string{content})
	if err != nil {
		return fmt.Errorf("failed to embed memory item: %w", err)
	}
	if len(vectors) == 0 {
		return fmt.Errorf("embedder returned no vector")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return err
	}
	s.records = append(s.records, localRecord{
		Content:   content,
		Metadata:  metadata,
		Vector:    vectors[0],
		CreatedAt: time.Now(),
	})
	return s.persist()
}

// Search returns up to limit items ranked by cosine similarity to the query.
func (s *LocalStore) Search(ctx context.Context, query string, limit int) ([]string, error) {
	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vector")
	}
	qv := vectors[0]

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}

	type scored struct {
		content string
		score   float64
	}
	ranked := make([]scored, 0, len(s.records))
	for _, r := range s.records {
		ranked = append(ranked, scored{r.Content, cosine(qv, r.Vector)})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = ranked[i].content
	}
	return out, nil
}

func (s *LocalStore) load() error {
	if s.loaded {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read memory collection: %w", err)
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		return fmt.Errorf("failed to parse memory collection: %w", err)
	}
	s.loaded = true
	return nil
}

func (s *LocalStore) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(s.records)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
