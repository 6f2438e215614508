package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DatabricksConfig is the primitive form of the databricks section of a
// memory profile.
type DatabricksConfig struct {
	WorkspaceURL string
	Token        string
	Endpoint     string // Vector Search endpoint name
	IndexPrefix  string // index names are <prefix>.<collection>
}

// databricksConfigFrom extracts the typed config from the profile's raw map.
func databricksConfigFrom(raw map[string]interface{}) DatabricksConfig {
	str := func(key string) string {
		v, _ := raw[key].(string)
		return v
	}
	return DatabricksConfig{
		WorkspaceURL: str("workspace_url"),
		Token:        str("token"),
		Endpoint:     str("endpoint"),
		IndexPrefix:  str("index_prefix"),
	}
}

// DatabricksStore persists one memory collection in a Databricks Vector
// Search index via the workspace REST API.
type DatabricksStore struct {
	cfg        DatabricksConfig
	collection string
	httpc      *http.Client
}

// NewDatabricksStore binds a store to one collection (index name suffix).
func NewDatabricksStore(cfg DatabricksConfig, collection string) *DatabricksStore {
	return &DatabricksStore{
		cfg:        cfg,
		collection: collection,
		httpc:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *DatabricksStore) indexName() string {
	return s.cfg.IndexPrefix + "." + s.collection
}

// Probe checks that the index is reachable with the configured credentials.
// Used by the factory to degrade to default memory when Vector Search
// scopes are missing.
func (s *DatabricksStore) Probe(ctx context.Context) error {
	url := fmt.Sprintf("%s/api/2.0/vector-search/indexes/%s", s.cfg.WorkspaceURL, s.indexName())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("vector search index unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("vector search index %s: missing scopes (HTTP %d)", s.indexName(), resp.StatusCode)
	}
	return nil
}

// Save upserts one item into the index.
func (s *DatabricksStore) Save(ctx context.Context, content string, metadata map[string]interface{}) error {
	body := map[string]interface{}{
		"inputs_json": []map[string]interface{}{
			{
				"text":       content,
				"metadata":   metadata,
				"created_at": time.Now().Format(time.RFC3339Nano),
			},
		},
	}
	return s.call(ctx, http.MethodPost,
		fmt.Sprintf("/api/2.0/vector-search/indexes/%s/upsert-data", s.indexName()), body, nil)
}

// Search queries the index and returns matching texts.
func (s *DatabricksStore) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}
	body := map[string]interface{}{
		"query_text":  query,
		"num_results": limit,
		"columns":     []string{"text"},
	}
	var result struct {
		Result struct {
			DataArray [][]interface{} `json:"data_array"`
		} `json:"result"`
	}
	err := s.call(ctx, http.MethodGet,
		fmt.Sprintf("/api/2.0/vector-search/indexes/%s/query", s.indexName()), body, &result)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(result.Result.DataArray))
	for _, row := range result.Result.DataArray {
		if len(row) == 0 {
			continue
		}
		if text, ok := row[0].(string); ok {
			out = append(out, text)
		}
	}
	return out, nil
}

func (s *DatabricksStore) call(ctx context.Context, method, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, s.cfg.WorkspaceURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("vector search call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("vector search %s returned HTTP %d: %s", path, resp.StatusCode, msg)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
