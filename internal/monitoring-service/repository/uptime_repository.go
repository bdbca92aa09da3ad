package repository

import (
	apperrors "Endpoint_Monitoring_Service/internal/monitoring-service/errors"
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"
)

type UptimeRepository interface {
	EnsureIndex(ctx context.Context) error
	IndexResult(ctx context.Context, doc model.ResultDocument) error
	DeleteEndpointResults(ctx context.Context, endpointID string) error
	GetEndpointUptimePercentage(ctx context.Context, endpointID string, startTime time.Time, endTime time.Time) (float64, error)
}

const esResultIndexName = "monitoring_results"

type uptimeRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

func decodeESError(res *esapi.Response) error {
	var e esErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&e); err != nil {
		return fmt.Errorf("decode err response: %w", err)
	}
	return apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason)
}

var esResultIndexMapping = `{
  "mappings": {
    "properties": {
      "result_id":   {"type": "keyword"},
      "endpoint_id": {"type": "keyword"},
      "url":         {"type": "keyword"},
      "check_date":  {"type": "date"},
      "status_code": {"type": "integer"},
      "up":          {"type": "integer"}
    }
  }
}`

// EnsureIndex creates the results index with keyword ids so term filters match whole ids.
func (u *uptimeRepository) EnsureIndex(ctx context.Context) error {
	exists, err := u.es.Indices.Exists([]string{esResultIndexName}, u.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("UptimeRepository.EnsureIndex: %w", err)
	}
	exists.Body.Close()
	if exists.StatusCode == http.StatusOK {
		return nil
	}
	res, err := u.es.Indices.Create(esResultIndexName,
		u.es.Indices.Create.WithContext(ctx),
		u.es.Indices.Create.WithBody(strings.NewReader(esResultIndexMapping)))
	if err != nil {
		return fmt.Errorf("UptimeRepository.EnsureIndex: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		esErr := decodeESError(res)
		var e *apperrors.ElasticSearchError
		if errors.As(esErr, &e) && e.Type == "resource_already_exists_exception" {
			return nil
		}
		return fmt.Errorf("UptimeRepository.EnsureIndex: %w", esErr)
	}
	return nil
}

// IndexResult uses the result id as document id, so a redelivered event overwrites instead of duplicating.
func (u *uptimeRepository) IndexResult(ctx context.Context, doc model.ResultDocument) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("UptimeRepository.IndexResult encode document: %w", err)
	}
	res, err := u.es.Index(esResultIndexName, &buf,
		u.es.Index.WithContext(ctx),
		u.es.Index.WithDocumentID(doc.ResultID))
	if err != nil {
		return fmt.Errorf("UptimeRepository.IndexResult: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("UptimeRepository.IndexResult: %w", decodeESError(res))
	}
	return nil
}

func (u *uptimeRepository) DeleteEndpointResults(ctx context.Context, endpointID string) error {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"endpoint_id": endpointID,
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return fmt.Errorf("UptimeRepository.DeleteEndpointResults encode query: %w", err)
	}
	res, err := u.es.DeleteByQuery([]string{esResultIndexName}, &buf,
		u.es.DeleteByQuery.WithContext(ctx),
		u.es.DeleteByQuery.WithConflicts("proceed"))
	if err != nil {
		return fmt.Errorf("UptimeRepository.DeleteEndpointResults: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("UptimeRepository.DeleteEndpointResults: %w", decodeESError(res))
	}
	return nil
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value *float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

// GetEndpointUptimePercentage returns the share of 2xx checks in [startTime, endTime) as 0-100.
// A range without checks yields 0.
func (u *uptimeRepository) GetEndpointUptimePercentage(ctx context.Context, endpointID string, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"endpoint_id": endpointID,
						},
					},
					{
						"range": map[string]interface{}{
							"check_date": map[string]interface{}{
								"gte": startTime,
								"lt":  endTime,
							},
						},
					},
				},
			},
		},
		"aggs": map[string]interface{}{
			"uptime_percentage": map[string]interface{}{
				"avg": map[string]interface{}{
					"field": "up",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("UptimeRepository.GetEndpointUptimePercentage encode query: %w", err)
	}
	res, err := u.es.Search(
		u.es.Search.WithContext(ctx),
		u.es.Search.WithIndex(esResultIndexName),
		u.es.Search.WithBody(&buf))
	if err != nil {
		return 0, fmt.Errorf("UptimeRepository.GetEndpointUptimePercentage: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("UptimeRepository.GetEndpointUptimePercentage: %w", decodeESError(res))
	}

	var uptimeResponse esUptimePercentageResponse
	if err = json.NewDecoder(res.Body).Decode(&uptimeResponse); err != nil {
		return 0, fmt.Errorf("UptimeRepository.GetEndpointUptimePercentage decode response: %w", err)
	}
	if uptimeResponse.Aggregations.UptimePercentage.Value == nil {
		return 0, nil
	}
	return *uptimeResponse.Aggregations.UptimePercentage.Value * 100, nil
}

func NewUptimeRepository(esClient *elasticsearch.Client) UptimeRepository {
	return &uptimeRepository{
		es: esClient,
	}
}
