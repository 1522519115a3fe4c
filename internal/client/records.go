package client

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

const (
	recordsPath = "/records"
	mediaXML    = "application/xml"
)

// RecordService talks to the /records resource using XML bodies.
type RecordService struct {
	*base
}

func NewRecordService(baseURL string, opts ...Option) (*RecordService, error) {
	b, err := newBase(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &RecordService{base: b}, nil
}

// ListAll returns every record known to the server, never nil.
func (s *RecordService) ListAll(ctx context.Context) ([]models.Record, error) {
	resp, err := s.do(ctx, request{method: http.MethodGet, path: recordsPath, accept: mediaXML})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope models.Records
	if err := xml.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("client: decode records: %w", err)
	}
	if envelope.Items == nil {
		return []models.Record{}, nil
	}
	return envelope.Items, nil
}

// Get returns the record with the given id or ErrNotFound.
func (s *RecordService) Get(ctx context.Context, id int) (models.Record, error) {
	resp, err := s.do(ctx, request{method: http.MethodGet, path: itemPath(recordsPath, id), accept: mediaXML})
	if err != nil {
		return models.Record{}, err
	}
	defer resp.Body.Close()

	var record models.Record
	if err := xml.NewDecoder(resp.Body).Decode(&record); err != nil {
		return models.Record{}, fmt.Errorf("client: decode record: %w", err)
	}
	return record, nil
}

func marshalRecord(record models.Record) ([]byte, error) {
	return xml.Marshal(struct {
		XMLName xml.Name `xml:"record"`
		models.Record
	}{Record: record})
}

// Create stores a new record and returns the ID assigned by the server.
func (s *RecordService) Create(ctx context.Context, record models.Record) (int, error) {
	if record.ID != nil {
		return 0, fmt.Errorf("%w: new record must not have an ID", ErrBadRequest)
	}
	body, err := marshalRecord(record)
	if err != nil {
		return 0, err
	}

	header, err := s.send(ctx, request{method: http.MethodPost, path: recordsPath, body: body, contentType: mediaXML})
	if err != nil {
		return 0, err
	}
	return IDFromLocation(header.Get("Location"))
}

// Update replaces the stored record identified by record.ID.
func (s *RecordService) Update(ctx context.Context, record models.Record) error {
	if record.ID == nil {
		return fmt.Errorf("%w: record has no ID", ErrBadRequest)
	}
	body, err := marshalRecord(record)
	if err != nil {
		return err
	}

	_, err = s.send(ctx, request{method: http.MethodPut, path: itemPath(recordsPath, *record.ID), body: body, contentType: mediaXML})
	return err
}

// Delete removes the stored record identified by record.ID.
func (s *RecordService) Delete(ctx context.Context, record models.Record) error {
	if record.ID == nil {
		return fmt.Errorf("%w: record has no ID", ErrBadRequest)
	}
	_, err := s.send(ctx, request{method: http.MethodDelete, path: itemPath(recordsPath, *record.ID)})
	return err
}
