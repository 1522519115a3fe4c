package handlers

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	maxBodyBytes = 1048576 // one megabyte

	contentTypeJSON = "application/json"
	contentTypeXML  = "application/xml"
)

var errInvalidID = errors.New("invalid ID")

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func readXML(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := xml.NewDecoder(r.Body).Decode(data); err != nil {
		return fmt.Errorf("failed to read XML: %w", err)
	}
	return nil
}

// writeXML encodes data under start, or under the element name derived from
// the data type when start is nil.
func writeXML(w http.ResponseWriter, status int, data any, start *xml.StartElement) error {
	var (
		out []byte
		err error
	)
	if start != nil {
		var sb strings.Builder
		enc := xml.NewEncoder(&sb)
		if err = enc.EncodeElement(data, *start); err == nil {
			err = enc.Flush()
		}
		out = []byte(sb.String())
	} else {
		out, err = xml.Marshal(data)
	}
	if err != nil {
		return fmt.Errorf("failed to write XML: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeXML)
	w.WriteHeader(status)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// locationFor returns the absolute URL of the resource id created under the request path.
func locationFor(r *http.Request, id int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	path := strings.TrimSuffix(r.URL.Path, "/")
	return fmt.Sprintf("%s://%s%s/%d", scheme, r.Host, path, id)
}
