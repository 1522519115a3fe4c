package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
	"github.com/rogerio-castellano/inventory-rest/internal/repo"
	"go.uber.org/zap"
)

// RecordResource serves /records as XML.
type RecordResource struct {
	inventory repo.RecordInventory
	log       *zap.Logger
}

func NewRecordResource(inventory repo.RecordInventory, log *zap.Logger) *RecordResource {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecordResource{inventory: inventory, log: log}
}

// List godoc
// @Summary List all records
// @Tags records
// @Produce xml
// @Success 200 {object} models.Records
// @Failure 500 {string} string "Internal error"
// @Router /records [get]
func (h *RecordResource) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventory.List(r.Context())
	if err != nil {
		h.log.Error("could not list records", zap.Error(err))
		http.Error(w, "could not fetch records", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.Record{}
	}
	if err := writeXML(w, http.StatusOK, models.Records{Items: records}, nil); err != nil {
		h.log.Warn("failed to write response", zap.Error(err))
	}
}

// Get godoc
// @Summary Get record by ID
// @Tags records
// @Produce xml
// @Param id path int true "Record ID"
// @Success 200 {object} models.Record
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /records/{id} [get]
func (h *RecordResource) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid record ID", http.StatusBadRequest)
		return
	}

	record, err := h.inventory.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		h.log.Error("could not fetch record", zap.Int("id", id), zap.Error(err))
		http.Error(w, "could not fetch record", http.StatusInternalServerError)
		return
	}
	if err := writeXML(w, http.StatusOK, record, &models.RecordElement); err != nil {
		h.log.Warn("failed to write response", zap.Error(err))
	}
}

// Create godoc
// @Summary Create a new record
// @Description The submitted record must not carry an ID.
// @Tags records
// @Accept xml
// @Security BearerAuth
// @Param record body models.Record true "Record to add"
// @Success 201 "Created, Location header points to the new record"
// @Failure 400 {string} string "ID set or malformed body"
// @Router /records [post]
func (h *RecordResource) Create(w http.ResponseWriter, r *http.Request) {
	var record models.Record
	if err := readXML(w, r, &record); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if record.ID != nil {
		http.Error(w, "record ID must not be set", http.StatusBadRequest)
		return
	}

	created, err := h.inventory.Add(r.Context(), record)
	if err != nil {
		h.log.Error("could not create record", zap.Error(err))
		http.Error(w, "could not create record", http.StatusInternalServerError)
		return
	}

	h.log.Debug("record created", zap.Int("id", *created.ID))
	w.Header().Set("Location", locationFor(r, *created.ID))
	w.WriteHeader(http.StatusCreated)
}

// Update godoc
// @Summary Replace a record
// @Description The submitted ID must be absent or equal to the path ID.
// @Tags records
// @Accept xml
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param record body models.Record true "Updated record"
// @Success 204 "Updated"
// @Failure 400 {string} string "ID mismatch"
// @Failure 404 {string} string "Not found"
// @Router /records/{id} [put]
func (h *RecordResource) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid record ID", http.StatusBadRequest)
		return
	}

	var record models.Record
	if err := readXML(w, r, &record); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if record.ID != nil && *record.ID != id {
		http.Error(w, "record ID is different in request path and message body", http.StatusBadRequest)
		return
	}

	if _, err := h.inventory.Update(r.Context(), id, record); err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		h.log.Error("could not update record", zap.Int("id", id), zap.Error(err))
		http.Error(w, "could not update record", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a record
// @Tags records
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /records/{id} [delete]
func (h *RecordResource) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid record ID", http.StatusBadRequest)
		return
	}
	if err := h.inventory.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		h.log.Error("could not delete record", zap.Int("id", id), zap.Error(err))
		http.Error(w, "could not delete record", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
