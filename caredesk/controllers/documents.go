package controllers

import (
	"caredesk/caredesk/sources/storage"
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
)

// DocumentsController mediates between the chart's attachment list and the
// object store. Ownership of the patient is checked by the caller through
// PatientsController before any key is touched.
type DocumentsController struct {
	store    *storage.MinIOClient
	patients *PatientsController
}

func NewDocumentsController(store *storage.MinIOClient, patients *PatientsController) *DocumentsController {
	return &DocumentsController{store: store, patients: patients}
}

func (c *DocumentsController) Upload(ctx context.Context, doctorID int, patientID uuid.UUID, filename, contentType string, size int64, body io.Reader) (string, error) {
	if _, err := c.patients.GetPatient(ctx, doctorID, patientID); err != nil {
		return "", err
	}
	return c.store.UploadDocument(ctx, patientID, filename, contentType, size, body)
}

func (c *DocumentsController) List(ctx context.Context, doctorID int, patientID uuid.UUID) ([]storage.DocumentInfo, error) {
	if _, err := c.patients.GetPatient(ctx, doctorID, patientID); err != nil {
		return nil, err
	}
	return c.store.ListDocuments(ctx, patientID)
}

// Fetch streams one attachment. The key must sit inside the patient's
// folder, so a doctor cannot reach another patient's documents by key.
func (c *DocumentsController) Fetch(ctx context.Context, doctorID int, patientID uuid.UUID, key string) (io.ReadCloser, error) {
	if _, err := c.patients.GetPatient(ctx, doctorID, patientID); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(key, "documents/"+patientID.String()+"/") {
		return nil, ErrPatientNotFound
	}
	return c.store.FetchDocument(ctx, key)
}
