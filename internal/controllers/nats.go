package controllers

import (
	"context"

	"github.com/batchrecords/rqs/internal/db"
	"github.com/batchrecords/rqs/internal/model"
	"github.com/sirupsen/logrus"
)

// UsageRequest asks for the usage snapshot of a single user.
type UsageRequest struct {
	Username string `json:"username"`
}

// UsageResponse carries a usage snapshot or the reason one couldn't be
// computed.
type UsageResponse struct {
	Snapshot *model.UsageSnapshot `json:"snapshot,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// AddUploadRequest records the rows contributed by a processed file on
// behalf of the ingestion pipeline.
type AddUploadRequest struct {
	Username  string `json:"username"`
	FileName  string `json:"file_name"`
	TotalRows int64  `json:"total_rows"`
	Status    string `json:"status"`
}

// AddUploadResponse reports whether an upload record was stored.
type AddUploadResponse struct {
	UploadID string `json:"upload_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// GetUsageNATS is the NATS handler for getting a user's usage snapshot.
func (s Server) GetUsageNATS(subject, reply string, request *UsageRequest) {
	log := log.WithFields(logrus.Fields{"context": "getting usage over NATS", "user": request.Username})

	ctx := context.Background()

	var response UsageResponse
	snapshot, err := s.natsUsageSnapshot(ctx, request.Username)
	if err != nil {
		log.Error(err)
		response.Error = err.Error()
	} else {
		response.Snapshot = snapshot
	}

	if err = s.NATSConn.Publish(reply, &response); err != nil {
		log.Error(err)
	}
}

// natsUsageSnapshot resolves a username to a user record and computes the
// usage snapshot for that user's role.
func (s Server) natsUsageSnapshot(ctx context.Context, username string) (*model.UsageSnapshot, error) {
	user, err := db.GetUserByUsername(ctx, s.GORMDB, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.usageSnapshot(ctx, user.Role, *user.ID)
}

// AddUploadNATS is the NATS handler for recording the rows contributed by a
// processed file. Only use this endpoint from the ingestion pipeline; usage
// reads go through GetUsageNATS or the REST API.
func (s Server) AddUploadNATS(subject, reply string, request *AddUploadRequest) {
	log := log.WithFields(logrus.Fields{
		"context": "recording upload over NATS",
		"user":    request.Username,
		"file":    request.FileName,
		"rows":    request.TotalRows,
	})

	ctx := context.Background()

	var response AddUploadResponse
	upload, err := s.recordUpload(ctx, request)
	if err != nil {
		log.Error(err)
		response.Error = err.Error()
	} else {
		response.UploadID = *upload.ID
	}

	if err = s.NATSConn.Publish(reply, &response); err != nil {
		log.Error(err)
	}
}

// recordUpload validates an ingestion request and appends the upload record.
func (s Server) recordUpload(ctx context.Context, request *AddUploadRequest) (*model.FileUpload, error) {
	if request.Username == "" {
		return nil, ErrUserNotFound
	}
	if request.TotalRows < 0 {
		return nil, errInvalidRowCount
	}

	// An omitted status means the pipeline finished the file.
	status := request.Status
	if status == "" {
		status = model.UploadStatusCompleted
	}
	if !containsString(model.UploadStatuses(), status) {
		return nil, errInvalidUploadStatus
	}

	user, err := db.GetUserByUsername(ctx, s.GORMDB, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	upload := model.FileUpload{
		FileName:     request.FileName,
		UploadedByID: user.ID,
		TotalRows:    request.TotalRows,
		Status:       status,
	}
	if err = db.RecordFileUpload(ctx, s.GORMDB, &upload); err != nil {
		return nil, err
	}

	return &upload, nil
}

// containsString returns true if the given slice of strings contains the
// given string.
func containsString(strs []string, str string) bool {
	for _, s := range strs {
		if s == str {
			return true
		}
	}
	return false
}
