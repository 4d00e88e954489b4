package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-photo-albums/internal/app"
	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/service"
	"github.com/MKhiriev/go-photo-albums/internal/utils"
	"github.com/MKhiriev/go-photo-albums/internal/validators"
	"github.com/MKhiriev/go-photo-albums/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order; more specific errors come first because
// ErrPhotoNotFound and ErrInvalidDirection both wrap ErrInvalidArgument.
var errorStatuses = []errorStatus{
	{service.ErrPhotoNotFound, http.StatusNotFound, app.MsgPhotoNotFound},
	{service.ErrInvalidDirection, http.StatusBadRequest, app.MsgInvalidDirection},
	{models.ErrUnknownMoveDirection, http.StatusBadRequest, app.MsgInvalidDirection},
	{validators.ErrInvalidDirection, http.StatusBadRequest, app.MsgInvalidDirection},
	{validators.ErrEmptyUserName, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrUserNameTooLong, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrSearchQueryTooLong, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidArgument, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidRequestBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidPathParam, http.StatusBadRequest, app.MsgInvalidDataProvided},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status and a
// [models.ErrorResponse] carrying the request trace id.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(message)

	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Error: message, TraceID: traceID}, status); wErr != nil {
		log.Err(wErr).Str("func", funcName).Msg("error writing error response")
	}
}
