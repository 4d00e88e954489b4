package models

// PhotosResponse wraps a photo list together with the criteria it was
// computed from, so one round trip refreshes both the table and the filter
// controls.
type PhotosResponse struct {
	Photos   []EnrichedPhoto `json:"photos"`
	Criteria FilterCriteria  `json:"criteria"`
	Total    int             `json:"total"`
}

// NewPhotosResponse builds a PhotosResponse. A nil photo list is encoded as
// an empty array.
func NewPhotosResponse(photos []EnrichedPhoto, criteria FilterCriteria) PhotosResponse {
	if photos == nil {
		photos = []EnrichedPhoto{}
	}
	return PhotosResponse{
		Photos:   photos,
		Criteria: criteria,
		Total:    len(photos),
	}
}

// BuildInfoResponse is the JSON view of AppBuildInfo.
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// Response returns the JSON view of a.
func (a AppBuildInfo) Response() BuildInfoResponse {
	return BuildInfoResponse{
		Version: a.BuildVersion(),
		Date:    a.BuildDate(),
		Commit:  a.BuildCommit(),
	}
}

// ErrorResponse is the JSON body of every non-2xx API answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"traceId,omitempty"`
}
