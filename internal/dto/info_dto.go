package dto

// InfoResponse reports storage-level counts and service identity.
type InfoResponse struct {
	TotalAssignments int64  `json:"totalAssignments"`
	TotalSubmissions int64  `json:"totalSubmissions"`
	Server           string `json:"server"`
	Version          string `json:"version"`
	Storage          string `json:"storage"`
}
