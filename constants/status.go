package constants

// JobStatus is the canonical status for rows in parse_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued     JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning    JobStatus = "RUNNING"    // in progress
	JobStatusClassified JobStatus = "CLASSIFIED" // stage 1 completed (label decided)
	JobStatusExtractOK  JobStatus = "EXTRACT_OK" // stage 2 completed (artifact written)
	JobStatusOCROK      JobStatus = "OCR_OK"     // optional stage 3 completed (text recovered)
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
)

// JobStatuses holds the allowed values for the status field in ParseJob.
var JobStatuses = []string{
	string(JobStatusQueued), string(JobStatusRunning), string(JobStatusClassified),
	string(JobStatusExtractOK), string(JobStatusOCROK), string(JobStatusFailed),
}
