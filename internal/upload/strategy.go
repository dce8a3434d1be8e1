package upload

// Default transfer policy. Both values are overridable through Config; the
// defaults match Amazon S3's sweet spot for media files.
const (
	DefaultMultipartThreshold = int64(50 * 1024 * 1024)
	DefaultPartSize           = int64(8 * 1024 * 1024)
)

type PlanKind string

const (
	PlanSingle    PlanKind = "single"
	PlanMultipart PlanKind = "multipart"
)

// Plan is the transfer strategy chosen once per upload.
type Plan struct {
	Kind     PlanKind
	PartSize int64 // set for multipart plans
}

// DeterminePlan maps a file size to a transfer plan. Sizes at or above the
// threshold go multipart with the given part size; everything below goes as
// one put request. Non-positive threshold or part size fall back to defaults.
func DeterminePlan(sizeBytes, thresholdBytes, partSizeBytes int64) Plan {
	if thresholdBytes <= 0 {
		thresholdBytes = DefaultMultipartThreshold
	}
	if partSizeBytes <= 0 {
		partSizeBytes = DefaultPartSize
	}

	if sizeBytes >= thresholdBytes {
		return Plan{Kind: PlanMultipart, PartSize: partSizeBytes}
	}
	return Plan{Kind: PlanSingle}
}
