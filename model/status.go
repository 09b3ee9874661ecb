package model

// Field keys the aggregators read directly.
const (
	KeyStatus            = "status"
	KeyVerificationState = "verification_state"
	KeyVerificationType  = "verification_type"
	KeyVerificationDate  = "verification_date"
	KeyVerificationPlan  = "verification_plan"
	KeyDepartment        = "department"
)

// Equipment status values.
const (
	StatusFit          = "status_fit"
	StatusExpired      = "status_expired"
	StatusExpiring     = "status_expiring"
	StatusStorage      = "status_storage"
	StatusVerification = "status_verification"
	StatusRepair       = "status_repair"
)

// Verification state values.
const (
	StateWork         = "state_work"
	StateStorage      = "state_storage"
	StateVerification = "state_verification"
	StateRepair       = "state_repair"
	StateArchived     = "state_archived"
)

// Verification event types.
const (
	WorkCalibration   = "calibration"
	WorkVerification  = "verification"
	WorkCertification = "certification"
)
