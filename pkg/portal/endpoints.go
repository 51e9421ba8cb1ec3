package portal

// The closed set of backend endpoint paths, relative to a branch base URL.
// Reads are GET, auth and mutation actions are POST. Everything except the
// pre-session trainee-auth endpoints requires a bearer token.
const (
	EndpointLogin           = "/api/trainee-auth/login"
	EndpointVerifyTrainee   = "/api/trainee-auth/verify-trainee"
	EndpointVerifyPhone     = "/api/trainee-auth/verify-phone"
	EndpointCreatePassword  = "/api/trainee-auth/create-password"
	EndpointForgotPassword  = "/api/trainee-auth/forgot-password"
	EndpointVerifyResetCode = "/api/trainee-auth/verify-reset-code"
	EndpointResetPassword   = "/api/trainee-auth/reset-password"

	EndpointProfile           = "/api/trainees/profile"
	EndpointSchedule          = "/api/schedule"
	EndpointGrades            = "/api/grades"
	EndpointAttendanceRecords = "/api/attendance-records"
	EndpointTrainingContents  = "/api/training-contents"
	EndpointLectures          = "/api/lectures"
	EndpointTraineeRequests   = "/api/trainee-requests"
)
