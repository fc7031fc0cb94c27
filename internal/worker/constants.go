package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a job returns an error
	LogMsgWorkerJobFailed = "Worker job failed"
	// LogMsgWorkerJobsDropped is logged when Stop leaves jobs in the queue
	LogMsgWorkerJobsDropped = "Worker pool stopped with queued jobs"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
