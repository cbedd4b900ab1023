package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth is the threshold for extra-wide layouts.
	LayoutExtraWideWidth = 160
)

// List behavior.
const (
	// LoadMoreThreshold is how close to the end of the loaded list the
	// selection may get before the next page is requested.
	LoadMoreThreshold = 5
)

// Log display limits.
const (
	// LogTailLimit is the maximum number of log lines shown in the logs view.
	LogTailLimit = 500
)
