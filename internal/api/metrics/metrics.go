// Package metrics defines and registers all custom Prometheus metrics for the
// club submission portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init via
// promauto, before the HTTP server starts serving /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "itclub"

// TasksSubmittedTotal counts successfully created task submissions.
// Label:
//   - screenshot: "yes" when the submission carried an image, else "no"
var TasksSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_submitted_total",
		Help:      "Total number of task submissions successfully created.",
	},
	[]string{"screenshot"},
)

// TasksReviewedTotal counts review decisions applied by admins.
// Label:
//   - status: the outcome applied ("approved" or "rejected")
var TasksReviewedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_reviewed_total",
		Help:      "Total number of review decisions applied, by outcome.",
	},
	[]string{"status"},
)

// ScreenshotUploadsTotal counts image-host operations.
// Labels:
//   - op: "upload" or "remove"
//   - result: "ok" or "error"
var ScreenshotUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "screenshot_uploads_total",
		Help:      "Total number of image-host operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// CascadeDeletedTasksTotal counts tasks removed as part of a user deletion.
var CascadeDeletedTasksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deleted_tasks_total",
		Help:      "Total number of tasks deleted by user-deletion cascades.",
	},
)
