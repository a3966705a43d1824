package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "armory_http_requests_total"
	MetricNameHTTPRequestDuration  = "armory_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "armory_http_requests_in_flight"

	MetricNameItemsAdded          = "armory_items_added_total"
	MetricNameItemsRemoved        = "armory_items_removed_total"
	MetricNameEquipOperations     = "armory_equip_operations_total"
	MetricNameCapacityRejections  = "armory_capacity_rejections_total"
	MetricNameInventoriesCreated  = "armory_inventories_created_total"
)

// Metric help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextItemsAdded         = "Total item units added to inventories"
	HelpTextItemsRemoved       = "Total item units removed from inventories"
	HelpTextEquipOperations    = "Equip/unequip operations by outcome"
	HelpTextCapacityRejections = "Add operations rejected for exceeding a capacity budget"
	HelpTextInventoriesCreated = "Inventories created on first access"
)

// Metric label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelResult    = "result"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
