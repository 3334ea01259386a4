package github

type ActionsBilling struct {
	TotalMinutesUsed     int64            `json:"total_minutes_used"`
	TotalPaidMinutesUsed int64            `json:"total_paid_minutes_used"`
	IncludedMinutes      int64            `json:"included_minutes"`
	MinutesUsedBreakdown map[string]int64 `json:"minutes_used_breakdown"`
}

type PackagesBilling struct {
	TotalGigabytesBandwidthUsed     int64 `json:"total_gigabytes_bandwidth_used"`
	TotalPaidGigabytesBandwidthUsed int64 `json:"total_paid_gigabytes_bandwidth_used"`
	IncludedGigabytesBandwidth      int64 `json:"included_gigabytes_bandwidth"`
}

type CombinedBilling struct {
	DaysLeftInBillingCycle       int64 `json:"days_left_in_billing_cycle"`
	EstimatedPaidStorageForMonth int64 `json:"estimated_paid_storage_for_month"`
	EstimatedStorageForMonth     int64 `json:"estimated_storage_for_month"`
}
