package dataset

import (
	"daostats/domain/core"
)

// Metric keys for the numeric fields of a governance record.
const (
	MetricTreasuryValueUSD     core.MetricKey = "treasury_value_usd"
	MetricLargestHolderPercent core.MetricKey = "largest_holder_percent"
	MetricTop10HolderPercent   core.MetricKey = "top10_holder_percent"
	MetricHolderCount          core.MetricKey = "holder_count"
	MetricProposalCount        core.MetricKey = "proposal_count"
	MetricApprovalRate         core.MetricKey = "approval_rate"
	MetricParticipationRate    core.MetricKey = "participation_rate"
	MetricQuorumPercent        core.MetricKey = "quorum_percent"
)

// AllMetrics lists every numeric metric in stable presentation order.
func AllMetrics() []core.MetricKey {
	return []core.MetricKey{
		MetricTreasuryValueUSD,
		MetricLargestHolderPercent,
		MetricTop10HolderPercent,
		MetricHolderCount,
		MetricProposalCount,
		MetricApprovalRate,
		MetricParticipationRate,
		MetricQuorumPercent,
	}
}

// IsPercentMetric reports whether a metric is expressed on the 0-100 percent
// scale, which the charts bin against governance-threshold-aligned edges
// instead of rule-derived widths.
func IsPercentMetric(key core.MetricKey) bool {
	switch key {
	case MetricLargestHolderPercent, MetricTop10HolderPercent,
		MetricApprovalRate, MetricParticipationRate, MetricQuorumPercent:
		return true
	}
	return false
}

// GovernanceRecord is one DAO's governance metrics snapshot, as stored in
// the static dataset JSON.
type GovernanceRecord struct {
	Name                 string  `json:"name"`
	Category             string  `json:"category"`
	TreasuryValueUSD     float64 `json:"treasury_value_usd"`
	LargestHolderPercent float64 `json:"largest_holder_percent"`
	Top10HolderPercent   float64 `json:"top10_holder_percent"`
	HolderCount          float64 `json:"holder_count"`
	ProposalCount        float64 `json:"proposal_count"`
	ApprovalRate         float64 `json:"approval_rate"`
	ParticipationRate    float64 `json:"participation_rate"`
	QuorumPercent        float64 `json:"quorum_percent"`
}

// Metric returns the record's value for the given key and whether the key
// is known.
func (r GovernanceRecord) Metric(key core.MetricKey) (float64, bool) {
	switch key {
	case MetricTreasuryValueUSD:
		return r.TreasuryValueUSD, true
	case MetricLargestHolderPercent:
		return r.LargestHolderPercent, true
	case MetricTop10HolderPercent:
		return r.Top10HolderPercent, true
	case MetricHolderCount:
		return r.HolderCount, true
	case MetricProposalCount:
		return r.ProposalCount, true
	case MetricApprovalRate:
		return r.ApprovalRate, true
	case MetricParticipationRate:
		return r.ParticipationRate, true
	case MetricQuorumPercent:
		return r.QuorumPercent, true
	}
	return 0, false
}

// Dataset is the full set of governance records a reader produced.
type Dataset struct {
	Records []GovernanceRecord `json:"records"`
}

// Len returns the record count.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Categories returns the distinct record categories in first-seen order.
func (d *Dataset) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range d.Records {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}
