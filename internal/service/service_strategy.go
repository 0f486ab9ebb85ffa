package service

import "github.com/MKhiriev/go-entity-vc/models"

// resolveSyncStrategy picks the effective strategy for one entity type:
// the per-type override wins over the request-level default, and an
// unspecified strategy falls back to MERGE.
func resolveSyncStrategy(requestDefault, perType models.SyncStrategy) models.SyncStrategy {
	if perType != "" {
		return perType
	}
	if requestDefault != "" {
		return requestDefault
	}
	return models.SyncStrategyMerge
}

// isValidSyncStrategy accepts the two known strategies and the empty string
// (meaning "not specified").
func isValidSyncStrategy(strategy models.SyncStrategy) bool {
	switch strategy {
	case "", models.SyncStrategyMerge, models.SyncStrategyOverwrite:
		return true
	default:
		return false
	}
}
