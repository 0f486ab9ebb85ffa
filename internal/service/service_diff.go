package service

import (
	"bytes"
	"reflect"
	"sort"

	"github.com/MKhiriev/go-entity-vc/models"
)

// diffDocuments compares the exportable document of a live entity against a
// document read from the versioned store. Fields are compared key by key; the
// optional sections are only reported as changed or not.
func diffDocuments(live, stored models.EntityDocument) models.EntityDataDiff {
	var diff models.EntityDataDiff

	for key, liveValue := range live.Fields {
		storedValue, ok := stored.Fields[key]
		if !ok {
			diff.AddedFields = append(diff.AddedFields, key)
			continue
		}
		if !reflect.DeepEqual(liveValue, storedValue) {
			diff.ChangedFields = append(diff.ChangedFields, key)
		}
	}
	for key := range stored.Fields {
		if _, ok := live.Fields[key]; !ok {
			diff.RemovedFields = append(diff.RemovedFields, key)
		}
	}

	// The name is versioned alongside the fields.
	if live.Name != stored.Name {
		diff.ChangedFields = append(diff.ChangedFields, "name")
	}

	sort.Strings(diff.AddedFields)
	sort.Strings(diff.RemovedFields)
	sort.Strings(diff.ChangedFields)

	diff.RelationsChanged = !relationsEqual(live.Relations, stored.Relations)
	diff.AttributesChanged = !reflect.DeepEqual(normalizeAttributes(live.Attributes), normalizeAttributes(stored.Attributes))
	diff.CredentialsChanged = !bytes.Equal(live.Credentials, stored.Credentials)

	return diff
}

// relationsEqual compares two relation sets ignoring order.
func relationsEqual(a, b []models.EntityRelation) bool {
	if len(a) != len(b) {
		return false
	}

	index := make(map[models.EntityRelation]int, len(a))
	for _, rel := range a {
		index[rel]++
	}
	for _, rel := range b {
		index[rel]--
		if index[rel] < 0 {
			return false
		}
	}

	return true
}

// normalizeAttributes treats a nil map and an empty map as the same thing so
// an entity without attributes never diffs against a document storing none.
func normalizeAttributes(attributes map[string]map[string]any) map[string]map[string]any {
	if len(attributes) == 0 {
		return nil
	}

	normalized := make(map[string]map[string]any, len(attributes))
	for scope, kv := range attributes {
		if len(kv) == 0 {
			continue
		}
		normalized[scope] = kv
	}
	if len(normalized) == 0 {
		return nil
	}

	return normalized
}
