package models

// EntityType identifies one kind of platform entity that can be exported to
// and restored from the versioned store.
type EntityType string

const (
	EntityTypeCustomer      EntityType = "CUSTOMER"
	EntityTypeAsset         EntityType = "ASSET"
	EntityTypeAssetProfile  EntityType = "ASSET_PROFILE"
	EntityTypeRuleChain     EntityType = "RULE_CHAIN"
	EntityTypeDashboard     EntityType = "DASHBOARD"
	EntityTypeDeviceProfile EntityType = "DEVICE_PROFILE"
	EntityTypeDevice        EntityType = "DEVICE"
	EntityTypeEntityView    EntityType = "ENTITY_VIEW"
	EntityTypeWidgetsBundle EntityType = "WIDGETS_BUNDLE"
)

// SupportedEntityTypes lists every entity type the version control engine
// accepts, in the order they must be processed: a referencing type never
// appears before the type it depends on (device profile before device,
// asset profile before asset, rule chain before devices and dashboards).
//
// Adding support for a new entity type means extending this slice and
// registering a handler for it in the service layer. Those are the only two
// growth points.
var SupportedEntityTypes = []EntityType{
	EntityTypeCustomer,
	EntityTypeWidgetsBundle,
	EntityTypeRuleChain,
	EntityTypeDeviceProfile,
	EntityTypeAssetProfile,
	EntityTypeDevice,
	EntityTypeAsset,
	EntityTypeEntityView,
	EntityTypeDashboard,
}

// IsSupportedEntityType reports whether entityType belongs to the fixed
// allow-list of exportable entity types.
func IsSupportedEntityType(entityType EntityType) bool {
	for _, t := range SupportedEntityTypes {
		if t == entityType {
			return true
		}
	}
	return false
}
