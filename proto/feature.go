package proto

// Feature is a server revision threshold gating an optional wire field.
// A feature is active iff the negotiated server revision is >= the
// threshold: "use feature iff server revision >= constant" (spec.md §6.3).
type Feature int

// In reports whether the feature is active for the given server revision.
func (f Feature) In(revision int) bool {
	return revision >= int(f)
}

// Revision constants from spec.md §4.6. Values are the literal protocol
// revision numbers the server advertises in its Hello packet.
const (
	FeatureTempTables           Feature = 50264
	FeatureBlockInfo            Feature = 51903
	FeatureServerTimezone       Feature = 54058
	FeatureServerDisplayName    Feature = 54372
	FeatureVersionPatch         Feature = 54401
	FeatureProgressWritten      Feature = 54405
	FeatureClientInfo           Feature = 54032
	FeatureQuotaKeyInClientInfo Feature = 54060
	FeatureSettingsWithFlags    Feature = 54429
	FeatureInterserverSecret    Feature = 54441
	FeatureOpenTelemetry        Feature = 54442
	FeatureQueryStartTime       Feature = 54449
	FeatureDistributedDepth     Feature = 54448
	FeatureParallelReplicas     Feature = 54453
	FeatureCustomSerialization  Feature = 54454
	FeatureAddendum             Feature = 54458
	FeatureParameters           Feature = 54459
)

// ClientProtocolVersion is the revision this client advertises in its Hello
// packet (spec.md §6.3).
const ClientProtocolVersion = 54459

// MinServerRevision is the oldest server revision this client can speak to;
// older servers lack client-info framing entirely.
const MinServerRevision = 54032
