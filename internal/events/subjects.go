package events

const (
	StreamName   = "BLADE_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectDecisionCompleted(decisionID string) string {
	return "blade.decision." + decisionID + ".completed"
}

func SubjectDecisionFaulted(decisionID string) string {
	return "blade.decision." + decisionID + ".faulted"
}

func SubjectCatalogUpdated(kind string) string {
	return "blade.catalog." + kind + ".updated"
}
