package services

// StatusChanged reports whether a save moved an entity between statuses.
// Creation never counts as a transition. The comparison runs over the
// snapshot the caller fetched before mutating, so the decision is a pure
// function of what that writer observed; two concurrent writers of the
// same row can each decide from their own stale snapshot (last write
// wins on the stored status, accepted).
func StatusChanged(oldStatus, newStatus string, isNew bool) bool {
	if isNew {
		return false
	}
	return oldStatus != newStatus
}
