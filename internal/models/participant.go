package models

// ParticipantKind tags the kind of actor behind an id. Citizen ids live
// in the users table, officer and maintainer ids in their own tables, so
// an id alone is ambiguous without the kind.
type ParticipantKind string

const (
	KindCitizen    ParticipantKind = "citizen"
	KindOfficer    ParticipantKind = "officer"
	KindMaintainer ParticipantKind = "maintainer"
)

// Participant identifies one actor in a conversation.
type Participant struct {
	Kind ParticipantKind `json:"kind"`
	ID   uint            `json:"id"`
}
