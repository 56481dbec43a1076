package constants

// ==========================
// ✅ User roles
// ==========================
const (
	RoleOrganizer = "ORGANIZER"
	RoleAttendee  = "ATTENDEE"
)

// ==========================
// ✅ Event enums
// ==========================
const (
	EventTypeHackathon  = "HACKATHON"
	EventTypeConference = "CONFERENCE"
	EventTypeWorkshop   = "WORKSHOP"
	EventTypeMeetup     = "MEETUP"
)

const (
	EventStatusDraft     = "DRAFT"
	EventStatusPublished = "PUBLISHED"
	EventStatusOngoing   = "ONGOING"
	EventStatusCompleted = "COMPLETED"
)

// ==========================
// ✅ Registration status
// ==========================
const (
	RegistrationStatusPending    = "PENDING"
	RegistrationStatusConfirmed  = "CONFIRMED"
	RegistrationStatusCancelled  = "CANCELLED"
	RegistrationStatusWaitlisted = "WAITLISTED"
)

// ==========================
// ✅ Team status
// ==========================
const (
	TeamStatusForming   = "FORMING"
	TeamStatusActive    = "ACTIVE"
	TeamStatusSubmitted = "SUBMITTED"
)

var (
	EventTypes = []string{
		EventTypeHackathon,
		EventTypeConference,
		EventTypeWorkshop,
		EventTypeMeetup,
	}

	EventStatuses = []string{
		EventStatusDraft,
		EventStatusPublished,
		EventStatusOngoing,
		EventStatusCompleted,
	}

	RegistrationStatuses = []string{
		RegistrationStatusPending,
		RegistrationStatusConfirmed,
		RegistrationStatusCancelled,
		RegistrationStatusWaitlisted,
	}
)
