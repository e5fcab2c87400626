package models

// FieldKind is the declared type of a document field. The registry is a
// static table instead of runtime reflection over model definitions, so the
// seeder can switch on a closed set of kinds.
type FieldKind int

const (
	String FieldKind = iota
	Number
	Boolean
	Date
	ObjectRef
	ArrayOfObjectRef
	ArrayOfPrimitive
	Mixed
)

func (k FieldKind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Date:
		return "date"
	case ObjectRef:
		return "objectRef"
	case ArrayOfObjectRef:
		return "arrayOfObjectRef"
	case ArrayOfPrimitive:
		return "arrayOfPrimitive"
	case Mixed:
		return "mixed"
	}
	return "unknown"
}

// FieldDescriptor describes one document path. Dotted names address nested
// documents (e.g. "coordinates.type"). Ref names the target entity for
// ObjectRef / ArrayOfObjectRef fields; an empty Ref means the field holds an
// opaque identifier with no schedulable target. Elem is the element kind of
// an ArrayOfPrimitive field.
type FieldDescriptor struct {
	Name     string
	Kind     FieldKind
	Required bool
	Unique   bool
	Enum     []string
	Ref      string
	Elem     FieldKind
}

// EntityDescriptor is one modeled record type and its storage collection.
type EntityDescriptor struct {
	Name       string
	Collection string
	Fields     []FieldDescriptor
}

// AccountEntity is the identity-bearing entity; it is always seeded first
// and specially so known logins exist.
const AccountEntity = "User"

// OneToOneAccountEntities are profile entities holding a unique reference to
// one account each. They are sized to the account pool during seeding.
var OneToOneAccountEntities = map[string]bool{
	"VolunteerProfile": true,
	"BloodDonor":       true,
	"OrganDonor":       true,
}

// registry is declared once in alphabetical entity order; that order is the
// stable tiebreak when the scheduler falls back on cyclic subgraphs.
var registry = []EntityDescriptor{
	{
		Name:       "Application",
		Collection: "applications",
		Fields: []FieldDescriptor{
			{Name: "opportunityId", Kind: ObjectRef, Required: true, Ref: "Opportunity"},
			{Name: "userId", Kind: ObjectRef, Required: true, Ref: "User"},
			{Name: "motivation", Kind: String},
			{Name: "availability", Kind: String},
			{Name: "status", Kind: String},
			{Name: "appliedAt", Kind: Date},
			{Name: "respondedAt", Kind: Date},
			{Name: "hoursLogged", Kind: Number},
			{Name: "rating", Kind: ObjectRef, Ref: "OrganizationRating"},
		},
	},
	{
		Name:       "Appointment",
		Collection: "appointments",
		Fields: []FieldDescriptor{
			{Name: "userId", Kind: ObjectRef, Required: true, Ref: "User"},
			{Name: "centerId", Kind: ObjectRef, Required: true, Ref: "BloodDonationCenter"},
			{Name: "date", Kind: Date, Required: true},
			{Name: "status", Kind: String},
		},
	},
	{
		Name:       "AuditLog",
		Collection: "auditlogs",
		Fields: []FieldDescriptor{
			{Name: "userId", Kind: ObjectRef, Ref: "User"},
			{Name: "action", Kind: String},
			{Name: "resource", Kind: String},
			{Name: "resourceId", Kind: ObjectRef},
			{Name: "changes", Kind: Mixed},
			{Name: "ipAddress", Kind: String},
			{Name: "timestamp", Kind: Date},
		},
	},
	{
		Name:       "Badge",
		Collection: "badges",
		Fields: []FieldDescriptor{
			{Name: "name", Kind: String, Required: true},
			{Name: "description", Kind: String},
			{Name: "icon", Kind: String},
			{Name: "rarity", Kind: String},
			{Name: "unlockedBy", Kind: ArrayOfObjectRef, Ref: "User"},
			{Name: "requirement", Kind: Mixed},
			{Name: "createdAt", Kind: Date},
		},
	},
	{
		Name:       "BloodDonationCenter",
		Collection: "blooddonationcenters",
		Fields: []FieldDescriptor{
			{Name: "name", Kind: String, Required: true},
			{Name: "address", Kind: String},
			{Name: "city", Kind: String},
			{Name: "coordinates.type", Kind: String, Enum: []string{"Point"}},
			{Name: "coordinates.coordinates", Kind: ArrayOfPrimitive, Elem: Number},
			{Name: "phone", Kind: String},
			{Name: "email", Kind: String},
			{Name: "hours", Kind: String},
			{Name: "services", Kind: ArrayOfPrimitive, Elem: String},
			{Name: "adminOrganizationId", Kind: ObjectRef, Ref: "Organization"},
			{Name: "inventory.O+", Kind: Number},
			{Name: "inventory.O-", Kind: Number},
			{Name: "inventory.A+", Kind: Number},
			{Name: "inventory.A-", Kind: Number},
			{Name: "inventory.B+", Kind: Number},
			{Name: "inventory.B-", Kind: Number},
			{Name: "inventory.AB+", Kind: Number},
			{Name: "inventory.AB-", Kind: Number},
			{Name: "urgency", Kind: String},
			{Name: "averageWaitTime", Kind: Number},
			{Name: "capacity", Kind: Number},
		},
	},
	{
		Name:       "BloodDonor",
		Collection: "blooddonors",
		Fields: []FieldDescriptor{
			{Name: "userId", Kind: ObjectRef, Required: true, Unique: true, Ref: "User"},
			{Name: "bloodType", Kind: String},
			{Name: "donationFrequency", Kind: String},
			{Name: "preferredCenter", Kind: ObjectRef, Ref: "BloodDonationCenter"},
			{Name: "donationHistory", Kind: ArrayOfPrimitive, Elem: Mixed},
			{Name: "totalDonations", Kind: Number},
			{Name: "nextEligibleDate", Kind: Date},
			{Name: "emergencyAlertOptIn", Kind: Boolean},
		},
	},
	{
		Name:       "EmergencyAlert",
		Collection: "emergencyalerts",
		Fields: []FieldDescriptor{
			{Name: "bloodNeeded", Kind: String},
			{Name: "units", Kind: Number},
			{Name: "urgency", Kind: String},
			{Name: "location", Kind: String},
			{Name: "initiatedBy", Kind: ObjectRef, Ref: "Organization"},
			{Name: "targetRadius", Kind: Number},
			{Name: "respondentCount", Kind: Number},
			{Name: "status", Kind: String},
			{Name: "respondents", Kind: ArrayOfObjectRef, Ref: "User"},
			{Name: "emailsSent", Kind: Number},
			{Name: "emailsOpened", Kind: Number},
			{Name: "appointmentsBooked", Kind: Number},
			{Name: "closedAt", Kind: Date},
		},
	},
	{
		Name:       "Notification",
		Collection: "notifications",
		Fields: []FieldDescriptor{
			{Name: "userId", Kind: ObjectRef, Required: true, Ref: "User"},
			{Name: "type", Kind: String},
			{Name: "title", Kind: String},
			{Name: "message", Kind: String},
			{Name: "relatedId", Kind: ObjectRef},
			{Name: "read", Kind: Boolean},
			{Name: "readAt", Kind: Date},
			{Name: "emailSent", Kind: Boolean},
			{Name: "emailSentAt", Kind: Date},
		},
	},
	{
		Name:       "Opportunity",
		Collection: "opportunities",
		Fields: []FieldDescriptor{
			{Name: "organizationId", Kind: ObjectRef, Required: true, Ref: "Organization"},
			{Name: "title", Kind: String, Required: true},
			{Name: "description", Kind: String},
			{Name: "category", Kind: String},
			{Name: "hoursPerWeek", Kind: Number},
			{Name: "urgency", Kind: String},
			{Name: "location", Kind: String},
			{Name: "coordinates.type", Kind: String, Enum: []string{"Point"}},
			{Name: "coordinates.coordinates", Kind: ArrayOfPrimitive, Elem: Number},
			{Name: "isRemote", Kind: Boolean},
			{Name: "tags", Kind: ArrayOfPrimitive, Elem: String},
			{Name: "applicants", Kind: ArrayOfObjectRef, Ref: "Application"},
			{Name: "status", Kind: String},
			{Name: "ratings", Kind: ArrayOfObjectRef, Ref: "OrganizationRating"},
		},
	},
	{
		Name:       "OrganDonor",
		Collection: "organdonors",
		Fields: []FieldDescriptor{
			{Name: "userId", Kind: ObjectRef, Required: true, Unique: true, Ref: "User"},
			{Name: "organs", Kind: ArrayOfPrimitive, Elem: String},
			{Name: "registrationStatus", Kind: String},
			{Name: "adminApprovedBy", Kind: ObjectRef, Ref: "User"},
			{Name: "adminApprovedAt", Kind: Date},
			{Name: "rejectionReason", Kind: String},
			{Name: "emergencyContact", Kind: String},
			{Name: "nextOfKin", Kind: String},
		},
	},
	{
		Name:       "Organization",
		Collection: "organizations",
		Fields: []FieldDescriptor{
			{Name: "name", Kind: String, Required: true},
			{Name: "type", Kind: String, Required: true},
			{Name: "email", Kind: String},
			{Name: "phone", Kind: String},
			{Name: "website", Kind: String},
			{Name: "registrationNumber", Kind: String},
			{Name: "description", Kind: String},
			{Name: "logo", Kind: String},
			{Name: "address", Kind: String},
			{Name: "country", Kind: String},
			{Name: "adminUsers", Kind: ArrayOfObjectRef, Ref: "User"},
			{Name: "averageRating", Kind: Number},
			{Name: "totalRatings", Kind: Number},
			{Name: "ratings", Kind: ArrayOfObjectRef, Ref: "OrganizationRating"},
			{Name: "verificationStatus", Kind: String},
			{Name: "verifiedBy", Kind: ObjectRef, Ref: "User"},
			{Name: "verifiedAt", Kind: Date},
		},
	},
	{
		Name:       "OrganizationRating",
		Collection: "organizationratings",
		Fields: []FieldDescriptor{
			{Name: "organizationId", Kind: ObjectRef, Required: true, Ref: "Organization"},
			{Name: "volunteerId", Kind: ObjectRef, Required: true, Ref: "User"},
			{Name: "opportunityId", Kind: ObjectRef, Ref: "Opportunity"},
			{Name: "ngoLegitimacy", Kind: Number},
			{Name: "volunteerSupport", Kind: Number},
			{Name: "professionalism", Kind: Number},
			{Name: "impact", Kind: Number},
			{Name: "workEnvironment", Kind: Number},
			{Name: "overallRating", Kind: Number},
			{Name: "comment", Kind: String},
			{Name: "organizationResponse", Kind: String},
			{Name: "verified", Kind: Boolean},
			{Name: "helpful", Kind: Number},
			{Name: "flagged", Kind: Mixed},
		},
	},
	{
		Name:       "User",
		Collection: "users",
		Fields: []FieldDescriptor{
			{Name: "firstName", Kind: String, Required: true},
			{Name: "lastName", Kind: String, Required: true},
			{Name: "email", Kind: String, Required: true, Unique: true},
			{Name: "password", Kind: String, Required: true},
			{Name: "phone", Kind: String},
			{Name: "profilePhoto", Kind: String},
			{Name: "bio", Kind: String},
			{Name: "profileCompletionPercentage", Kind: Number},
			{Name: "userRoles", Kind: ArrayOfPrimitive, Elem: String},
			{Name: "organizationId", Kind: ObjectRef, Ref: "Organization"},
			{Name: "registeredOrganizationType", Kind: String},
			{Name: "isActive", Kind: Boolean},
			{Name: "isVerified", Kind: Boolean},
			{Name: "isBlocked", Kind: Boolean},
			{Name: "lastLogin", Kind: Date},
		},
	},
	{
		Name:       "VolunteerProfile",
		Collection: "volunteerprofiles",
		Fields: []FieldDescriptor{
			{Name: "userId", Kind: ObjectRef, Required: true, Unique: true, Ref: "User"},
			{Name: "skills", Kind: ArrayOfPrimitive, Elem: String},
			{Name: "availability", Kind: String},
			{Name: "volunteeredHours", Kind: Number},
			{Name: "applications", Kind: ArrayOfObjectRef, Ref: "Application"},
			{Name: "completedAssignments", Kind: ArrayOfObjectRef},
			{Name: "badges", Kind: ArrayOfPrimitive, Elem: String},
			{Name: "ratings", Kind: ArrayOfObjectRef, Ref: "OrganizationRating"},
			{Name: "organizationRatings", Kind: ArrayOfObjectRef, Ref: "OrganizationRating"},
		},
	},
}

// Registry returns every entity descriptor in declaration order.
func Registry() []EntityDescriptor {
	return registry
}

// ByName looks an entity up by name.
func ByName(name string) (EntityDescriptor, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return EntityDescriptor{}, false
}
